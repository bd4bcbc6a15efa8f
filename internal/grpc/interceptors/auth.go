package interceptors

import (
	"context"
	"crypto/subtle"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"accountsdb/internal/logging"
)

const (
	// MetadataKeyAuthorization carries "Bearer <token>".
	MetadataKeyAuthorization = "authorization"
	bearerPrefix             = "bearer "
)

// skipMethods never require a token.
var skipMethods = map[string]struct{}{
	"/grpc.health.v1.Health/Check": {},
	"/grpc.health.v1.Health/List":  {},
	"/grpc.health.v1.Health/Watch": {},
}

// AuthInterceptor checks static bearer tokens on incoming calls
type AuthInterceptor struct {
	tokens [][]byte
	logger logging.Logger
}

// NewAuthInterceptor accepts any of tokens. Empty tokens are ignored.
func NewAuthInterceptor(tokens []string, logger logging.Logger) *AuthInterceptor {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	a := &AuthInterceptor{logger: logger}
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			a.tokens = append(a.tokens, []byte(t))
		}
	}
	return a
}

// UnaryServerInterceptor verifies incoming unary RPC calls
func (a *AuthInterceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler) (interface{}, error) {

		if !a.shouldSkipAuth(info.FullMethod) {
			if err := a.verify(ctx); err != nil {
				a.logger.Warnf("authentication failed: method=%s err=%v", info.FullMethod, err)
				return nil, err
			}
		}
		return handler(ctx, req)
	}
}

// StreamServerInterceptor verifies incoming streaming RPC calls
func (a *AuthInterceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo,
		handler grpc.StreamHandler) error {

		if !a.shouldSkipAuth(info.FullMethod) {
			if err := a.verify(ss.Context()); err != nil {
				a.logger.Warnf("authentication failed: method=%s err=%v", info.FullMethod, err)
				return err
			}
		}
		return handler(srv, ss)
	}
}

func (a *AuthInterceptor) verify(ctx context.Context) error {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "missing metadata")
	}
	values := md.Get(MetadataKeyAuthorization)
	if len(values) == 0 {
		return status.Error(codes.Unauthenticated, "missing bearer token")
	}
	raw := values[0]
	if len(raw) < len(bearerPrefix) || !strings.EqualFold(raw[:len(bearerPrefix)], bearerPrefix) {
		return status.Error(codes.Unauthenticated, "authorization is not a bearer token")
	}
	presented := []byte(strings.TrimSpace(raw[len(bearerPrefix):]))
	for _, tok := range a.tokens {
		if subtle.ConstantTimeCompare(presented, tok) == 1 {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "invalid bearer token")
}

func (a *AuthInterceptor) shouldSkipAuth(method string) bool {
	_, ok := skipMethods[method]
	return ok
}

// BearerToken attaches a static token to every outgoing call.
type BearerToken struct {
	Token string
	// Insecure allows sending the token over plaintext connections.
	Insecure bool
}

func (b BearerToken) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{MetadataKeyAuthorization: "Bearer " + b.Token}, nil
}

func (b BearerToken) RequireTransportSecurity() bool { return !b.Insecure }

// ClientDialOptions returns the dial options that attach token to calls.
func ClientDialOptions(token string, insecure bool) []grpc.DialOption {
	if token == "" {
		return nil
	}
	return []grpc.DialOption{grpc.WithPerRPCCredentials(BearerToken{Token: token, Insecure: insecure})}
}
