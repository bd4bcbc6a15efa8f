package interceptors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"accountsdb/internal/logging"
)

const subscribeMethod = "/accountsdb.AccountsDb/Subscribe"

type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f *fakeStream) Context() context.Context { return f.ctx }

func withToken(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(MetadataKeyAuthorization, "Bearer "+token))
}

func TestStreamAuth(t *testing.T) {
	auth := NewAuthInterceptor([]string{"secret-token", " "}, logging.Discard())
	intercept := auth.StreamServerInterceptor()

	tests := []struct {
		name   string
		ctx    context.Context
		method string
		code   codes.Code
	}{
		{"no metadata", context.Background(), subscribeMethod, codes.Unauthenticated},
		{"no token", metadata.NewIncomingContext(context.Background(), metadata.MD{}), subscribeMethod, codes.Unauthenticated},
		{"not bearer", metadata.NewIncomingContext(context.Background(), metadata.Pairs(MetadataKeyAuthorization, "Basic abc")), subscribeMethod, codes.Unauthenticated},
		{"wrong token", withToken("nope"), subscribeMethod, codes.PermissionDenied},
		{"empty token is never accepted", withToken(""), subscribeMethod, codes.PermissionDenied},
		{"valid token", withToken("secret-token"), subscribeMethod, codes.OK},
		{"health skips auth", context.Background(), "/grpc.health.v1.Health/Watch", codes.OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			err := intercept(nil, &fakeStream{ctx: tt.ctx}, &grpc.StreamServerInfo{FullMethod: tt.method},
				func(interface{}, grpc.ServerStream) error {
					called = true
					return nil
				})
			assert.Equal(t, tt.code, status.Code(err))
			assert.Equal(t, tt.code == codes.OK, called)
		})
	}
}

func TestUnaryAuth(t *testing.T) {
	auth := NewAuthInterceptor([]string{"secret-token"}, logging.Discard())
	intercept := auth.UnaryServerInterceptor()
	handler := func(context.Context, interface{}) (interface{}, error) { return "ok", nil }

	_, err := intercept(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/Y"}, handler)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	resp, err := intercept(withToken("secret-token"), nil, &grpc.UnaryServerInfo{FullMethod: "/x/Y"}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	resp, err = intercept(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestRecovery(t *testing.T) {
	l := logging.Discard()

	err := RecoveryStream(l)(nil, &fakeStream{ctx: context.Background()}, &grpc.StreamServerInfo{FullMethod: subscribeMethod},
		func(interface{}, grpc.ServerStream) error { panic("boom") })
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = RecoveryUnary(l)(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/Y"},
		func(context.Context, interface{}) (interface{}, error) { panic("boom") })
	assert.Equal(t, codes.Internal, status.Code(err))

	want := errors.New("plain failure")
	err = RecoveryStream(l)(nil, &fakeStream{ctx: context.Background()}, &grpc.StreamServerInfo{FullMethod: subscribeMethod},
		func(interface{}, grpc.ServerStream) error { return want })
	assert.Equal(t, want, err)
}

func TestStreamLoggingPassesThrough(t *testing.T) {
	want := status.Error(codes.ResourceExhausted, "subscriber lagged")
	err := StreamLogging(logging.Discard())(nil, &fakeStream{ctx: context.Background()}, &grpc.StreamServerInfo{FullMethod: subscribeMethod},
		func(interface{}, grpc.ServerStream) error { return want })
	assert.Equal(t, want, err)
}

func TestBearerTokenCredentials(t *testing.T) {
	md, err := BearerToken{Token: "abc"}.GetRequestMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", md[MetadataKeyAuthorization])
	assert.True(t, BearerToken{Token: "abc"}.RequireTransportSecurity())
	assert.False(t, BearerToken{Token: "abc", Insecure: true}.RequireTransportSecurity())

	assert.Nil(t, ClientDialOptions("", true))
	assert.Len(t, ClientDialOptions("abc", true), 1)
}
