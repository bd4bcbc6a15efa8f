package interceptors

import (
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"accountsdb/internal/logging"
)

// StreamLogging logs one line per finished stream.
func StreamLogging(logger logging.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo,
		handler grpc.StreamHandler) error {

		start := time.Now()
		addr := "unknown"
		if p, ok := peer.FromContext(ss.Context()); ok && p.Addr != nil {
			addr = p.Addr.String()
		}

		err := handler(srv, ss)

		l := logging.With(logger, logging.Fields{
			"method":   info.FullMethod,
			"peer":     addr,
			"code":     status.Code(err).String(),
			"duration": time.Since(start).Round(time.Millisecond),
		})
		if err != nil {
			l.Infof("stream finished: %v", err)
		} else {
			l.Info("stream finished")
		}
		return err
	}
}

// ServerOptions chains recovery, logging and, when auth is non-nil, bearer
// authentication.
func ServerOptions(auth *AuthInterceptor, logger logging.Logger) []grpc.ServerOption {
	unary := []grpc.UnaryServerInterceptor{RecoveryUnary(logger)}
	stream := []grpc.StreamServerInterceptor{RecoveryStream(logger), StreamLogging(logger)}
	if auth != nil {
		unary = append(unary, auth.UnaryServerInterceptor())
		stream = append(stream, auth.StreamServerInterceptor())
	}
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	}
}
