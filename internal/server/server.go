// Package server exposes the event bus over the AccountsDb gRPC service.
package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"accountsdb/internal/bus"
	"accountsdb/internal/logging"
	"accountsdb/internal/metrics"
	"accountsdb/internal/session"
	pb "accountsdb/proto/accountsdb"
)

// ServiceName is the health-check name of the AccountsDb service.
const ServiceName = "accountsdb.AccountsDb"

type Config struct {
	OutboundBuffer int
	IdleTimeout    time.Duration
	// 0 means unlimited.
	MaxSubscribers int
}

// Server implements pb.AccountsDbServer. Each Subscribe call owns exactly one
// session for its whole lifetime.
type Server struct {
	pb.UnimplementedAccountsDbServer

	bus     *bus.Bus[*pb.Update]
	cfg     Config
	logger  logging.Logger
	metrics metrics.Provider
	health  *health.Server

	mu       sync.Mutex
	sessions map[string]*session.Session[*pb.Update]
}

func NewServer(b *bus.Bus[*pb.Update], cfg Config, logger logging.Logger, m metrics.Provider) *Server {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if m == nil {
		m = metrics.Noop{}
	}
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return &Server{
		bus:      b,
		cfg:      cfg,
		logger:   logger,
		metrics:  m,
		health:   hs,
		sessions: make(map[string]*session.Session[*pb.Update]),
	}
}

// RegisterGRPC registers the AccountsDb and health services.
func (s *Server) RegisterGRPC(grpcServer *grpc.Server) {
	pb.RegisterAccountsDbServer(grpcServer, s)
	healthpb.RegisterHealthServer(grpcServer, s.health)
}

// Shutdown marks the service NOT_SERVING. Open streams end when the bus is
// closed.
func (s *Server) Shutdown() {
	s.health.Shutdown()
}

// ActiveSessions is the number of Subscribe calls currently streaming.
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Subscribe implements AccountsDbServer
func (s *Server) Subscribe(req *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.Update]) error {
	ctx := stream.Context()
	logger := logging.With(s.logger, logging.Fields{"peer": peerAddr(ctx)})

	sess, err := s.open(logger)
	if err != nil {
		return err
	}
	defer s.untrack(sess)

	logger.Infof("subscriber %s connected (%d active)", sess.ID(), s.ActiveSessions())
	err = sess.Stream(ctx, stream.Send)
	return s.toStatus(sess, err)
}

func (s *Server) open(logger logging.Logger) (*session.Session[*pb.Update], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.MaxSubscribers > 0 && len(s.sessions) >= s.cfg.MaxSubscribers {
		return nil, status.Errorf(codes.Unavailable, "too many subscribers (limit %d)", s.cfg.MaxSubscribers)
	}
	sess, err := session.Open[*pb.Update](s.bus,
		session.WithOutboundBuffer(s.cfg.OutboundBuffer),
		session.WithIdleTimeout(s.cfg.IdleTimeout),
		session.WithBusCapacity(s.bus.Capacity()),
		session.WithLogger(logger),
		session.WithMetrics(s.metrics),
	)
	if err != nil {
		if errors.Is(err, bus.ErrClosed) {
			return nil, status.Error(codes.Unavailable, "server is shutting down")
		}
		return nil, status.Errorf(codes.Internal, "open session: %v", err)
	}
	s.sessions[sess.ID()] = sess
	return sess, nil
}

func (s *Server) untrack(sess *session.Session[*pb.Update]) {
	s.mu.Lock()
	delete(s.sessions, sess.ID())
	s.mu.Unlock()
}

// toStatus maps how a session ended onto the RPC status.
func (s *Server) toStatus(sess *session.Session[*pb.Update], err error) error {
	var lagErr *session.LagError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &lagErr):
		return status.Error(codes.ResourceExhausted, lagErr.Error())
	case errors.Is(err, session.ErrIdleTimeout):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, session.ErrAborted):
		return status.Error(codes.Internal, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		// write failure: the client is gone, the transport status stands
		s.logger.Debugf("subscriber %s send failed: %v", sess.ID(), err)
		return err
	}
}

func peerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return "unknown"
}
