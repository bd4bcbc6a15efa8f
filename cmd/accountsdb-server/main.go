package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"accountsdb/internal/bus"
	"accountsdb/internal/config"
	"accountsdb/internal/feed"
	"accountsdb/internal/grpc/interceptors"
	"accountsdb/internal/logging"
	"accountsdb/internal/messaging"
	"accountsdb/internal/metrics"
	"accountsdb/internal/publisher"
	"accountsdb/internal/server"
	pb "accountsdb/proto/accountsdb"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to configuration file")
		listenAddr = flag.String("listen", "", "gRPC listen address (overrides config file)")
		logLevel   = flag.String("log-level", "", "Log level (overrides config file)")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *listenAddr != "" {
		cfg.RPC.ListenAddr = *listenAddr
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logging.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger := logging.NewDefaultLogger()
	logger.Info("Starting accountsdb server")

	var prom *metrics.Prom
	var provider metrics.Provider = metrics.Noop{}
	if cfg.Metrics.Enabled {
		prom = metrics.NewProm()
		provider = prom
	}

	// The bus is owned here and handed to every producer and consumer.
	updates := bus.New[*pb.Update](
		bus.WithCapacity(cfg.Bus.SubscriberBuffer),
		bus.WithLogger(logger),
		bus.WithMetrics(provider),
	)

	srv := server.NewServer(updates, server.Config{
		OutboundBuffer: cfg.Session.OutboundBuffer,
		IdleTimeout:    cfg.Session.IdleTimeout,
		MaxSubscribers: cfg.Server.MaxSubscribers,
	}, logger, provider)

	var auth *interceptors.AuthInterceptor
	if cfg.RPC.Auth.Enabled {
		auth = interceptors.NewAuthInterceptor(cfg.RPC.Auth.BearerTokens, logger)
	}
	grpcServer := grpc.NewServer(interceptors.ServerOptions(auth, logger)...)
	srv.RegisterGRPC(grpcServer)

	// Register reflection for grpcurl debugging
	reflection.Register(grpcServer)

	listener, err := net.Listen("tcp", cfg.RPC.ListenAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.RPC.ListenAddr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infof("Starting gRPC server on %s", listener.Addr())
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})

	if cfg.Publisher.Enabled {
		loop := publisher.NewLoop(updates, publisher.Config{
			Interval:      cfg.Publisher.Interval,
			StartSlot:     cfg.Publisher.StartSlot,
			AccountWrites: cfg.Publisher.AccountWrites,
		}, logger, provider)
		g.Go(func() error { return loop.Run(gctx) })
	}

	if cfg.Feed.Enabled {
		transport, err := messaging.NewNATSBus(cfg.Feed.URL, messaging.NATSOptions{
			Name:          "accountsdb-feed",
			ReconnectWait: cfg.Timeouts.NATSReconnectWait,
			MaxReconnects: cfg.Timeouts.NATSMaxReconnects,
		}, logger)
		if err != nil {
			log.Fatalf("Failed to connect feed: %v", err)
		}
		f := feed.New(transport, updates, feed.Config{
			Subject:   cfg.Feed.Subject,
			DedupeMax: cfg.Feed.DedupeMax,
			DedupeTTL: cfg.Feed.DedupeTTL,
		}, logger, provider)
		g.Go(func() error {
			defer transport.Close()
			return f.Run(gctx)
		})
	}

	if prom != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", prom.Handler())
		httpServer := &http.Server{Addr: cfg.Metrics.ListenAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		g.Go(func() error {
			logger.Infof("Serving metrics on %s/metrics", cfg.Metrics.ListenAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ShutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down accountsdb server...")

		// Closing the bus first lets every open stream end with OK before
		// the transport goes away.
		srv.Shutdown()
		updates.Close()
		gracefulStop(grpcServer, cfg.Timeouts.ShutdownTimeout, logger)
		return nil
	})

	logger.Info("accountsdb server is running. Press Ctrl+C to stop.")
	if err := g.Wait(); err != nil {
		logger.Fatalf("accountsdb server stopped with error: %v", err)
	}
	logger.Info("accountsdb server stopped")
}

func gracefulStop(s *grpc.Server, timeout time.Duration, logger logging.Logger) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		logger.Warnf("Graceful stop exceeded %v, forcing", timeout)
		s.Stop()
	}
}
