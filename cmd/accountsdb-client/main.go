package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"accountsdb/internal/grpc/interceptors"
	"accountsdb/internal/logging"
	pb "accountsdb/proto/accountsdb"
)

func main() {
	var (
		addr     = flag.String("addr", "[::1]:10000", "accountsdb server address")
		token    = flag.String("token", "", "Bearer token")
		slow     = flag.Duration("slow", 0, "Delay after each received update, to provoke lag")
		limit    = flag.Int("n", 0, "Exit after n updates (0 = unlimited)")
		logLevel = flag.String("log-level", "info", "Log level")
	)
	flag.Parse()

	logging.Init(*logLevel, "text")
	os.Exit(run(*addr, *token, *slow, *limit, logging.NewDefaultLogger()))
}

func run(addr, token string, slow time.Duration, limit int, logger logging.Logger) int {
	opts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())},
		interceptors.ClientDialOptions(token, true)...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		logger.Errorf("Failed to create client for %s: %v", addr, err)
		return 1
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stream, err := pb.NewAccountsDbClient(conn).Subscribe(ctx, &pb.SubscribeRequest{})
	if err != nil {
		logger.Errorf("Subscribe failed: %v", err)
		return 1
	}
	logger.Infof("Subscribed to %s", addr)

	received := 0
	for {
		u, err := stream.Recv()
		if err != nil {
			return report(logger, err, received)
		}
		received++
		logUpdate(logger, u)

		if limit > 0 && received >= limit {
			logger.Infof("Received %d updates, exiting", received)
			return 0
		}
		if slow > 0 {
			time.Sleep(slow)
		}
	}
}

func logUpdate(logger logging.Logger, u *pb.Update) {
	switch v := u.GetUpdateOneof().(type) {
	case *pb.Update_SlotUpdate:
		su := v.SlotUpdate
		if su.Parent != nil {
			logger.Infof("slot %d parent=%d status=%s", su.GetSlot(), su.GetParent(), su.GetStatus())
		} else {
			logger.Infof("slot %d status=%s", su.GetSlot(), su.GetStatus())
		}
	case *pb.Update_AccountWrite:
		aw := v.AccountWrite
		logger.Infof("account %s slot=%d lamports=%d write_version=%d data=%dB",
			hex.EncodeToString(aw.GetPubkey()), aw.GetSlot(), aw.GetLamports(), aw.GetWriteVersion(), len(aw.GetData()))
	default:
		logger.Warn("update with no payload")
	}
}

// report logs how the stream ended and returns the process exit code.
func report(logger logging.Logger, err error, received int) int {
	if errors.Is(err, io.EOF) {
		logger.Infof("Server closed the stream after %d updates", received)
		return 0
	}
	st := status.Convert(err)
	switch st.Code() {
	case codes.Canceled:
		logger.Infof("Stopped after %d updates", received)
		return 0
	case codes.ResourceExhausted:
		logger.Warnf("Dropped by server after %d updates: %s", received, st.Message())
	case codes.Unavailable:
		logger.Warnf("Server refused the subscription: %s", st.Message())
	default:
		logger.Errorf("Stream failed after %d updates: %s %s", received, st.Code(), st.Message())
	}
	return 1
}
