// Package feed bridges an upstream message subject into the event bus. Each
// message carries one protobuf-encoded Update. Messages that carry a
// publisher-assigned id are deduplicated on that id, so a publisher retry is
// delivered once; messages without an id are always forwarded.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"google.golang.org/protobuf/proto"

	"accountsdb/internal/logging"
	"accountsdb/internal/messaging"
	"accountsdb/internal/metrics"
	pb "accountsdb/proto/accountsdb"
)

// Outcomes recorded per upstream message.
const (
	ResultPublished  = "published"
	ResultDuplicate  = "duplicate"
	ResultMalformed  = "malformed"
	ResultUnobserved = "unobserved"
)

var errEmptyUpdate = errors.New("update has no payload")

// Sink receives decoded updates. *bus.Bus[*pb.Update] satisfies it.
type Sink interface {
	Publish(ev *pb.Update) int
	HasSubscribers() bool
}

type Config struct {
	Subject   string
	DedupeMax int
	DedupeTTL time.Duration
}

type Feed struct {
	transport messaging.Bus
	sink      Sink
	subject   string
	seen      *expirable.LRU[string, struct{}]
	logger    logging.Logger
	metrics   metrics.Provider

	mu  sync.Mutex
	sub io.Closer
}

func New(transport messaging.Bus, sink Sink, cfg Config, logger logging.Logger, m metrics.Provider) *Feed {
	if cfg.DedupeMax <= 0 {
		cfg.DedupeMax = 4096
	}
	if cfg.DedupeTTL <= 0 {
		cfg.DedupeTTL = time.Minute
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if m == nil {
		m = metrics.Noop{}
	}
	return &Feed{
		transport: transport,
		sink:      sink,
		subject:   cfg.Subject,
		seen:      expirable.NewLRU[string, struct{}](cfg.DedupeMax, nil, cfg.DedupeTTL),
		logger:    logging.With(logger, logging.Fields{"component": "feed", "subject": cfg.Subject}),
		metrics:   m,
	}
}

// Start subscribes to the upstream subject.
func (f *Feed) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sub != nil {
		return nil
	}
	sub, err := f.transport.Subscribe(f.subject, f.handle)
	if err != nil {
		return fmt.Errorf("feed subscribe %s: %w", f.subject, err)
	}
	f.sub = sub
	f.logger.Info("feed: subscribed")
	return nil
}

// Stop unsubscribes; the transport itself is left open.
func (f *Feed) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sub == nil {
		return nil
	}
	err := f.sub.Close()
	f.sub = nil
	f.seen.Purge()
	f.logger.Info("feed: unsubscribed")
	return err
}

// Run starts the feed and blocks until ctx is cancelled.
func (f *Feed) Run(ctx context.Context) error {
	if err := f.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return f.Stop()
}

func (f *Feed) handle(msg messaging.Message) {
	// cheap check before any decoding work
	if !f.sink.HasSubscribers() {
		f.metrics.IncLabeled(metrics.FeedMessages, ResultUnobserved, 1)
		return
	}

	// Peek honors the TTL; Contains reports expired entries until they are swept.
	if msg.ID != "" {
		if _, ok := f.seen.Peek(msg.ID); ok {
			f.metrics.IncLabeled(metrics.FeedMessages, ResultDuplicate, 1)
			return
		}
	}

	u, err := decode(msg.Data)
	if err != nil {
		f.metrics.IncLabeled(metrics.FeedMessages, ResultMalformed, 1)
		f.logger.Warnf("feed: dropping malformed message (%d bytes): %v", len(msg.Data), err)
		return
	}
	if msg.ID != "" {
		f.seen.Add(msg.ID, struct{}{})
	}

	f.sink.Publish(u)
	f.metrics.IncLabeled(metrics.FeedMessages, ResultPublished, 1)
}

func decode(data []byte) (*pb.Update, error) {
	u := &pb.Update{}
	if err := proto.Unmarshal(data, u); err != nil {
		return nil, err
	}
	if u.GetUpdateOneof() == nil {
		return nil, errEmptyUpdate
	}
	return u, nil
}
