// Package publisher drives the event bus with synthetic updates on a fixed
// cadence. It stands in for a real upstream source.
package publisher

import (
	"context"
	"time"

	"accountsdb/internal/logging"
	"accountsdb/internal/metrics"
	pb "accountsdb/proto/accountsdb"
)

// Sink is where the loop publishes. *bus.Bus[*pb.Update] satisfies it.
type Sink interface {
	Publish(ev *pb.Update) int
	HasSubscribers() bool
}

type Config struct {
	Interval      time.Duration
	StartSlot     uint64
	AccountWrites int
}

type Loop struct {
	sink     Sink
	gen      *SlotGenerator
	interval time.Duration
	logger   logging.Logger
	metrics  metrics.Provider
}

func NewLoop(sink Sink, cfg Config, logger logging.Logger, m metrics.Provider) *Loop {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if m == nil {
		m = metrics.Noop{}
	}
	return &Loop{
		sink:     sink,
		gen:      NewSlotGenerator(cfg.StartSlot, cfg.AccountWrites),
		interval: cfg.Interval,
		logger:   logger,
		metrics:  m,
	}
}

// Run publishes every interval until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Infof("publisher: started, interval %v", l.interval)
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("publisher: stopped")
			return nil
		case <-ticker.C:
			l.Tick()
		}
	}
}

// Tick runs one publish cycle and returns the number of updates published.
// Nothing is generated while nobody is subscribed.
func (l *Loop) Tick() int {
	if !l.sink.HasSubscribers() {
		l.metrics.IncCounter(metrics.PublisherCyclesSkipped, 1)
		return 0
	}
	updates := l.gen.Next()
	for _, u := range updates {
		l.sink.Publish(u)
	}
	if su := updates[0].GetSlotUpdate(); su != nil {
		l.logger.Debugf("publisher: slot %d %s", su.GetSlot(), su.GetStatus())
	}
	return len(updates)
}
