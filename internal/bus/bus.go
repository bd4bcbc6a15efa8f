// Package bus is an in-process multicast channel. One publisher hands events
// to every subscriber registered at the moment of the call; each subscriber
// owns a bounded queue and a subscriber that lets its queue fill up is cut
// off with ErrLagged instead of slowing the publisher down.
package bus

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"accountsdb/internal/logging"
	"accountsdb/internal/metrics"
)

// DefaultCapacity is the per-subscriber backlog used when none is configured.
const DefaultCapacity = 100

var (
	// ErrLagged terminates a subscriber whose backlog overflowed.
	ErrLagged = errors.New("subscriber lagged behind the event stream")
	// ErrClosed is returned by Subscribe after Close and is the terminal
	// reason of every subscription active at shutdown.
	ErrClosed = errors.New("event bus closed")
	// ErrUnsubscribed is the terminal reason of a subscription closed by its owner.
	ErrUnsubscribed = errors.New("subscription closed")
)

// Stats is a point-in-time snapshot of bus counters.
type Stats struct {
	Published   uint64 // events passed to Publish while open
	Delivered   uint64 // per-subscriber enqueues
	Unobserved  uint64 // events published with nobody registered
	Lagged      uint64 // subscribers terminated with ErrLagged
	Subscribers int
}

type Option func(*options)

type options struct {
	capacity int
	logger   logging.Logger
	metrics  metrics.Provider
}

// WithCapacity sets the bounded backlog of each subscriber.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func WithMetrics(m metrics.Provider) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// Bus fans events out to subscribers. The zero value is not usable; use New.
//
// A single mutex serializes publish iteration with registry changes, so a
// subscriber is either fully present or fully absent for any given Publish.
type Bus[T any] struct {
	capacity int
	logger   logging.Logger
	metrics  metrics.Provider

	mu     sync.Mutex
	subs   map[string]*Subscription[T]
	closed bool
	stats  Stats
}

func New[T any](opts ...Option) *Bus[T] {
	o := options{
		capacity: DefaultCapacity,
		logger:   logging.NewDefaultLogger(),
		metrics:  metrics.Noop{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Bus[T]{
		capacity: o.capacity,
		logger:   o.logger,
		metrics:  o.metrics,
		subs:     make(map[string]*Subscription[T]),
	}
}

// Capacity returns the per-subscriber backlog.
func (b *Bus[T]) Capacity() int { return b.capacity }

// Publish enqueues ev for every current subscriber and returns how many
// accepted it. It never waits on a subscriber: a full queue terminates that
// subscriber with ErrLagged. Publishing with no subscribers, or after Close,
// is a no-op.
func (b *Bus[T]) Publish(ev T) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0
	}
	b.stats.Published++
	b.metrics.IncCounter(metrics.EventsPublished, 1)

	if len(b.subs) == 0 {
		b.stats.Unobserved++
		b.metrics.IncCounter(metrics.EventsUnobserved, 1)
		return 0
	}

	delivered, lagged := 0, 0
	for id, s := range b.subs {
		select {
		case s.ch <- ev:
			delivered++
		default:
			delete(b.subs, id)
			s.terminateLocked(ErrLagged)
			lagged++
			b.logger.Warnf("bus: subscriber %s lagged (backlog %d), terminating", id, b.capacity)
		}
	}

	b.stats.Delivered += uint64(delivered)
	b.metrics.IncCounter(metrics.EventsDelivered, float64(delivered))
	if lagged > 0 {
		b.stats.Lagged += uint64(lagged)
		b.metrics.IncCounter(metrics.SubscribersLagged, float64(lagged))
		b.metrics.SetGauge(metrics.ActiveSubscribers, float64(len(b.subs)))
	}
	return delivered
}

// Subscribe registers a new subscriber. Only events published after the call
// returns are delivered.
func (b *Bus[T]) Subscribe() (*Subscription[T], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}
	s := &Subscription[T]{
		id:  uuid.NewString(),
		ch:  make(chan T, b.capacity),
		bus: b,
	}
	b.subs[s.id] = s
	b.metrics.SetGauge(metrics.ActiveSubscribers, float64(len(b.subs)))
	b.logger.Debugf("bus: subscriber %s registered (%d active)", s.id, len(b.subs))
	return s, nil
}

// HasSubscribers is the cheap check publishers use before building an event.
func (b *Bus[T]) HasSubscribers() bool {
	return b.SubscriberCount() > 0
}

func (b *Bus[T]) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Bus[T]) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	st := b.stats
	st.Subscribers = len(b.subs)
	return st
}

// Closed reports whether Close has been called.
func (b *Bus[T]) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// Close shuts the bus down. Every active subscription ends with ErrClosed and
// later Subscribe calls fail. Safe to call more than once.
func (b *Bus[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	n := len(b.subs)
	for id, s := range b.subs {
		delete(b.subs, id)
		s.terminateLocked(ErrClosed)
	}
	b.metrics.SetGauge(metrics.ActiveSubscribers, 0)
	b.logger.Infof("bus: closed, released %d subscriber(s)", n)
}

func (b *Bus[T]) unsubscribe(s *Subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if s.done {
		return
	}
	delete(b.subs, s.id)
	s.terminateLocked(ErrUnsubscribed)
	b.metrics.SetGauge(metrics.ActiveSubscribers, float64(len(b.subs)))
	b.logger.Debugf("bus: subscriber %s unsubscribed (%d active)", s.id, len(b.subs))
}
