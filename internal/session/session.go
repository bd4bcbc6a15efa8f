// Package session bridges one bus subscription to one outbound stream.
package session

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"accountsdb/internal/bus"
	"accountsdb/internal/logging"
	"accountsdb/internal/metrics"
)

// DefaultOutboundBuffer is the outbound queue size used when none is configured.
const DefaultOutboundBuffer = 100

// Subscriber is the part of the bus a session needs.
type Subscriber[T any] interface {
	Subscribe() (*bus.Subscription[T], error)
}

type Option func(*options)

type options struct {
	outbound int
	idle     time.Duration
	capacity int
	logger   logging.Logger
	metrics  metrics.Provider
}

func WithOutboundBuffer(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.outbound = n
		}
	}
}

// WithIdleTimeout ends the session with ErrIdleTimeout when no event arrives
// for d. Zero disables it.
func WithIdleTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.idle = d
		}
	}
}

// WithBusCapacity is only used to describe lag errors. Without it the
// subscriber's own Capacity is used when it has one.
func WithBusCapacity(n int) Option {
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

// Session owns one bus subscription and the goroutine forwarding it into a
// bounded outbound queue.
type Session[T any] struct {
	id       string
	sub      *bus.Subscription[T]
	out      chan T
	idle     time.Duration
	capacity int
	logger   logging.Logger
	metrics  metrics.Provider
	started  time.Time

	stop     chan struct{}
	stopOnce sync.Once
	stopErr  error
	done     chan struct{}

	mu        sync.Mutex
	state     State
	cause     State
	reason    error
	forwarded uint64

	// test hook, runs for every event before it is queued
	beforeForward func(T)
}

// Open registers with b and starts forwarding. It does not block.
func Open[T any](b Subscriber[T], opts ...Option) (*Session[T], error) {
	o := options{
		outbound: DefaultOutboundBuffer,
		logger:   logging.NewDefaultLogger(),
		metrics:  metrics.Noop{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity == 0 {
		o.capacity = bus.DefaultCapacity
		if c, ok := b.(interface{ Capacity() int }); ok {
			o.capacity = c.Capacity()
		}
	}

	s := &Session[T]{
		out:      make(chan T, o.outbound),
		idle:     o.idle,
		capacity: o.capacity,
		metrics:  o.metrics,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		state:    Requested,
	}

	sub, err := b.Subscribe()
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	s.sub = sub
	s.id = sub.ID()
	s.logger = logging.With(o.logger, logging.Fields{"session": s.id})
	s.setState(Registered)

	s.started = time.Now()
	s.setState(Streaming)
	go s.forward()

	s.logger.Debug("session streaming")
	return s, nil
}

func (s *Session[T]) ID() string { return s.id }

// Updates is the outbound queue. It is closed when the session ends.
func (s *Session[T]) Updates() <-chan T { return s.out }

// Done is closed once the forwarding goroutine has released its bus
// registration and closed Updates.
func (s *Session[T]) Done() <-chan struct{} { return s.done }

func (s *Session[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Cause is the terminal state that ended the session, or the current state
// while it is still running.
func (s *Session[T]) Cause() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cause
}

// Reason is nil until the session ends.
func (s *Session[T]) Reason() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}

// Forwarded is the number of events moved to the outbound queue.
func (s *Session[T]) Forwarded() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forwarded
}

// Close stops forwarding as a client disconnect. Safe to call repeatedly and
// from any goroutine.
func (s *Session[T]) Close() {
	s.closeWith(ErrClientGone)
}

func (s *Session[T]) closeWith(err error) {
	s.stopOnce.Do(func() {
		s.stopErr = err
		close(s.stop)
	})
}

// Stream pumps the outbound queue into send until the session ends. A send
// failure or ctx cancellation tears the session down and is returned as-is.
// Otherwise the result describes how the session ended: nil when the bus
// shut down, *LagError when it fell behind, ErrIdleTimeout when it idled out.
func (s *Session[T]) Stream(ctx context.Context, send func(T) error) error {
	for {
		select {
		case ev, ok := <-s.out:
			if !ok {
				<-s.done
				return s.result()
			}
			if err := send(ev); err != nil {
				s.closeWith(fmt.Errorf("%w: %v", ErrClientGone, err))
				<-s.done
				return err
			}
		case <-ctx.Done():
			s.closeWith(fmt.Errorf("%w: %v", ErrClientGone, ctx.Err()))
			<-s.done
			return ctx.Err()
		}
	}
}

func (s *Session[T]) result() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.cause {
	case BusClosed:
		return nil
	case Lagged:
		return &LagError{SessionID: s.id, Forwarded: s.forwarded, Capacity: s.capacity}
	default:
		return s.reason
	}
}

func (s *Session[T]) forward() {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("session forwarding panic: %v\n%s", r, debug.Stack())
			s.finish(Terminated, fmt.Errorf("%w: %v", ErrAborted, r))
		}
		s.sub.Close()
		close(s.out)
		s.release()
		close(s.done)
	}()

	var idle <-chan time.Time
	touch := func() {}
	if s.idle > 0 {
		t := time.NewTimer(s.idle)
		defer t.Stop()
		idle = t.C
		touch = func() { t.Reset(s.idle) }
	}
	s.loop(idle, touch)
}

func (s *Session[T]) loop(idle <-chan time.Time, touch func()) {
	in := s.sub.C()
	for {
		select {
		case ev, ok := <-in:
			if !ok {
				err := s.sub.Err()
				switch {
				case errors.Is(err, bus.ErrLagged):
					s.finish(Lagged, err)
				case errors.Is(err, bus.ErrClosed):
					s.finish(BusClosed, err)
				default:
					s.finish(ClientDisconnected, err)
				}
				return
			}
			if s.beforeForward != nil {
				s.beforeForward(ev)
			}
			select {
			case s.out <- ev:
				s.mu.Lock()
				s.forwarded++
				s.mu.Unlock()
				touch()
			case <-s.stop:
				s.finish(ClientDisconnected, s.stopErr)
				return
			}
		case <-s.stop:
			s.finish(ClientDisconnected, s.stopErr)
			return
		case <-idle:
			s.finish(IdleTimeout, ErrIdleTimeout)
			return
		}
	}
}

func (s *Session[T]) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.cause = st
	s.mu.Unlock()
}

// finish records the first terminal transition; later ones are ignored.
func (s *Session[T]) finish(st State, reason error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsTerminal() {
		return
	}
	s.state = st
	s.cause = st
	s.reason = reason
}

// release runs after the registration is dropped and the outbound queue is
// closed.
func (s *Session[T]) release() {
	s.mu.Lock()
	cause, reason, forwarded := s.cause, s.reason, s.forwarded
	s.state = Terminated
	s.mu.Unlock()

	s.metrics.IncLabeled(metrics.SessionsTerminated, cause.String(), 1)
	s.metrics.Observe(metrics.SessionDuration, time.Since(s.started).Seconds())

	switch cause {
	case Lagged, Terminated:
		s.logger.Warnf("session ended: %s (%v), %d forwarded", cause, reason, forwarded)
	default:
		s.logger.Infof("session ended: %s, %d forwarded", cause, forwarded)
	}
}
