package bus

// Subscription is one subscriber's view of the bus. The owner receives from
// C until it is closed and then reads the terminal reason from Err.
type Subscription[T any] struct {
	id  string
	ch  chan T
	bus *Bus[T]

	// guarded by bus.mu
	done bool
	err  error
}

func (s *Subscription[T]) ID() string { return s.id }

// C yields events in publish order. It is closed exactly once, after which
// Err reports why.
func (s *Subscription[T]) C() <-chan T { return s.ch }

// Err returns nil while the subscription is live, otherwise one of
// ErrLagged, ErrClosed or ErrUnsubscribed.
func (s *Subscription[T]) Err() error {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	return s.err
}

// Close deregisters the subscription. Buffered events are discarded by the
// owner at its leisure; nothing new is enqueued once Close returns.
func (s *Subscription[T]) Close() {
	s.bus.unsubscribe(s)
}

// terminateLocked must be called with bus.mu held and the subscription
// already removed from the registry.
func (s *Subscription[T]) terminateLocked(reason error) {
	if s.done {
		return
	}
	s.done = true
	s.err = reason
	close(s.ch)
}
