package session

import (
	"errors"
	"fmt"

	"accountsdb/internal/bus"
)

var (
	// ErrIdleTimeout ends a session that saw no event within the idle timeout.
	ErrIdleTimeout = errors.New("session idle timeout")
	// ErrClientGone is the reason recorded when the consumer closes the session.
	ErrClientGone = errors.New("client disconnected")
	// ErrAborted wraps a panic recovered from the forwarding loop.
	ErrAborted = errors.New("session aborted")
)

// LagError is returned by Stream when the bus cut the session off for
// falling behind. It unwraps to bus.ErrLagged.
type LagError struct {
	SessionID string
	Forwarded uint64
	Capacity  int
}

func (e *LagError) Error() string {
	return fmt.Sprintf("subscriber lagged: session %s fell more than %d events behind after %d forwarded",
		e.SessionID, e.Capacity, e.Forwarded)
}

func (e *LagError) Unwrap() error { return bus.ErrLagged }
