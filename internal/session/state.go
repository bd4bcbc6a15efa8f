package session

// State is a step in a session's lifecycle:
//
//	Requested → Registered → Streaming → {ClientDisconnected | BusClosed | Lagged | IdleTimeout} → Terminated
type State int32

const (
	Requested State = iota
	Registered
	Streaming
	ClientDisconnected
	BusClosed
	Lagged
	IdleTimeout
	Terminated
)

func (s State) String() string {
	switch s {
	case Requested:
		return "requested"
	case Registered:
		return "registered"
	case Streaming:
		return "streaming"
	case ClientDisconnected:
		return "client_disconnected"
	case BusClosed:
		return "bus_closed"
	case Lagged:
		return "lagged"
	case IdleTimeout:
		return "idle_timeout"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further events will be forwarded.
func (s State) IsTerminal() bool {
	return s >= ClientDisconnected
}
