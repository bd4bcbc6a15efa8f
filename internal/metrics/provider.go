package metrics

// Metric names understood by every Provider.
const (
	ActiveSubscribers      = "active_subscribers"
	EventsPublished        = "events_published_total"
	EventsDelivered        = "events_delivered_total"
	EventsUnobserved       = "events_unobserved_total"
	SubscribersLagged      = "subscribers_lagged_total"
	SessionsTerminated     = "sessions_terminated_total"
	SessionDuration        = "session_duration_seconds"
	PublisherCyclesSkipped = "publisher_cycles_skipped_total"
	FeedMessages           = "feed_messages_total"
)

// Provider is the metrics sink used across the service. Components take a
// Provider so tests can run with Noop.
type Provider interface {
	SetGauge(name string, value float64)
	IncCounter(name string, delta float64)
	// IncLabeled increments a counter partitioned by a single label value.
	IncLabeled(name, label string, delta float64)
	Observe(name string, value float64)
}

type Noop struct{}

func (Noop) SetGauge(string, float64)           {}
func (Noop) IncCounter(string, float64)         {}
func (Noop) IncLabeled(string, string, float64) {}
func (Noop) Observe(string, float64)            {}
