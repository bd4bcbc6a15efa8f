package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "accountsdb"

type Prom struct {
	reg *prometheus.Registry

	ActiveSubscribers      prometheus.Gauge
	EventsPublished        prometheus.Counter
	EventsDelivered        prometheus.Counter
	EventsUnobserved       prometheus.Counter
	SubscribersLagged      prometheus.Counter
	PublisherCyclesSkipped prometheus.Counter
	SessionsTerminated     *prometheus.CounterVec
	FeedMessages           *prometheus.CounterVec
	SessionDuration        prometheus.Histogram
}

func NewProm() *Prom {
	reg := prometheus.NewRegistry()
	p := &Prom{
		reg: reg,
		ActiveSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: ActiveSubscribers, Help: "Subscribers currently registered on the event bus",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: EventsPublished, Help: "Events handed to the event bus",
		}),
		EventsDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: EventsDelivered, Help: "Per-subscriber enqueues accepted by the event bus",
		}),
		EventsUnobserved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: EventsUnobserved, Help: "Events published while no subscriber was registered",
		}),
		SubscribersLagged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: SubscribersLagged, Help: "Subscribers terminated because their backlog filled up",
		}),
		PublisherCyclesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: PublisherCyclesSkipped, Help: "Publisher ticks skipped because nobody was listening",
		}),
		SessionsTerminated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: SessionsTerminated, Help: "Subscriber sessions ended, by reason",
		}, []string{"reason"}),
		FeedMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: FeedMessages, Help: "Upstream feed messages, by outcome",
		}, []string{"result"}),
		SessionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: SessionDuration, Help: "Lifetime of subscriber sessions",
			Buckets: prometheus.ExponentialBuckets(0.1, 4, 10),
		}),
	}
	reg.MustRegister(
		p.ActiveSubscribers, p.EventsPublished, p.EventsDelivered, p.EventsUnobserved,
		p.SubscribersLagged, p.PublisherCyclesSkipped, p.SessionsTerminated, p.FeedMessages,
		p.SessionDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prom) Handler() http.Handler { return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{}) }

// Implement Provider
func (p *Prom) SetGauge(name string, value float64) {
	switch name {
	case ActiveSubscribers:
		p.ActiveSubscribers.Set(value)
	}
}

func (p *Prom) IncCounter(name string, delta float64) {
	switch name {
	case EventsPublished:
		p.EventsPublished.Add(delta)
	case EventsDelivered:
		p.EventsDelivered.Add(delta)
	case EventsUnobserved:
		p.EventsUnobserved.Add(delta)
	case SubscribersLagged:
		p.SubscribersLagged.Add(delta)
	case PublisherCyclesSkipped:
		p.PublisherCyclesSkipped.Add(delta)
	}
}

func (p *Prom) IncLabeled(name, label string, delta float64) {
	switch name {
	case SessionsTerminated:
		p.SessionsTerminated.WithLabelValues(label).Add(delta)
	case FeedMessages:
		p.FeedMessages.WithLabelValues(label).Add(delta)
	}
}

// Observe supports selected summaries/histograms
func (p *Prom) Observe(name string, value float64) {
	switch name {
	case SessionDuration:
		p.SessionDuration.Observe(value)
	default:
		// ignore unknown for now
	}
}
