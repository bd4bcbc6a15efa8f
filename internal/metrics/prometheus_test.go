package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromProvider(t *testing.T) {
	p := NewProm()
	var _ Provider = p

	p.SetGauge(ActiveSubscribers, 3)
	p.IncCounter(EventsPublished, 2)
	p.IncCounter(EventsDelivered, 5)
	p.IncCounter("unknown_total", 1)
	p.IncLabeled(SessionsTerminated, "lagged", 1)
	p.IncLabeled(SessionsTerminated, "lagged", 1)
	p.IncLabeled(FeedMessages, "duplicate", 1)
	p.Observe(SessionDuration, 1.5)

	assert.Equal(t, 3.0, testutil.ToFloat64(p.ActiveSubscribers))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.EventsPublished))
	assert.Equal(t, 5.0, testutil.ToFloat64(p.EventsDelivered))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.SessionsTerminated.WithLabelValues("lagged")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.FeedMessages.WithLabelValues("duplicate")))
}

func TestPromHandlerExposesNamespace(t *testing.T) {
	p := NewProm()
	p.IncCounter(SubscribersLagged, 1)

	srv := httptest.NewServer(p.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "accountsdb_subscribers_lagged_total 1")
	assert.Contains(t, string(body), "accountsdb_active_subscribers")
}

func TestNoop(t *testing.T) {
	var p Provider = Noop{}
	p.SetGauge(ActiveSubscribers, 1)
	p.IncCounter(EventsPublished, 1)
	p.IncLabeled(SessionsTerminated, "closed", 1)
	p.Observe(SessionDuration, 1)
}
