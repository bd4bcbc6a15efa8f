package publisher

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountsdb/internal/bus"
	"accountsdb/internal/logging"
	"accountsdb/internal/metrics"
	pb "accountsdb/proto/accountsdb"
)

type fakeSink struct {
	mu        sync.Mutex
	listening bool
	got       []*pb.Update
	checks    int
}

func (f *fakeSink) Publish(ev *pb.Update) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, ev)
	return 1
}

func (f *fakeSink) HasSubscribers() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks++
	return f.listening
}

type countingMetrics struct {
	metrics.Noop
	mu      sync.Mutex
	skipped int
}

func (c *countingMetrics) IncCounter(name string, delta float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if name == metrics.PublisherCyclesSkipped {
		c.skipped += int(delta)
	}
}

func TestTickSkipsWithoutSubscribers(t *testing.T) {
	sink := &fakeSink{}
	m := &countingMetrics{}
	l := NewLoop(sink, Config{StartSlot: 10}, logging.Discard(), m)

	assert.Equal(t, 0, l.Tick())
	assert.Equal(t, 0, l.Tick())
	assert.Empty(t, sink.got)
	assert.Equal(t, 2, m.skipped)

	sink.listening = true
	assert.Equal(t, 1, l.Tick())
	require.Len(t, sink.got, 1)
	// skipped cycles do not consume slots
	assert.Equal(t, uint64(10), sink.got[0].GetSlotUpdate().GetSlot())
}

func TestTickWithAccountWrites(t *testing.T) {
	sink := &fakeSink{listening: true}
	l := NewLoop(sink, Config{AccountWrites: 3}, logging.Discard(), nil)

	assert.Equal(t, 4, l.Tick())
	require.Len(t, sink.got, 4)
	assert.NotNil(t, sink.got[0].GetSlotUpdate())
	for _, u := range sink.got[1:] {
		aw := u.GetAccountWrite()
		require.NotNil(t, aw)
		assert.Equal(t, uint64(0), aw.GetSlot())
		assert.Len(t, aw.GetPubkey(), 32)
	}
}

func TestRunPublishesUntilCancelled(t *testing.T) {
	b := bus.New[*pb.Update](bus.WithLogger(logging.Discard()))
	defer b.Close()
	sub, err := b.Subscribe()
	require.NoError(t, err)

	l := NewLoop(b, Config{Interval: 10 * time.Millisecond, StartSlot: 1}, logging.Discard(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	for want := uint64(1); want <= 3; want++ {
		select {
		case u := <-sub.C():
			assert.Equal(t, want, u.GetSlotUpdate().GetSlot())
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for slot %d", want)
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
