package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBusDelivers(t *testing.T) {
	b := NewMemoryBus()
	var a, c [][]byte

	closeA, err := b.Subscribe("updates", func(m Message) { a = append(a, m.Data) })
	require.NoError(t, err)
	_, err = b.Subscribe("other", func(m Message) { c = append(c, m.Data) })
	require.NoError(t, err)

	require.NoError(t, b.Publish("updates", []byte("one")))
	require.NoError(t, closeA.Close())
	require.NoError(t, b.Publish("updates", []byte("two")))

	assert.Equal(t, [][]byte{[]byte("one")}, a)
	assert.Empty(t, c)
}

func TestMemoryBusClosed(t *testing.T) {
	b := NewMemoryBus()
	require.NoError(t, b.Close())

	assert.ErrorIs(t, b.Publish("x", nil), ErrBusClosed)
	_, err := b.Subscribe("x", func(Message) {})
	assert.ErrorIs(t, err, ErrBusClosed)
	assert.ErrorIs(t, b.PublishMsg("x", Message{ID: "1"}), ErrBusClosed)
}

func TestMemoryBusCarriesMessageID(t *testing.T) {
	b := NewMemoryBus()
	var got []Message
	_, err := b.Subscribe("updates", func(m Message) { got = append(got, m) })
	require.NoError(t, err)

	require.NoError(t, b.PublishMsg("updates", Message{ID: "slot-9", Data: []byte("a")}))
	require.NoError(t, b.Publish("updates", []byte("b")))

	require.Len(t, got, 2)
	assert.Equal(t, "slot-9", got[0].ID)
	assert.Empty(t, got[1].ID)
}

var (
	_ Bus = (*MemoryBus)(nil)
	_ Bus = (*NATSBus)(nil)
)
