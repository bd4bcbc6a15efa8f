package messaging

import (
	"errors"
	"io"
	"sync"
)

// ErrBusClosed is returned by MemoryBus after Close.
var ErrBusClosed = errors.New("messaging: bus closed")

// MemoryBus delivers synchronously to in-process handlers. Used in tests in
// place of a broker.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[string]map[int]func(Message)
	nextID   int
	closed   bool
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[string]map[int]func(Message))}
}

func (b *MemoryBus) Publish(subject string, data []byte) error {
	return b.PublishMsg(subject, Message{Data: data})
}

func (b *MemoryBus) PublishMsg(subject string, msg Message) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}
	hs := make([]func(Message), 0, len(b.handlers[subject]))
	for _, h := range b.handlers[subject] {
		hs = append(hs, h)
	}
	b.mu.RUnlock()

	for _, h := range hs {
		h(msg)
	}
	return nil
}

func (b *MemoryBus) Subscribe(subject string, handler func(Message)) (io.Closer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBusClosed
	}
	id := b.nextID
	b.nextID++
	if b.handlers[subject] == nil {
		b.handlers[subject] = make(map[int]func(Message))
	}
	b.handlers[subject][id] = handler
	return closerFunc(func() error {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[subject], id)
		return nil
	}), nil
}

func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = make(map[string]map[int]func(Message))
	return nil
}
