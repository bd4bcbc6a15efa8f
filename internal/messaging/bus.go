package messaging

import (
	"io"
)

// Message is one upstream delivery. ID is the publisher-assigned message id
// (Nats-Msg-Id on NATS); it is empty when the publisher did not set one.
type Message struct {
	ID   string
	Data []byte
}

// Bus is a pluggable messaging interface for upstream feeds.
// Implementations may adapt NATS, Kafka, etc.
type Bus interface {
	Publish(subject string, data []byte) error
	PublishMsg(subject string, msg Message) error
	Subscribe(subject string, handler func(Message)) (io.Closer, error)
	Close() error
}
