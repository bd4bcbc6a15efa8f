package messaging

import (
	"fmt"
	"io"
	"time"

	"github.com/nats-io/nats.go"

	"accountsdb/internal/logging"
)

// NATSOptions tunes the NATS connection.
type NATSOptions struct {
	Name          string
	ReconnectWait time.Duration
	// Negative means reconnect forever.
	MaxReconnects int
}

type NATSBus struct {
	nc     *nats.Conn
	logger logging.Logger
}

// NewNATSBus connects to url with reconnect handling wired to logger.
func NewNATSBus(url string, o NATSOptions, logger logging.Logger) (*NATSBus, error) {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if o.ReconnectWait <= 0 {
		o.ReconnectWait = 2 * time.Second
	}
	if o.Name == "" {
		o.Name = "accountsdb"
	}
	nc, err := nats.Connect(url,
		nats.Name(o.Name),
		nats.ReconnectWait(o.ReconnectWait),
		nats.MaxReconnects(o.MaxReconnects),
		nats.ErrorHandler(func(_ *nats.Conn, sub *nats.Subscription, err error) {
			subject := ""
			if sub != nil {
				subject = sub.Subject
			}
			logger.Errorf("NATS error on %q: %v", subject, err)
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warnf("NATS disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Infof("NATS reconnected to %s", c.ConnectedUrl())
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return &NATSBus{nc: nc, logger: logger}, nil
}

func (b *NATSBus) Publish(subject string, data []byte) error { return b.nc.Publish(subject, data) }

// PublishMsg sets msg.ID as the Nats-Msg-Id header when present.
func (b *NATSBus) PublishMsg(subject string, msg Message) error {
	m := nats.NewMsg(subject)
	m.Data = msg.Data
	if msg.ID != "" {
		m.Header.Set(nats.MsgIdHdr, msg.ID)
	}
	return b.nc.PublishMsg(m)
}

func (b *NATSBus) Subscribe(subject string, handler func(Message)) (io.Closer, error) {
	sub, err := b.nc.Subscribe(subject, func(m *nats.Msg) {
		handler(Message{ID: m.Header.Get(nats.MsgIdHdr), Data: m.Data})
	})
	if err != nil {
		return nil, err
	}
	return closerFunc(func() error { return sub.Unsubscribe() }), nil
}

// Close drains pending messages and closes the connection.
func (b *NATSBus) Close() error {
	if err := b.nc.Drain(); err != nil {
		b.nc.Close()
		return err
	}
	return nil
}

type closerFunc func() error

func (c closerFunc) Close() error { return c() }
