package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// NATS-backed implementation of the EventPublisher port. Mutation events are
// fire-and-forget notifications; the connection reconnects on its own and a
// lost message is acceptable.
type NATSPublisher struct {
	conn *nats.Conn
	log  *zap.Logger
}

func NewNATSPublisher(url string, log *zap.Logger) (*NATSPublisher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	opts := []nats.Option{
		nats.Name("hotel-search-service publisher"),
		nats.Timeout(10 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("nats disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("nats reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats publisher: connect %q: %w", url, err)
	}

	return &NATSPublisher{conn: conn, log: log}, nil
}

func (p *NATSPublisher) Publish(_ context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("nats publisher: marshal payload for %q: %w", subject, err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("nats publisher: publish %q: %w", subject, err)
	}
	return nil
}

// Close flushes pending messages and drops the connection.
func (p *NATSPublisher) Close() {
	if err := p.conn.Flush(); err != nil {
		p.log.Warn("nats flush on close failed", zap.Error(err))
	}
	p.conn.Close()
}
