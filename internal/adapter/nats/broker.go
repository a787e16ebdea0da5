package nats

import (
	"context"
	"fmt"

	"github.com/HansLagmay/realestate-coordination-service/internal/notify"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/nats-io/nats.go"
)

// Broker propagates change events between processes over a NATS subject.
type Broker struct {
	conn    *nats.Conn
	subject string
	log     logger.Logger
}

func NewBroker(conn *nats.Conn, subject string, log logger.Logger) (*Broker, error) {
	if conn == nil {
		return nil, fmt.Errorf("NATS connection cannot be nil")
	}
	return &Broker{conn: conn, subject: subject, log: log}, nil
}

func (b *Broker) Publish(ctx context.Context, event notify.Event) error {
	data, err := notify.EncodeEvent(event)
	if err != nil {
		return err
	}
	if err := b.conn.Publish(b.subject, data); err != nil {
		return fmt.Errorf("failed to publish change event to subject %s: %w", b.subject, err)
	}
	return nil
}

func (b *Broker) Subscribe(fn func(notify.Event)) (func(), error) {
	sub, err := b.conn.Subscribe(b.subject, func(msg *nats.Msg) {
		event, err := notify.DecodeEvent(msg.Data)
		if err != nil {
			b.log.Warnf("Dropping malformed change event from subject %s: %v", b.subject, err)
			return
		}
		fn(event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject %s: %w", b.subject, err)
	}
	return func() { _ = sub.Unsubscribe() }, nil
}

func (b *Broker) Close() error {
	b.conn.Close()
	return nil
}
