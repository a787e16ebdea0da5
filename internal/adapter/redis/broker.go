package redis

import (
	"context"

	"github.com/HansLagmay/realestate-coordination-service/internal/notify"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/redis/go-redis/v9"
)

// Broker propagates change events between processes over a Redis pub/sub
// channel. Each Subscribe gets its own PubSub connection and receive loop.
type Broker struct {
	client  *redis.Client
	channel string
	log     logger.Logger
}

func NewBroker(client *redis.Client, channel string, log logger.Logger) *Broker {
	return &Broker{client: client, channel: channel, log: log}
}

func (b *Broker) Publish(ctx context.Context, event notify.Event) error {
	data, err := notify.EncodeEvent(event)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, b.channel, data).Err()
}

func (b *Broker) Subscribe(fn func(notify.Event)) (func(), error) {
	pubsub := b.client.Subscribe(context.Background(), b.channel)
	if _, err := pubsub.Receive(context.Background()); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	go func() {
		for msg := range pubsub.Channel() {
			event, err := notify.DecodeEvent([]byte(msg.Payload))
			if err != nil {
				b.log.Warnf("Dropping malformed change event from channel %s: %v", b.channel, err)
				continue
			}
			fn(event)
		}
	}()

	return func() { _ = pubsub.Close() }, nil
}

func (b *Broker) Close() error {
	return nil
}
