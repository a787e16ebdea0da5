package notify_test

import (
	"context"
	"testing"

	"github.com/HansLagmay/realestate-coordination-service/internal/adapter/memory"
	"github.com/HansLagmay/realestate-coordination-service/internal/notify"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherFiltersByNamespace(t *testing.T) {
	ctx := context.Background()
	bus := memory.NewBus()
	dispatcher, err := notify.NewDispatcher(bus, "realestate:", logger.NoOp{})
	require.NoError(t, err)
	defer dispatcher.Close()

	var seen []string
	dispatcher.AddConsumer(func(key string, value []byte) {
		seen = append(seen, key)
	})

	require.NoError(t, bus.Publish(ctx, notify.Event{Key: "realestate:properties", Value: []byte(`[]`)}))
	require.NoError(t, bus.Publish(ctx, notify.Event{Key: "other:properties", Value: []byte(`[]`)}))
	require.NoError(t, bus.Publish(ctx, notify.Event{Key: "realestate:users", Value: []byte(`[]`)}))

	assert.Equal(t, []string{"realestate:properties", "realestate:users"}, seen)
}

func TestPanickingConsumerDoesNotBreakSiblings(t *testing.T) {
	ctx := context.Background()
	bus := memory.NewBus()
	dispatcher, err := notify.NewDispatcher(bus, "realestate:", logger.NoOp{})
	require.NoError(t, err)
	defer dispatcher.Close()

	dispatcher.AddConsumer(func(key string, value []byte) {
		panic("consumer bug")
	})
	delivered := 0
	dispatcher.AddConsumer(func(key string, value []byte) {
		delivered++
	})

	require.NoError(t, bus.Publish(ctx, notify.Event{Key: "realestate:sales", Value: []byte(`[]`)}))
	assert.Equal(t, 1, delivered)
}

func TestRemovedConsumerStopsReceiving(t *testing.T) {
	ctx := context.Background()
	bus := memory.NewBus()
	dispatcher, err := notify.NewDispatcher(bus, "realestate:", logger.NoOp{})
	require.NoError(t, err)
	defer dispatcher.Close()

	delivered := 0
	remove := dispatcher.AddConsumer(func(key string, value []byte) {
		delivered++
	})

	require.NoError(t, bus.Publish(ctx, notify.Event{Key: "realestate:inquiries", Value: []byte(`[]`)}))
	remove()
	require.NoError(t, bus.Publish(ctx, notify.Event{Key: "realestate:inquiries", Value: []byte(`[]`)}))

	assert.Equal(t, 1, delivered)
}

func TestClosedDispatcherIgnoresLaterEvents(t *testing.T) {
	ctx := context.Background()
	bus := memory.NewBus()
	dispatcher, err := notify.NewDispatcher(bus, "realestate:", logger.NoOp{})
	require.NoError(t, err)

	delivered := 0
	dispatcher.AddConsumer(func(key string, value []byte) {
		delivered++
	})
	dispatcher.Close()

	require.NoError(t, bus.Publish(ctx, notify.Event{Key: "realestate:properties", Value: []byte(`[]`)}))
	assert.Zero(t, delivered)
}

func TestEventValueRoundTrip(t *testing.T) {
	payload, err := notify.EncodeEvent(notify.Event{Key: "realestate:properties", Value: []byte(`[{"id":"prop_1"}]`)})
	require.NoError(t, err)

	decoded, err := notify.DecodeEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, "realestate:properties", decoded.Key)
	assert.JSONEq(t, `[{"id":"prop_1"}]`, string(decoded.Value))
}
