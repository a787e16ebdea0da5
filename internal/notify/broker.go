package notify

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event describes one collection mutation: the storage key that changed and
// its new serialized value (nil when the key was removed).
type Event struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Broker carries change events between execution contexts sharing the same
// backend. Delivery is best-effort: after the writing context's publish
// completes the event arrives eventually, with no ordering or transaction
// guarantees.
type Broker interface {
	Publish(ctx context.Context, event Event) error
	// Subscribe registers fn for every published event and returns an
	// unsubscribe func.
	Subscribe(fn func(Event)) (func(), error)
	Close() error
}

// EncodeEvent and DecodeEvent are the wire helpers shared by the Redis and
// NATS brokers.
func EncodeEvent(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal change event for key %s: %w", event.Key, err)
	}
	return data, nil
}

func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("failed to unmarshal change event: %w", err)
	}
	return event, nil
}
