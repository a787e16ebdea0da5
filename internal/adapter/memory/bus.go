package memory

import (
	"context"
	"sync"

	"github.com/HansLagmay/realestate-coordination-service/internal/notify"
)

// Bus is the in-process notify.Broker. Publish delivers synchronously to
// every subscriber in the same process; it backs single-process deployments
// and tests, where the "other execution context" is another Store over the
// same Backend.
type Bus struct {
	mu          sync.Mutex
	subscribers map[int]func(notify.Event)
	nextID      int
	closed      bool
}

func NewBus() *Bus {
	return &Bus{subscribers: make(map[int]func(notify.Event))}
}

func (b *Bus) Publish(ctx context.Context, event notify.Event) error {
	b.mu.Lock()
	fns := make([]func(notify.Event), 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
	return nil
}

func (b *Bus) Subscribe(fn func(notify.Event)) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subscribers, id)
	}, nil
}

func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = make(map[int]func(notify.Event))
	b.closed = true
	return nil
}
