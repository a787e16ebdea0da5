package notify

import (
	"strings"
	"sync"

	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
)

// Consumer receives the changed key and its new serialized value.
type Consumer func(key string, value []byte)

// Dispatcher subscribes to a Broker, filters events to the application
// namespace, and fans them out to registered consumers. A failing consumer
// never breaks its siblings.
type Dispatcher struct {
	namespace   string
	log         logger.Logger
	unsubscribe func()

	mu        sync.Mutex
	consumers map[int]Consumer
	nextID    int
}

func NewDispatcher(broker Broker, namespace string, log logger.Logger) (*Dispatcher, error) {
	d := &Dispatcher{
		namespace: namespace,
		log:       log,
		consumers: make(map[int]Consumer),
	}
	unsubscribe, err := broker.Subscribe(d.dispatch)
	if err != nil {
		return nil, err
	}
	d.unsubscribe = unsubscribe
	return d, nil
}

// AddConsumer registers fn and returns a removal func.
func (d *Dispatcher) AddConsumer(fn Consumer) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextID
	d.nextID++
	d.consumers[id] = fn
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.consumers, id)
	}
}

func (d *Dispatcher) Close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
	}
}

func (d *Dispatcher) dispatch(event Event) {
	if !strings.HasPrefix(event.Key, d.namespace) {
		return
	}

	d.mu.Lock()
	consumers := make([]Consumer, 0, len(d.consumers))
	for _, fn := range d.consumers {
		consumers = append(consumers, fn)
	}
	d.mu.Unlock()

	for _, fn := range consumers {
		d.invoke(fn, event)
	}
}

func (d *Dispatcher) invoke(fn Consumer, event Event) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Errorf("Change consumer panicked for key %s: %v", event.Key, r)
		}
	}()
	fn(event.Key, event.Value)
}
