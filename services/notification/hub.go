package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultSubscriberBuffer = 4

// Hub fans events out to subscribers in this process. A subscriber whose
// buffer is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]chan Event
	nextID uint64
	buffer int
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		subs:   make(map[uint64]chan Event),
		buffer: defaultSubscriberBuffer,
		logger: logger,
	}
}

// Subscribe registers a listener. The returned func unsubscribes and closes
// the channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, h.buffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Deliver hands ev to every subscriber without blocking and returns how many
// received it.
func (h *Hub) Deliver(ev Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for id, ch := range h.subs {
		select {
		case ch <- ev:
			delivered++
		default:
			h.logger.Debug("dropping event for slow subscriber",
				zap.Uint64("subscriber", id), zap.String("event", ev.Name))
		}
	}
	return delivered
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// BroadcastChairsChanged delivers straight to local subscribers.
func (h *Hub) BroadcastChairsChanged(_ context.Context) error {
	n := h.Deliver(Event{Name: EventChairUpdated, At: time.Now().UTC()})
	h.logger.Debug("chairs changed broadcast", zap.Int("delivered", n))
	return nil
}
