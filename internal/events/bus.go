// Package events is an in-process notification bus for cache changes
package events

import (
	"log/slog"
	"sync"
	"time"
)

const defaultBuffer = 16

// Bus fans events out to subscribers. Publishing never blocks: a subscriber
// whose buffer is full misses the event.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	seq    int64
	closed bool
	logger *slog.Logger
}

// NewBus creates a bus. A nil logger uses slog.Default().
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[int]chan Event),
		logger: logger,
	}
}

// Publish stamps the event and delivers it to every subscriber
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.seq++
	event.SequenceID = b.seq
	event.Timestamp = time.Now()

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Debug("dropping event for slow subscriber",
				"subscriber", id,
				"event_type", event.Type,
				"key", event.Key,
				"sequence", event.SequenceID)
		}
	}
}

// Subscribe registers a new subscriber with the given channel buffer
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Close closes all subscriber channels. Later publishes are ignored.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
