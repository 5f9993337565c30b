package events

import (
	"sync"
	"time"
)

// subscriberBuffer is the per-subscriber channel depth. A screen that falls
// this far behind loses events rather than blocking publishers.
const subscriberBuffer = 64

// Publisher defines the interface for emitting events. Hub components depend
// on this rather than the concrete Bus so tests can stub it.
type Publisher interface {
	Publish(eventType EventType, module string)
}

// Compile-time verification that *Bus implements Publisher
var _ Publisher = (*Bus)(nil)

// Bus is an in-process fan-out of hub events. Every dashboard screen runs in
// the same process, so delivery is plain buffered channels with no transport.
type Bus struct {
	mu   sync.Mutex
	seq  int64
	next int
	subs map[int]chan Event
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Publish delivers an event to all current subscribers. Slow subscribers are
// skipped, never waited on. A nil bus is a no-op so headless callers can
// skip wiring one.
func (b *Bus) Publish(eventType EventType, module string) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	ev := Event{
		Type:       eventType,
		Module:     module,
		Timestamp:  time.Now(),
		SequenceID: b.seq,
	}
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel plus a cancel
// function. Cancel closes the channel; pending events may still be drained.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	if b == nil {
		ch := make(chan Event)
		close(ch)
		return ch, func() {}
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}
