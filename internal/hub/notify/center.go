// Package notify owns the notification queue reporting hub operation
// outcomes to the user. Entries live until the user dismisses them.
package notify

import (
	"sync"
	"time"

	"agridesk/internal/events"
	"agridesk/internal/types"
)

// Center is the process-wide notification store. It is the only component
// allowed to mutate notifications; screens read copies.
type Center struct {
	mu     sync.Mutex
	nextID int64
	items  []types.Notification
	bus    events.Publisher
	now    func() time.Time
}

// Option configures a Center.
type Option func(*Center)

// WithClock overrides the clock, used by tests for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// NewCenter creates an empty notification center. bus may be nil.
func NewCenter(bus events.Publisher, opts ...Option) *Center {
	c := &Center{bus: bus, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends a new unread notification and returns a copy of it.
func (c *Center) Add(title, message string, severity types.Severity) types.Notification {
	c.mu.Lock()
	c.nextID++
	n := types.Notification{
		ID:       c.nextID,
		Title:    title,
		Message:  message,
		Severity: severity,
		Date:     c.now(),
	}
	c.items = append(c.items, n)
	c.mu.Unlock()

	if c.bus != nil {
		c.bus.Publish(events.EventNotification, "")
	}
	return n
}

// List returns the notifications in insertion order.
func (c *Center) List() []types.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Latest returns the most recent notification, if any.
func (c *Center) Latest() (types.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return types.Notification{}, false
	}
	return c.items[len(c.items)-1], true
}

// MarkAsRead marks one notification read. Unknown ids and already-read
// entries are no-ops.
func (c *Center) MarkAsRead(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Read = true
			return
		}
	}
}

// MarkAllAsRead marks every notification read.
func (c *Center) MarkAllAsRead() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		c.items[i].Read = true
	}
}

// Delete removes one notification. Unknown ids are a no-op.
func (c *Center) Delete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear removes every notification. Ids keep increasing afterwards.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// UnreadCount is derived from the list on every call, never stored, so it
// can't drift from the entries themselves.
func (c *Center) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for i := range c.items {
		if !c.items[i].Read {
			count++
		}
	}
	return count
}
