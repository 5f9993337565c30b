package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventDatasetChanged EventType = "dataset_changed"
	EventNotification   EventType = "notification"
	EventSyncFinished   EventType = "sync_finished"
)

// Event represents a data change notification fanned out to screens
type Event struct {
	Type       EventType
	Module     string    // For filtering - which module was modified (empty for global events)
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
