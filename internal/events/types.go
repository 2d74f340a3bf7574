package events

import "time"

// EventType indicates what happened to a cache entry
type EventType string

const (
	EventInvalidated EventType = "invalidated"
	EventUpdated     EventType = "updated"
	EventFailed      EventType = "failed"
	EventRemoved     EventType = "removed"
	EventCleared     EventType = "cleared"
)

// Event is a cache change notification
type Event struct {
	Type       EventType
	Key        string    // cache key in its string form, empty for EventCleared
	Timestamp  time.Time // set by the bus on publish
	SequenceID int64     // monotonically increasing per bus, set on publish
}
