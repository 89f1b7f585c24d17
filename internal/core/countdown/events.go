package countdown

import "time"

// EventType defines the type of countdown event.
type EventType string

const (
	EventTick      EventType = "tick"
	EventCompleted EventType = "completed"
)

// Event represents a countdown update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
