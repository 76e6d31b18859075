package events

import "time"

// ProtocolVersion is the wire protocol version spoken with the daemon
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventTasksChanged EventType = "tasks_changed"
	EventPing         EventType = "ping"
	EventPong         EventType = "pong"
)

// Op names the store mutation behind a tasks_changed event.
// Batched events carry an empty Op.
type Op string

const (
	OpInsert    Op = "insert"
	OpUpdate    Op = "update"
	OpDelete    Op = "delete"
	OpDeleteAll Op = "delete_all"
)

// Event represents a task store change notification
type Event struct {
	Type       EventType `json:"type"`
	Op         Op        `json:"op,omitempty"`
	TaskID     int       `json:"task_id,omitempty"`
	Origin     string    `json:"origin,omitempty"`      // Bus that produced the event
	Timestamp  time.Time `json:"timestamp"`             // When the event occurred
	SequenceID int64     `json:"sequence_id,omitempty"` // Assigned by the daemon for ordering
}

// Message wraps events and control messages for the wire protocol
type Message struct {
	Version int    `json:"version"`
	Type    string `json:"type"` // "event", "ping", "pong"
	Event   *Event `json:"event,omitempty"`
}
