package telemetry

import "time"

type EventType string

const (
	EventTaskCreated   EventType = "task_created"
	EventRewardCreated EventType = "reward_created"
	EventRewardUpdated EventType = "reward_updated"
	EventRewardDeleted EventType = "reward_deleted"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}

// Recorder is the write side of a Repository, handed to HTTP handlers.
type Recorder interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
}

// Discard drops every event.
var Discard Recorder = discard{}

type discard struct{}

func (discard) RecordEvent(EventType, EventMetadata) error { return nil }
