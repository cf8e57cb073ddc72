package telemetry

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"
)

type Repository interface {
	Recorder
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
}

// MemoryRepository keeps events for the life of the process, in record
// order. Timestamps are taken under the lock so that order is also time
// order.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []Event
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("marshal %s metadata: %w", eventType, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{
		ID:        len(r.events) + 1,
		Type:      eventType,
		Timestamp: r.now(),
		Metadata:  string(raw),
	})
	return nil
}

// GetEvents returns events at or after since, oldest first. An empty
// eventTypes matches every type.
func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, _ := slices.BinarySearchFunc(r.events, since, func(e Event, t time.Time) int {
		return e.Timestamp.Compare(t)
	})

	out := make([]Event, 0, len(r.events)-start)
	for _, e := range r.events[start:] {
		if len(eventTypes) == 0 || slices.Contains(eventTypes, e.Type) {
			out = append(out, e)
		}
	}
	return out, nil
}
