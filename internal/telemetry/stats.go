package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Since            string            `json:"since"`
	EventCounts      map[EventType]int `json:"event_counts"`
	TasksCreated     int               `json:"tasks_created"`
	TaskStarsCreated int               `json:"task_stars_created"`
	RewardsCreated   int               `json:"rewards_created"`
	RewardsUpdated   int               `json:"rewards_updated"`
	RewardsDeleted   int               `json:"rewards_deleted"`
}

// CalculateStats folds events into counters. TaskStarsCreated sums the "stars"
// metadata of created tasks.
func CalculateStats(events []Event, since time.Time) Stats {
	stats := Stats{
		Since:       since.UTC().Format(time.RFC3339),
		EventCounts: make(map[EventType]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		switch event.Type {
		case EventTaskCreated:
			stats.TasksCreated++
			var metadata EventMetadata
			if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
				continue
			}
			// JSON numbers decode as float64
			if stars, ok := metadata["stars"].(float64); ok {
				stats.TaskStarsCreated += int(stars)
			}
		case EventRewardCreated:
			stats.RewardsCreated++
		case EventRewardUpdated:
			stats.RewardsUpdated++
		case EventRewardDeleted:
			stats.RewardsDeleted++
		}
	}

	return stats
}
