package ws

import (
	"encoding/json"
	"time"
)

const (
	EventApplicationRecorded = "application_recorded"
	EventApplicationUpdated  = "application_updated"
	EventApplicationDeleted  = "application_deleted"
	EventJobsRanked          = "jobs_ranked"
)

type Event struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
}

// Publish wraps data in an Event and broadcasts it to every subscriber.
func (h *Hub) Publish(eventType string, data any) {
	if h == nil {
		return
	}
	b, err := json.Marshal(Event{
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	})
	if err != nil {
		h.logger.Warn("ws event encode failed", "type", eventType, "error", err)
		return
	}
	h.Broadcast(b)
}
