package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobsChangedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"jobId"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the usecase's notification dependency.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyJobsChanged(event string, jobID uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}

	evt := JobsChangedEvent{
		Type:      event,
		JobID:     jobID.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
