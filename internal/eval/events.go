package eval

import "github.com/sapt/auditor/internal/models"

// EventKind discriminates the messages streamed during a run.
type EventKind string

const (
	EventStatus   EventKind = "status"
	EventResult   EventKind = "result"
	EventError    EventKind = "error"
	EventComplete EventKind = "complete"
)

// Event is one message on a run's stream. The JSON field names are the
// contract with the SSE consumer and mirror the result-record shape.
type Event struct {
	Kind     EventKind      `json:"type"`
	Message  string         `json:"message,omitempty"`
	Progress float64        `json:"progress,omitempty"`
	Question string         `json:"perguntaAtual,omitempty"`
	Result   *models.Result `json:"resultado,omitempty"`
}

func statusEvent(message string, progress float64) Event {
	return Event{Kind: EventStatus, Message: message, Progress: progress}
}
