package domain

type EventType string

const (
	EventProgress  EventType = "progress"
	EventCompleted EventType = "completed"
	EventError     EventType = "error"
)

type ProgressEvent struct {
	Total        int    `json:"total"`
	Processed    int    `json:"processed"`
	Percentage   int    `json:"percentage"`
	CurrentLabel string `json:"current_label"`
}

// Event is a message published on a session's progress stream.
type Event struct {
	Type EventType `json:"type"`
	*ProgressEvent
	JobID   string `json:"job_id,omitempty"`
	Message string `json:"message,omitempty"`
}

func NewProgressEvent(total, processed int, label string) ProgressEvent {
	return ProgressEvent{
		Total:        total,
		Processed:    processed,
		Percentage:   Percentage(total, processed),
		CurrentLabel: label,
	}
}

// Percentage is floor(processed*100/total).
func Percentage(total, processed int) int {
	if total <= 0 {
		return 100
	}

	return processed * 100 / total
}
