package types

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single entry in the task list.
type Task struct {
	ID          string    `json:"id"`          // UUID v7, generated on creation.
	Description string    `json:"description"` // Human-readable text (non-empty).
	Due         time.Time `json:"due"`         // Due date and time, local zone.
	Status      Status    `json:"status"`      // One of the Status constants.
}

// NewTask creates a task with a freshly generated ID. The caller is
// responsible for passing a non-empty description.
func NewTask(description string, due time.Time, status Status) *Task {
	return &Task{
		ID:          generateID(),
		Description: description,
		Due:         due,
		Status:      status,
	}
}

// SetDescription replaces the task description.
func (t *Task) SetDescription(description string) {
	t.Description = description
}

// SetDue replaces the due date.
func (t *Task) SetDue(due time.Time) {
	t.Due = due
}

// SetStatus replaces the task status.
func (t *Task) SetStatus(status Status) {
	t.Status = status
}

// generateID returns a new UUID v7, falling back to v4 if v7 generation fails.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
