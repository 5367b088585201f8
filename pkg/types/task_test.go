package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	due := time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)
	task := NewTask("write report", due, StatusInProgress)

	parsed, err := uuid.Parse(task.ID)
	require.NoError(t, err, "ID must be a UUID")
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, "write report", task.Description)
	assert.True(t, due.Equal(task.Due))
	assert.Equal(t, StatusInProgress, task.Status)
}

func TestNewTaskUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := NewTask("t", time.Now(), StatusTodo)
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestTaskSettersKeepID(t *testing.T) {
	task := NewTask("before", time.Now(), StatusTodo)
	id := task.ID
	newDue := time.Date(2030, 1, 2, 3, 4, 5, 0, time.Local)

	task.SetDescription("after")
	task.SetDue(newDue)
	task.SetStatus(StatusCompleted)

	assert.Equal(t, id, task.ID, "ID must not change")
	assert.Equal(t, "after", task.Description)
	assert.True(t, newDue.Equal(task.Due))
	assert.Equal(t, StatusCompleted, task.Status)
}

func TestTaskJSON(t *testing.T) {
	task := &Task{
		ID:          "0190b8a4-0000-7000-8000-000000000001",
		Description: "pay rent",
		Due:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:      StatusTodo,
	}
	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "0190b8a4-0000-7000-8000-000000000001",
		"description": "pay rent",
		"due": "2025-06-01T12:00:00Z",
		"status": "todo"
	}`, string(data))
}
