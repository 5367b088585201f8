package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/todols/pkg/types"
)

func sampleTasks() []*types.Task {
	return []*types.Task{
		types.NewTask("write report", time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local), types.StatusTodo),
		types.NewTask("review PR #42", time.Date(2025, 3, 15, 17, 0, 5, 0, time.Local), types.StatusInProgress),
		types.NewTask("ship it, finally", time.Now(), types.StatusCompleted),
	}
}

// assertSameTasks checks that got is equivalent to want: same order, ids,
// descriptions, statuses and due instants.
func assertSameTasks(t *testing.T, want, got []*types.Task) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID, "task %d id", i)
		assert.Equal(t, want[i].Description, got[i].Description, "task %d description", i)
		assert.Equal(t, want[i].Status, got[i].Status, "task %d status", i)
		assert.True(t, want[i].Due.Equal(got[i].Due), "task %d due: want %v, got %v", i, want[i].Due, got[i].Due)
		assert.Equal(t, types.FormatDue(want[i].Due), types.FormatDue(got[i].Due), "task %d due text", i)
	}
}
