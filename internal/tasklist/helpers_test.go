package tasklist

import (
	"testing"
	"time"

	"github.com/mesh-intelligence/todols/pkg/types"
)

// baseDue is the due date of the first task built by storeOf; each further
// task is due one hour later.
var baseDue = time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)

// storeOf builds a store with one todo task per description.
func storeOf(t *testing.T, descriptions ...string) *Store {
	t.Helper()
	tasks := make([]*types.Task, len(descriptions))
	for i, d := range descriptions {
		tasks[i] = types.NewTask(d, baseDue.Add(time.Duration(i)*time.Hour), types.StatusTodo)
	}
	return New(tasks...)
}

func descriptions(tasks []*types.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Description
	}
	return out
}

func entryPositions(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Position
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
