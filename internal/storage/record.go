package storage

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/todols/pkg/types"
)

// taskJSON is the saved form of a task. Both backends store the same
// string fields; due dates use RFC 3339 with the local offset.
type taskJSON struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Due         string `json:"due"`
	Status      string `json:"status"`
}

func toRecord(t *types.Task) taskJSON {
	return taskJSON{
		ID:          t.ID,
		Description: t.Description,
		Due:         t.Due.In(time.Local).Format(time.RFC3339Nano),
		Status:      t.Status.String(),
	}
}

func toRecords(tasks []*types.Task) []taskJSON {
	records := make([]taskJSON, len(tasks))
	for i, t := range tasks {
		records[i] = toRecord(t)
	}
	return records
}

// fromRecord rebuilds a task, rejecting records that would break the task
// invariants.
func fromRecord(r taskJSON) (*types.Task, error) {
	if r.ID == "" {
		return nil, fmt.Errorf("task has no id")
	}
	if r.Description == "" {
		return nil, fmt.Errorf("task %s: %w", r.ID, types.ErrEmptyDescription)
	}
	due, err := time.Parse(time.RFC3339Nano, r.Due)
	if err != nil {
		return nil, fmt.Errorf("task %s: due %q: %w", r.ID, r.Due, err)
	}
	status, err := types.ParseStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", r.ID, err)
	}
	return &types.Task{
		ID:          r.ID,
		Description: r.Description,
		Due:         due.In(time.Local),
		Status:      status,
	}, nil
}

func fromRecords(records []taskJSON) ([]*types.Task, error) {
	tasks := make([]*types.Task, 0, len(records))
	for i, r := range records {
		t, err := fromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
