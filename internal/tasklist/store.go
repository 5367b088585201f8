// Package tasklist implements the in-memory task list: adding, updating,
// deleting, sorting, and filtering tasks addressed by their 1-based
// position in the list.
package tasklist

import (
	"fmt"
	"slices"
	"time"

	"github.com/mesh-intelligence/todols/pkg/types"
)

// Store is an ordered list of tasks. A task's position is its index + 1
// and changes whenever the list is sorted or a task before it is deleted.
type Store struct {
	tasks []*types.Task
}

// Entry pairs a task with its 1-based position in the list the entry was
// taken from.
type Entry struct {
	Position int         `json:"position"`
	Task     *types.Task `json:"task"`
}

// Changes holds the optional fields for Update. Nil fields are left untouched.
type Changes struct {
	Description *string
	Due         *string
	Status      *types.Status
}

// New creates a store holding tasks in the given order.
func New(tasks ...*types.Task) *Store {
	return &Store{tasks: slices.Clone(tasks)}
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns the tasks in list order. The slice is a copy; the tasks
// are shared.
func (s *Store) Tasks() []*types.Task {
	return slices.Clone(s.tasks)
}

// At returns the task at the 1-based position.
func (s *Store) At(position int) (*types.Task, error) {
	if err := s.checkPosition(position); err != nil {
		return nil, err
	}
	return s.tasks[position-1], nil
}

// Entries returns every task paired with its current position.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, len(s.tasks))
	for i, t := range s.tasks {
		entries[i] = Entry{Position: i + 1, Task: t}
	}
	return entries
}

// Add creates one task per description and appends them in order. The
// due date at the same index is required; the status at the same index is
// optional and defaults to todo. Nothing is appended if any input is bad.
func (s *Store) Add(descriptions, dues []string, statuses []types.Status) ([]*types.Task, error) {
	if len(dues) < len(descriptions) {
		return nil, fmt.Errorf("%w: %d task(s) given but only %d due date(s)",
			types.ErrMissingField, len(descriptions), len(dues))
	}

	created := make([]*types.Task, 0, len(descriptions))
	for i, desc := range descriptions {
		if desc == "" {
			return nil, fmt.Errorf("task %d: %w", i+1, types.ErrEmptyDescription)
		}
		due, err := types.ParseDue(dues[i])
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		status := types.StatusTodo
		if i < len(statuses) {
			status = statuses[i]
		}
		created = append(created, types.NewTask(desc, due, status))
	}

	s.tasks = append(s.tasks, created...)
	return created, nil
}

// Update applies the non-nil fields of ch to the task at position.
// An empty Changes is a no-op.
func (s *Store) Update(position int, ch Changes) error {
	task, err := s.At(position)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	// Validate everything before touching the task.
	if ch.Description != nil && *ch.Description == "" {
		return fmt.Errorf("update: %w", types.ErrEmptyDescription)
	}
	var due time.Time
	if ch.Due != nil {
		if due, err = types.ParseDue(*ch.Due); err != nil {
			return fmt.Errorf("update: %w", err)
		}
	}

	if ch.Description != nil {
		task.SetDescription(*ch.Description)
	}
	if ch.Due != nil {
		task.SetDue(due)
	}
	if ch.Status != nil {
		task.SetStatus(*ch.Status)
	}
	return nil
}

// Delete removes the tasks at the given positions. Positions are processed
// from largest to smallest, once each, so earlier removals never shift a
// position still to be processed. The first out-of-range position stops the
// batch; removals already made stay made.
func (s *Store) Delete(positions []int) error {
	order := slices.Clone(positions)
	slices.Sort(order)
	order = slices.Compact(order)
	slices.Reverse(order)

	for _, pos := range order {
		if err := s.checkPosition(pos); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		s.tasks = slices.Delete(s.tasks, pos-1, pos)
	}
	return nil
}

func (s *Store) checkPosition(position int) error {
	if position < 1 || position > len(s.tasks) {
		return fmt.Errorf("%w: position %d (list has %d task(s))",
			types.ErrIndexOutOfRange, position, len(s.tasks))
	}
	return nil
}
