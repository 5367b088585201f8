package types

import (
	"fmt"
	"strings"
)

// Status is the progress state of a task. The numeric value defines the
// sort order: Todo < InProgress < Completed.
type Status int

// Task statuses.
const (
	StatusTodo Status = iota
	StatusInProgress
	StatusCompleted
)

// statusNames maps each status to its text form.
var statusNames = map[Status]string{
	StatusTodo:       "todo",
	StatusInProgress: "in-progress",
	StatusCompleted:  "completed",
}

// StatusNames lists the accepted status spellings in order, for help and
// error messages.
var StatusNames = []string{"todo", "in-progress", "completed"}

// ParseStatus converts text such as "todo" or "In-Progress" to a Status.
// Underscores are accepted in place of the hyphen.
// Returns ErrInvalidStatus for anything else.
func ParseStatus(s string) (Status, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for st, name := range statusNames {
		if name == norm {
			return st, nil
		}
	}
	return StatusTodo, fmt.Errorf("%w %q (valid: %s)", ErrInvalidStatus, s, strings.Join(StatusNames, ", "))
}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// String returns the text form of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Compare returns -1, 0 or +1 depending on whether s sorts before, equal
// to, or after other.
func (s Status) Compare(other Status) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	st, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
