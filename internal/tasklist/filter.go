package tasklist

import (
	"fmt"
	"regexp"

	"github.com/mesh-intelligence/todols/pkg/types"
)

// Criterion selects tasks for Filter. Exactly one of Description, Due and
// Status should be set; when several are, Description wins over Due, and
// Due over Status. Reverse keeps the tasks that do not match.
type Criterion struct {
	Description *string       // Regular expression matched against the description.
	Due         *string       // Regular expression matched against FormatDue(due).
	Status      *types.Status // Exact status.
	Reverse     bool
}

// Count returns how many of the selectors are set.
func (c Criterion) Count() int {
	n := 0
	if c.Description != nil {
		n++
	}
	if c.Due != nil {
		n++
	}
	if c.Status != nil {
		n++
	}
	return n
}

// Filter returns the tasks matching c, each paired with its position in
// the unfiltered list. The store is not modified.
func (s *Store) Filter(c Criterion) ([]Entry, error) {
	match, err := c.matcher()
	if err != nil {
		return nil, err
	}

	var out []Entry
	for i, t := range s.tasks {
		if match(t) != c.Reverse {
			out = append(out, Entry{Position: i + 1, Task: t})
		}
	}
	return out, nil
}

func (c Criterion) matcher() (func(*types.Task) bool, error) {
	switch {
	case c.Description != nil:
		re, err := compilePattern(*c.Description)
		if err != nil {
			return nil, err
		}
		return func(t *types.Task) bool {
			return re.MatchString(t.Description)
		}, nil
	case c.Due != nil:
		re, err := compilePattern(*c.Due)
		if err != nil {
			return nil, err
		}
		return func(t *types.Task) bool {
			return re.MatchString(types.FormatDue(t.Due))
		}, nil
	case c.Status != nil:
		want := *c.Status
		return func(t *types.Task) bool {
			return t.Status == want
		}, nil
	default:
		return nil, types.ErrNoCriterion
	}
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", types.ErrPattern, pattern, err)
	}
	return re, nil
}
