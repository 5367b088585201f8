package tasklist

import (
	"fmt"

	"github.com/mesh-intelligence/todols/pkg/types"
)

// Request is one invocation's worth of work against a Store, as read from
// the command line. The field groups Names, Dues and Statuses feed add,
// update and filter alike.
type Request struct {
	Add     bool
	Update  *int    // 1-based position to update, nil for none.
	Delete  []int   // 1-based positions to delete.
	Sort    SortKey // SortNone for no sort.
	Reverse bool    // Applies to Sort and Filter.
	Filter  bool

	Names    []string
	Dues     []string
	Statuses []types.Status
}

// Validate checks the field-group requirements of each requested action.
func (r Request) Validate() error {
	if r.Filter {
		switch n := r.criterion().Count(); {
		case n == 0:
			return types.ErrNoCriterion
		case n > 1:
			return fmt.Errorf("%w: use only one of name, due date or status", types.ErrConflictingCriteria)
		}
		return nil
	}
	if r.Add && len(r.Names) == 0 {
		return fmt.Errorf("add: %w: at least one name is required", types.ErrMissingField)
	}
	if r.Update != nil && len(r.Names) == 0 && len(r.Dues) == 0 && len(r.Statuses) == 0 {
		return fmt.Errorf("update: %w: give a new name, due date or status", types.ErrMissingField)
	}
	return nil
}

// Apply validates the request and runs it against s. A filter request
// leaves s untouched and returns the matching entries. Otherwise add,
// update, delete and sort run in that order and the full list is returned.
// The first failing step stops the run; steps already applied stay applied.
func (r Request) Apply(s *Store) ([]Entry, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if r.Filter {
		c := r.criterion()
		c.Reverse = r.Reverse
		return s.Filter(c)
	}

	if r.Add {
		if _, err := s.Add(r.Names, r.Dues, r.Statuses); err != nil {
			return nil, fmt.Errorf("add: %w", err)
		}
	}
	if r.Update != nil {
		if err := s.Update(*r.Update, r.changes()); err != nil {
			return nil, err
		}
	}
	if len(r.Delete) > 0 {
		if err := s.Delete(r.Delete); err != nil {
			return nil, err
		}
	}
	if r.Sort != SortNone {
		if err := s.Sort(r.Sort, r.Reverse); err != nil {
			return nil, fmt.Errorf("sort: %w", err)
		}
	}
	return s.Entries(), nil
}

// Mutates reports whether the request may change the store.
func (r Request) Mutates() bool {
	if r.Filter {
		return false
	}
	return r.Add || r.Update != nil || len(r.Delete) > 0 || r.Sort != SortNone
}

// changes takes the first value of each field group.
func (r Request) changes() Changes {
	var ch Changes
	if len(r.Names) > 0 {
		ch.Description = &r.Names[0]
	}
	if len(r.Dues) > 0 {
		ch.Due = &r.Dues[0]
	}
	if len(r.Statuses) > 0 {
		ch.Status = &r.Statuses[0]
	}
	return ch
}

// criterion takes the first value of each field group.
func (r Request) criterion() Criterion {
	ch := r.changes()
	return Criterion{
		Description: ch.Description,
		Due:         ch.Due,
		Status:      ch.Status,
	}
}
