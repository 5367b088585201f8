package tasklist

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mesh-intelligence/todols/pkg/types"
)

// SortKey selects the field Sort orders by.
type SortKey int

// Sort keys. SortNone is the zero value and is rejected by Sort.
const (
	SortNone SortKey = iota
	SortByDescription
	SortByDueDate
	SortByStatus
)

// sortKeyNames maps accepted flag spellings to sort keys.
var sortKeyNames = map[string]SortKey{
	"task":        SortByDescription,
	"description": SortByDescription,
	"name":        SortByDescription,
	"duedate":     SortByDueDate,
	"due":         SortByDueDate,
	"datetime":    SortByDueDate,
	"status":      SortByStatus,
}

// SortKeyNames lists the primary spelling of each sort key for help text.
var SortKeyNames = []string{"task", "duedate", "status"}

// ParseSortKey converts a flag value such as "task" to a SortKey.
// An empty string yields ErrMissingSortKey; unknown text ErrInvalidSortKey.
func ParseSortKey(s string) (SortKey, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "" {
		return SortNone, types.ErrMissingSortKey
	}
	key, ok := sortKeyNames[norm]
	if !ok {
		return SortNone, fmt.Errorf("%w %q (valid: %s)", types.ErrInvalidSortKey, s, strings.Join(SortKeyNames, ", "))
	}
	return key, nil
}

// String returns the primary spelling of the key.
func (k SortKey) String() string {
	switch k {
	case SortByDescription:
		return "task"
	case SortByDueDate:
		return "duedate"
	case SortByStatus:
		return "status"
	default:
		return "none"
	}
}

// Sort reorders the list in place by key, ascending unless reverse is set.
// Tasks that compare equal keep their relative order.
func (s *Store) Sort(key SortKey, reverse bool) error {
	var compare func(a, b *types.Task) int
	switch key {
	case SortByDescription:
		fold := cases.Fold()
		compare = func(a, b *types.Task) int {
			return naturalCompare(fold.String(a.Description), fold.String(b.Description))
		}
	case SortByDueDate:
		compare = func(a, b *types.Task) int {
			return a.Due.Compare(b.Due)
		}
	case SortByStatus:
		compare = func(a, b *types.Task) int {
			return a.Status.Compare(b.Status)
		}
	case SortNone:
		return types.ErrMissingSortKey
	default:
		return fmt.Errorf("%w: %d", types.ErrInvalidSortKey, int(key))
	}

	if reverse {
		asc := compare
		compare = func(a, b *types.Task) int { return asc(b, a) }
	}
	slices.SortStableFunc(s.tasks, compare)
	return nil
}

// naturalCompare orders strings so that runs of ASCII digits compare by
// numeric value: "task2" < "task10". Other runes compare by code point.
func naturalCompare(a, b string) int {
	ar, br := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ar) && j < len(br) {
		if isDigit(ar[i]) && isDigit(br[j]) {
			si, sj := i, j
			for i < len(ar) && isDigit(ar[i]) {
				i++
			}
			for j < len(br) && isDigit(br[j]) {
				j++
			}
			if c := compareDigits(ar[si:i], br[sj:j]); c != 0 {
				return c
			}
			continue
		}
		if c := cmp.Compare(ar[i], br[j]); c != 0 {
			return c
		}
		i++
		j++
	}
	return cmp.Compare(len(ar)-i, len(br)-j)
}

// compareDigits compares two digit runs by numeric value. Equal values
// with different zero padding order the shorter run first.
func compareDigits(a, b []rune) int {
	ta, tb := trimZeros(a), trimZeros(b)
	if c := cmp.Compare(len(ta), len(tb)); c != 0 {
		return c
	}
	if c := slices.Compare(ta, tb); c != 0 {
		return c
	}
	return cmp.Compare(len(a), len(b))
}

func trimZeros(r []rune) []rune {
	for len(r) > 0 && r[0] == '0' {
		r = r[1:]
	}
	return r
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
