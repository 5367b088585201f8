package types

import (
	"fmt"
	"time"
)

// DueLayout is the text form of a due date, day-month-year hour:minute:second.
// Filtering by due date matches patterns against this form.
const DueLayout = "02-01-2006 15:04:05"

// dueParseLayout accepts single-digit days, months and hours as well.
const dueParseLayout = "2-1-2006 15:04:05"

// ParseDue parses text in DueLayout as a local time.
// Returns an error wrapping ErrParse on malformed input.
func ParseDue(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dueParseLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: due date %q must look like dd-mm-yyyy hh:mm:ss", ErrParse, s)
	}
	return t, nil
}

// FormatDue renders t in local time using DueLayout.
func FormatDue(t time.Time) string {
	return t.In(time.Local).Format(DueLayout)
}
