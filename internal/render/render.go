// Package render presents task list entries as a colored table or as JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mesh-intelligence/todols/internal/tasklist"
	"github.com/mesh-intelligence/todols/pkg/types"
)

// DefaultDueSoon is how close a due date must be to be shown as imminent.
const DefaultDueSoon = 3 * time.Hour

// Column headers, in display order.
var headers = []string{"Sl.No.", "Task", "Duedate", "Status"}

// Colors for due dates and statuses.
var (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorOrange = lipgloss.Color("#FFA500")
)

// Options controls table rendering.
type Options struct {
	Now     time.Time     // Reference time for due-date urgency.
	DueSoon time.Duration // Window in which an open task counts as due soon.
	Color   bool          // Apply colors and the bold header.
}

// DefaultOptions returns colored output relative to the current time.
func DefaultOptions() Options {
	return Options{
		Now:     time.Now(),
		DueSoon: DefaultDueSoon,
		Color:   true,
	}
}

// Urgency classifies a task's due date relative to now.
type Urgency int

// Urgency levels. UrgencyNone applies to completed tasks.
const (
	UrgencyNone Urgency = iota
	UrgencyOverdue
	UrgencySoon
	UrgencyLater
)

// DueUrgency reports how pressing t's due date is at now.
func DueUrgency(t *types.Task, now time.Time, soon time.Duration) Urgency {
	switch {
	case t.Status == types.StatusCompleted:
		return UrgencyNone
	case !t.Due.After(now):
		return UrgencyOverdue
	case t.Due.Sub(now) > soon:
		return UrgencyLater
	default:
		return UrgencySoon
	}
}

// Table writes entries to w as a bordered table.
func Table(w io.Writer, entries []tasklist.Entry, opts Options) error {
	r := lipgloss.NewRenderer(w)
	cell := r.NewStyle().Padding(0, 1)
	header := cell.Align(lipgloss.Center)
	if opts.Color {
		header = header.Bold(true)
	}

	styles := make([][]lipgloss.Style, len(entries))
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	for i, e := range entries {
		due, status := cell, cell
		if opts.Color {
			if c, ok := dueColor(DueUrgency(e.Task, opts.Now, opts.DueSoon)); ok {
				due = due.Foreground(c)
			}
			status = status.Foreground(statusColor(e.Task.Status))
		}
		styles[i] = []lipgloss.Style{cell, cell, due, status}

		t.Row(
			strconv.Itoa(e.Position),
			e.Task.Description,
			types.FormatDue(e.Task.Due),
			e.Task.Status.String(),
		)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return header
		}
		if row >= 0 && row < len(styles) && col < len(styles[row]) {
			return styles[row][col]
		}
		return cell
	})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// JSON writes entries to w as an indented JSON array.
func JSON(w io.Writer, entries []tasklist.Entry) error {
	if entries == nil {
		entries = []tasklist.Entry{}
	}
	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func dueColor(u Urgency) (lipgloss.Color, bool) {
	switch u {
	case UrgencyOverdue:
		return colorRed, true
	case UrgencySoon:
		return colorYellow, true
	case UrgencyLater:
		return colorGreen, true
	default:
		return "", false
	}
}

func statusColor(s types.Status) lipgloss.Color {
	switch s {
	case types.StatusInProgress:
		return colorYellow
	case types.StatusCompleted:
		return colorGreen
	default:
		return colorOrange
	}
}
