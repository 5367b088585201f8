// Package storage loads and saves the task list as a single file.
// Two formats are supported: an indented JSON array (the default) and a
// SQLite database with one row per task.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mesh-intelligence/todols/pkg/types"
)

// File names inside the data directory, per backend.
const (
	JSONFileName   = "tasks.json"
	SQLiteFileName = "tasks.db"
)

// Adapter persists a task list at a fixed path.
type Adapter interface {
	// Load reads every task in saved order. When the file is absent,
	// unreadable or malformed, Load returns an empty list together with an
	// error describing why; callers warn and continue with no tasks.
	Load() ([]*types.Task, error)

	// Save replaces the file contents with tasks, creating the file and
	// its directory if needed. Errors wrap types.ErrIO.
	Save(tasks []*types.Task) error

	// Path returns the file location.
	Path() string
}

// Open returns the adapter for cfg.Backend, rooted at cfg.DataDir.
func Open(cfg types.Config) (Adapter, error) {
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, types.ErrBackendUnknown) {
			return nil, fmt.Errorf("%w %q", err, cfg.Backend)
		}
		return nil, err
	}
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		return NewSQLiteFile(filepath.Join(dataDir, SQLiteFileName)), nil
	default:
		return NewJSONFile(filepath.Join(dataDir, JSONFileName)), nil
	}
}
