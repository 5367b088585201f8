package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/todols/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Compile-time interface check.
var _ Adapter = (*SQLiteFile)(nil)

// SQLiteFile stores the task list in a SQLite database, one row per task
// keyed by its position.
type SQLiteFile struct {
	path string
}

// NewSQLiteFile returns an adapter for the database file at path.
func NewSQLiteFile(path string) *SQLiteFile {
	return &SQLiteFile{path: path}
}

// Path returns the file location.
func (f *SQLiteFile) Path() string {
	return f.path
}

// Load reads all rows in position order. See Adapter.Load.
func (f *SQLiteFile) Load() ([]*types.Task, error) {
	// sql.Open would create a missing file; report it as absent instead.
	if _, err := os.Stat(f.path); err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.path, err)
	}

	db, err := sql.Open("sqlite", f.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.path, err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT task_id, description, due, status FROM tasks ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", f.path, err)
	}
	defer rows.Close()

	var records []taskJSON
	for rows.Next() {
		var r taskJSON
		if err := rows.Scan(&r.ID, &r.Description, &r.Due, &r.Status); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", f.path, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}

	tasks, err := fromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.path, err)
	}
	return tasks, nil
}

// Save builds a fresh database next to the target and renames it into
// place, so an unreadable or foreign file at the path is replaced. See
// Adapter.Save.
func (f *SQLiteFile) Save(tasks []*types.Task) error {
	if err := f.save(tasks); err != nil {
		return fmt.Errorf("%w: saving %s: %w", types.ErrIO, f.path, err)
	}
	return nil
}

func (f *SQLiteFile) save(tasks []*types.Task) (err error) {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if err := writeTasksDB(tmpName, tasks); err != nil {
		return err
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// writeTasksDB creates the schema in the empty database at path and inserts
// tasks in one transaction.
func writeTasksDB(path string, tasks []*types.Task) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO tasks (position, task_id, description, due, status) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range toRecords(tasks) {
		if _, err := stmt.Exec(i+1, r.ID, r.Description, r.Due, r.Status); err != nil {
			return fmt.Errorf("inserting task %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing tasks: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
