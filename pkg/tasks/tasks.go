// Package tasks provides the public API for reading and writing a todols
// task file from other programs. It wraps the storage backends while
// keeping their implementation internal.
//
// Example:
//
//	cfg := types.Config{Backend: types.BackendJSON, DataDir: dir}
//	list, err := tasks.Load(cfg)
//	...
//	list = append(list, types.NewTask("buy milk", due, types.StatusTodo))
//	err = tasks.Save(cfg, list)
package tasks

import (
	"github.com/mesh-intelligence/todols/internal/storage"
	"github.com/mesh-intelligence/todols/pkg/types"
)

// Path returns the location of the task file selected by cfg.
func Path(cfg types.Config) (string, error) {
	a, err := storage.Open(cfg)
	if err != nil {
		return "", err
	}
	return a.Path(), nil
}

// Load reads the task list selected by cfg, in saved order. A missing file
// gives an error matching fs.ErrNotExist.
func Load(cfg types.Config) ([]*types.Task, error) {
	a, err := storage.Open(cfg)
	if err != nil {
		return nil, err
	}
	return a.Load()
}

// Save replaces the task list selected by cfg. Write failures wrap
// types.ErrIO.
func Save(cfg types.Config, list []*types.Task) error {
	a, err := storage.Open(cfg)
	if err != nil {
		return err
	}
	return a.Save(list)
}
