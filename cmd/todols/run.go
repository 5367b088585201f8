// The default action of the todols CLI: load, apply, render, save.
package main

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todols/internal/render"
	"github.com/mesh-intelligence/todols/internal/storage"
	"github.com/mesh-intelligence/todols/internal/tasklist"
	"github.com/mesh-intelligence/todols/pkg/types"
)

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	req, err := a.buildRequest(cmd)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	dataDir, err := a.resolveDataDir()
	if err != nil {
		return err
	}
	adapter, err := storage.Open(types.Config{Backend: a.settings.backend, DataDir: dataDir})
	if err != nil {
		return sysError{err: err}
	}
	a.logger.Debug("storage opened", "data_dir", dataDir, "backend", a.settings.backend, "path", adapter.Path())

	// A task file that cannot be read never stops the run. The list starts
	// empty, and an unreadable file is only overwritten by a request that
	// changes the list.
	tasks, err := adapter.Load()
	unreadable := false
	switch {
	case err == nil:
		a.logger.Debug("tasks loaded", "path", adapter.Path(), "count", len(tasks))
	case errors.Is(err, fs.ErrNotExist):
		a.logger.Info("no task file yet, starting with an empty list", "path", adapter.Path())
	default:
		unreadable = true
		a.logger.Warn("could not load tasks, starting with an empty list", "path", adapter.Path(), "err", err)
	}

	store := tasklist.New(tasks...)
	entries, err := req.Apply(store)
	if err != nil {
		return err
	}

	if err := a.render(cmd, entries); err != nil {
		return sysError{err: err}
	}

	if unreadable && !req.Mutates() {
		a.logger.Debug("leaving unreadable task file untouched", "path", adapter.Path())
		return nil
	}
	if err := adapter.Save(store.Tasks()); err != nil {
		return err
	}
	a.logger.Debug("tasks saved", "path", adapter.Path(), "count", store.Len())
	return nil
}

// render writes entries to the command's output as a table or as JSON.
func (a *app) render(cmd *cobra.Command, entries []tasklist.Entry) error {
	w := cmd.OutOrStdout()
	if a.flags.jsonOut {
		return render.JSON(w, entries)
	}
	return render.Table(w, entries, render.Options{
		Now:     time.Now(),
		DueSoon: a.settings.dueSoon,
		Color:   a.settings.color,
	})
}
