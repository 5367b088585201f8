// Init command for the todols CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the todols config and data directories",
		Long: `Create the configuration directory with a default config.yaml and the
data directory that will hold the task file. Running init again is safe.`,
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

// runInit relies on setup having created the config directory and
// config.yaml; it adds the data directory and reports both.
func (a *app) runInit(cmd *cobra.Command, args []string) error {
	dataDir, err := a.resolveDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return sysError{err: fmt.Errorf("create data directory: %w", err)}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "todols initialized")
	fmt.Fprintln(out, "  config:", filepath.Join(a.settings.configDir, configFileExt))
	fmt.Fprintln(out, "  data:  ", dataDir)
	return nil
}
