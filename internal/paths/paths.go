// Package paths locates the todols config directory (config.yaml) and the
// data directory that holds the task file (tasks.json or tasks.db).
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppName names the todols directory under each platform root.
const AppName = "todols"

// Environment overrides for the two directories.
const (
	EnvConfigDir = "TODOLS_CONFIG_DIR"
	EnvDataDir   = "TODOLS_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// xdgRoot describes one XDG base directory: its variable and the path
// under $HOME used when the variable is unset.
type xdgRoot struct {
	env      string
	fallback []string
}

var (
	xdgConfig = xdgRoot{env: "XDG_CONFIG_HOME", fallback: []string{".config"}}
	xdgData   = xdgRoot{env: "XDG_DATA_HOME", fallback: []string{".local", "share"}}
)

// appDir returns the todols directory under root. Off Linux both roots
// collapse to os.UserConfigDir, so config.yaml and the task file share a
// directory there.
func appDir(root xdgRoot) (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
	if base := os.Getenv(root.env); base != "" {
		return filepath.Join(base, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append(append([]string{home}, root.fallback...), AppName)...), nil
}

// DefaultConfigDir is where config.yaml lives when nothing overrides it:
// $XDG_CONFIG_HOME/todols or ~/.config/todols on Linux.
func DefaultConfigDir() (string, error) {
	return appDir(xdgConfig)
}

// DefaultDataDir is where the task file lives when nothing overrides it:
// $XDG_DATA_HOME/todols or ~/.local/share/todols on Linux, the directory
// todols has always kept its list in.
func DefaultDataDir() (string, error) {
	return appDir(xdgData)
}

// ResolveConfigDir picks the config directory: the --config-dir flag, then
// TODOLS_CONFIG_DIR, then DefaultConfigDir. Explicit values are made
// absolute.
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok := firstSet(flag, os.Getenv(EnvConfigDir)); ok {
		return absDir(dir)
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks the directory holding the task file: the --data-dir
// flag, then data_dir from config.yaml, then TODOLS_DATA_DIR, then
// DefaultDataDir. Explicit values are made absolute; a leading "~/" in any
// of them refers to the home directory.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if dir, ok := firstSet(flag, configYAMLValue, os.Getenv(EnvDataDir)); ok {
		return absDir(dir)
	}
	return DefaultDataDir()
}

// firstSet returns the first non-empty value.
func firstSet(values ...string) (string, bool) {
	for _, v := range values {
		if v != "" {
			return v, true
		}
	}
	return "", false
}

// absDir expands a leading "~/" and makes dir absolute.
func absDir(dir string) (string, error) {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return filepath.Abs(dir)
}
