// Config loading for the todols CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/todols/internal/render"
	"github.com/mesh-intelligence/todols/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "TODOLS"

	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
	cfgKeyColor     = "color"
	cfgKeyDueSoon   = "due_soon"

	defaultBackend   = types.BackendJSON
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// configFile holds the structure written to a fresh config.yaml.
type configFile struct {
	Backend   string `yaml:"backend"`
	DataDir   string `yaml:"data_dir,omitempty"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Color     bool   `yaml:"color"`
	DueSoon   string `yaml:"due_soon"`
}

// settings is the resolved configuration for one invocation.
type settings struct {
	configDir string
	backend   string
	dataDir   string
	logLevel  string
	logFormat string
	color     bool
	dueSoon   time.Duration
}

// defaultConfig returns the values written to config.yaml on first run.
func defaultConfig() configFile {
	return configFile{
		Backend:   defaultBackend,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Color:     true,
		DueSoon:   render.DefaultDueSoon.String(),
	}
}

// loadConfig reads config.yaml from configDir using Viper. It creates the
// config directory and a default config.yaml on first run. Keys other than
// data_dir can also be set through TODOLS_* environment variables.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetDefault(cfgKeyColor, true)
	v.SetDefault(cfgKeyDueSoon, render.DefaultDueSoon)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	// data_dir is deliberately not bound: TODOLS_DATA_DIR ranks below
	// config.yaml and is handled by paths.ResolveDataDir.
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyBackend, cfgKeyLogLevel, cfgKeyLogFormat, cfgKeyColor, cfgKeyDueSoon} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// settingsFrom extracts the resolved settings from v.
func settingsFrom(v *viper.Viper, configDir string) settings {
	return settings{
		configDir: configDir,
		backend:   v.GetString(cfgKeyBackend),
		dataDir:   v.GetString(cfgKeyDataDir),
		logLevel:  v.GetString(cfgKeyLogLevel),
		logFormat: v.GetString(cfgKeyLogFormat),
		color:     v.GetBool(cfgKeyColor),
		dueSoon:   v.GetDuration(cfgKeyDueSoon),
	}
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# todols configuration\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}
