package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadConfigWritesDefaults(t *testing.T) {
	newHarness(t)
	dir := filepath.Join(t.TempDir(), "cfg")

	v, err := loadConfig(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	var written configFile
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, defaultConfig(), written)

	s := settingsFrom(v, dir)
	assert.Equal(t, dir, s.configDir)
	assert.Equal(t, "json", s.backend)
	assert.Empty(t, s.dataDir)
	assert.Equal(t, "warn", s.logLevel)
	assert.Equal(t, "text", s.logFormat)
	assert.True(t, s.color)
	assert.Equal(t, 3*time.Hour, s.dueSoon)
}

func TestLoadConfigKeepsExistingFile(t *testing.T) {
	newHarness(t)
	dir := t.TempDir()
	content := "backend: sqlite\ndata_dir: /srv/tasks\ncolor: false\ndue_soon: 30m\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))

	v, err := loadConfig(dir)
	require.NoError(t, err)

	s := settingsFrom(v, dir)
	assert.Equal(t, "sqlite", s.backend)
	assert.Equal(t, "/srv/tasks", s.dataDir)
	assert.False(t, s.color)
	assert.Equal(t, 30*time.Minute, s.dueSoon)
	assert.Equal(t, "warn", s.logLevel)

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	newHarness(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("log_level: warn\ndata_dir: /from/config\n"), 0o644))

	t.Setenv("TODOLS_LOG_LEVEL", "debug")
	t.Setenv("TODOLS_DUE_SOON", "1h")
	t.Setenv("TODOLS_DATA_DIR", "/from/env")

	v, err := loadConfig(dir)
	require.NoError(t, err)

	s := settingsFrom(v, dir)
	assert.Equal(t, "debug", s.logLevel)
	assert.Equal(t, time.Hour, s.dueSoon)
	assert.Equal(t, "/from/config", s.dataDir, "data_dir in config.yaml outranks TODOLS_DATA_DIR")
}

func TestLoadConfigMalformed(t *testing.T) {
	newHarness(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("backend: [unclosed\n"), 0o644))

	_, err := loadConfig(dir)
	assert.ErrorContains(t, err, "read config")
}

func TestMalformedConfigIsSystemError(t *testing.T) {
	h := newHarness(t)
	h.writeConfig("backend: [unclosed\n")

	r := h.run()
	assert.Equal(t, exitSysError, r.code)
	assert.Contains(t, r.stderr, "read config")
}
