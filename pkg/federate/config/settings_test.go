package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Empty(t, s.Name)
	assert.False(t, s.ThreadSafe)
	assert.False(t, s.Metrics)
	assert.False(t, s.Tracing)
	assert.Equal(t, DefaultSweepInterval, s.SweepInterval)
}

func TestSettingsFrom_TopLevel(t *testing.T) {
	s, err := SettingsFrom(New(map[string]any{
		"name":           "orders",
		"thread_safe":    true,
		"metrics":        true,
		"sweep_interval": "10s",
	}))
	require.NoError(t, err)

	assert.Equal(t, Settings{
		Name:          "orders",
		ThreadSafe:    true,
		Metrics:       true,
		SweepInterval: 10 * time.Second,
	}, s)
}

func TestSettingsFrom_Section(t *testing.T) {
	cfg, err := FromYAML([]byte(`
federate:
  name: nested
  tracing: true
unrelated: 1
`))
	require.NoError(t, err)

	s, err := SettingsFrom(cfg)
	require.NoError(t, err)

	assert.Equal(t, "nested", s.Name)
	assert.True(t, s.Tracing)
	assert.False(t, s.ThreadSafe)
	assert.Equal(t, DefaultSweepInterval, s.SweepInterval)
}

func TestSettingsFrom_InvalidSweepInterval(t *testing.T) {
	_, err := SettingsFrom(New(map[string]any{"sweep_interval": "-1s"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sweep_interval must be positive")
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "federate.yaml", "federate:\n  name: loaded\n  thread_safe: true\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "loaded", s.Name)
	assert.True(t, s.ThreadSafe)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/federate.yaml")
	assert.Error(t, err)
}
