package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedFormat indicates a config file extension FromFile cannot parse.
var ErrUnsupportedFormat = errors.New("unsupported config file extension")

// DefaultSweepInterval is how often hub janitors run Clean when a file
// does not say otherwise.
const DefaultSweepInterval = 30 * time.Second

// Settings are the construction-time knobs of a registry.
//
// Whether a registry tracks handler lifetimes is part of its type and is
// therefore not configurable here.
type Settings struct {
	// Name labels logs, metrics and spans. Empty means a generated name.
	Name string

	// ThreadSafe serializes every operation behind a mutex.
	ThreadSafe bool

	// Metrics enables OpenTelemetry metrics on the global meter provider.
	Metrics bool

	// Tracing enables OpenTelemetry spans on the global tracer provider.
	Tracing bool

	// SweepInterval is the hub janitor period.
	SweepInterval time.Duration
}

// DefaultSettings returns unnamed, unguarded settings with telemetry off.
func DefaultSettings() Settings {
	return Settings{SweepInterval: DefaultSweepInterval}
}

// SettingsFrom extracts Settings from cfg. Keys may sit at the top level
// or under a "federate" section:
//
//	federate:
//	  name: orders
//	  thread_safe: true
//	  metrics: true
//	  tracing: false
//	  sweep_interval: 10s
func SettingsFrom(cfg Config) (Settings, error) {
	if cfg.Has("federate") {
		cfg = cfg.Sub("federate")
	}

	d := DefaultSettings()
	s := Settings{
		Name:          cfg.String("name", d.Name),
		ThreadSafe:    cfg.Bool("thread_safe", d.ThreadSafe),
		Metrics:       cfg.Bool("metrics", d.Metrics),
		Tracing:       cfg.Bool("tracing", d.Tracing),
		SweepInterval: cfg.Duration("sweep_interval", d.SweepInterval),
	}

	if s.SweepInterval <= 0 {
		return Settings{}, fmt.Errorf("sweep_interval must be positive, got %s", s.SweepInterval)
	}
	return s, nil
}
