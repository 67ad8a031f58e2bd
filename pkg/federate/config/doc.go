/*
Package config loads registry settings from YAML or JSON.

# Overview

Config wraps a map[string]any and provides typed accessor methods that
return default values for missing keys and type mismatches. Settings is
the typed view used to construct registries:

	settings, err := config.Load("federate.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	f := federate.New[Order, federate.Unit](federate.WithSettings(settings))

# File Format

	federate:
	  name: orders
	  thread_safe: true
	  metrics: true
	  tracing: true
	  sweep_interval: 30s

The "federate" section is optional; the same keys are accepted at the top
level. sweep_interval accepts a Go duration string or a number of seconds.

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
