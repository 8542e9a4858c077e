// SPDX-License-Identifier: MIT
// Package: pizza/builder
//
// config.go: internal Director configuration and deterministic defaults.
//
// Defaults:
//   • logger    = zerolog.Nop()  (silent unless WithLogger is given)
//   • component = "director"

package builder

import (
	"github.com/rs/zerolog"
)

// defaultComponent tags Director log entries when WithComponent is not used.
const defaultComponent = "director"

// directorConfig aggregates the knobs of a Director.
type directorConfig struct {
	logger    zerolog.Logger
	component string
}

// newDirectorConfig builds a config from defaults and applies opts in order
// (later overrides earlier). The component tag is attached to the logger
// once here so call sites log branch-free.
func newDirectorConfig(opts ...DirectorOption) directorConfig {
	cfg := directorConfig{
		logger:    zerolog.Nop(),
		component: defaultComponent,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.logger = cfg.logger.With().Str("component", cfg.component).Logger()

	return cfg
}
