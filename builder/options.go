// SPDX-License-Identifier: MIT
// Package: pizza/builder
//
// options.go: functional options for the Director.
//
// Contract (strict):
//   • Options are functional (type DirectorOption func(*directorConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Director operations themselves MUST NOT panic.
//   • No hidden globals; everything flows through directorConfig.

package builder

import (
	"github.com/rs/zerolog"
)

// DirectorOption customizes a Director by mutating its directorConfig before
// first use.
// Complexity: applying N options costs O(N) time, O(1) space.
type DirectorOption func(*directorConfig)

// WithLogger attaches a structured logger. The Director logs each finished
// construction at debug level and each kind mismatch at warn level.
// A disabled logger (zerolog.Nop) is the default.
func WithLogger(logger zerolog.Logger) DirectorOption {
	return func(c *directorConfig) {
		c.logger = logger
	}
}

// WithComponent tags every log entry with component=name.
// Panics on an empty name to surface programmer error early.
func WithComponent(name string) DirectorOption {
	if name == "" {
		panic("builder: WithComponent(\"\")")
	}
	return func(c *directorConfig) {
		c.component = name
	}
}
