// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng  = nil (pure/deterministic unless seeded)
//   • base = 1   (elements 1..m, as in the classic input files)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// First element value; elements are base..base+m-1.
	base int
}

const defaultElementBase = 1

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:  nil,
		base: defaultElementBase,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// element maps a zero-based offset to its element value.
func (c builderConfig) element(i int) int {
	return c.base + i
}
