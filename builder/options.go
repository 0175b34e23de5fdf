// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless input; the
// constructors they configure never panic.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new seeded *rand.Rand (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithElementBase sets the first element value. Panics on a negative base,
// which would produce elements the solver rejects.
func WithElementBase(base int) BuilderOption {
	if base < 0 {
		panic("builder: WithElementBase(negative)")
	}
	return func(c *builderConfig) {
		c.base = base
	}
}
