// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".

package builder

import "errors"

// ErrTooFewElements indicates that a size parameter (m, n, w) is below the
// minimum accepted by the constructor.
var ErrTooFewElements = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction failure not covered by the
// other sentinels, such as a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
