// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// api.go: the BuildInstance orchestrator and the Constructor type.

package builder

import "fmt"

// Constructor appends subsets to *subsets using the resolved config.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(subsets *[][]int, cfg builderConfig) error

// BuildInstance resolves bopts and applies cons in order to one subset
// collection. Any constructor error is wrapped as "BuildInstance: %w" and
// returned immediately.
//
// Complexity: O(len(bopts)) to resolve plus the cost of each constructor.
func BuildInstance(bopts []BuilderOption, cons ...Constructor) ([][]int, error) {
	cfg := newBuilderConfig(bopts...)

	subsets := make([][]int, 0)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildInstance: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&subsets, cfg); err != nil {
			return nil, fmt.Errorf("BuildInstance: %w", err)
		}
	}

	return subsets, nil
}
