// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math/rand"
	"testing"
)

// TestConfigDefaults verifies the deterministic defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if got := cfg.element(0); got != 1 {
		t.Errorf("default base: expected element(0)=1, got %d", got)
	}
}

// TestRNGOptions verifies WithRand, WithSeed and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	if cfg := newBuilderConfig(WithRand(r)); cfg.rng != r {
		t.Errorf("WithRand: expected provided rng")
	}

	a := newBuilderConfig(WithSeed(42)).rng.Int63()
	b := newBuilderConfig(WithSeed(42)).rng.Int63()
	if a != b {
		t.Errorf("WithSeed: expected reproducible draws, got %d and %d", a, b)
	}

	if cfg := newBuilderConfig(WithSeed(1), WithRand(r)); cfg.rng != r {
		t.Errorf("last option should win")
	}
}

// TestOptionPanics verifies that option constructors reject meaningless values.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithRand(nil)":       func() { WithRand(nil) },
		"WithElementBase(-1)": func() { WithElementBase(-1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

// TestElementBase verifies the element mapping with a custom base.
func TestElementBase(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithElementBase(0))
	if got := cfg.element(3); got != 3 {
		t.Errorf("base 0: expected 3, got %d", got)
	}
}
