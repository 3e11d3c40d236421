package bench

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures a Harness.
type Option func(*Harness) error

// Size sets the number of elements in both the naive prefix array and the
// Fenwick tree.
//
// The naive baseline pays O(size) for every update while the tree pays
// O(log size), so the gap between the two grows with this value. Large
// sizes combined with many updates make the baseline dominate the running
// time of the whole benchmark.
//
// Size must be greater than zero.
func Size(n int) Option {
	return func(h *Harness) error {
		if n <= 0 {
			return fmt.Errorf("size should be > 0, got %d", n)
		}
		h.size = n
		return nil
	}
}

// Updates sets how many point updates each round applies to both structures.
func Updates(n int) Option {
	return func(h *Harness) error {
		if n < 0 {
			return fmt.Errorf("updates should be >= 0, got %d", n)
		}
		h.updates = n
		return nil
	}
}

// Rounds sets how many times the comparison is repeated. Each round starts
// from fresh structures.
func Rounds(n int) Option {
	return func(h *Harness) error {
		if n < 1 {
			return fmt.Errorf("rounds should be >= 1, got %d", n)
		}
		h.rounds = n
		return nil
	}
}

// Seed sets the seed of the random index patterns.
func Seed(seed int64) Option {
	return func(h *Harness) error {
		h.seed = seed
		return nil
	}
}

// WithPattern selects how updated indices are chosen.
func WithPattern(p Pattern) Option {
	return func(h *Harness) error {
		if _, err := ParsePattern(string(p)); err != nil {
			return err
		}
		h.pattern = p
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(h *Harness) error {
		h.logger = logger
		return nil
	}
}
