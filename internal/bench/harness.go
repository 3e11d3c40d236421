// Package bench compares point updates on a Fenwick sum tree against the
// same updates on a naive prefix array.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	fenwick "github.com/caio/go-fenwick"
	"github.com/caio/go-fenwick/internal/naive"
)

const (
	DefaultSize    = 100000
	DefaultUpdates = 20000
	DefaultRounds  = 1
	DefaultSeed    = 0xDEADBEEF
)

// ErrMismatch is returned when the two structures disagree after a round.
var ErrMismatch = errors.New("bench: fenwick tree and naive prefix array disagree")

// Harness runs timed rounds of updates.
type Harness struct {
	size    int
	updates int
	rounds  int
	seed    int64
	pattern Pattern
	logger  *zap.Logger
}

// New creates a Harness with the given options applied over the defaults,
// which mirror the classic demo: 20000 sequential +1 updates on 100000
// elements.
func New(options ...Option) (*Harness, error) {
	h := &Harness{
		size:    DefaultSize,
		updates: DefaultUpdates,
		rounds:  DefaultRounds,
		seed:    DefaultSeed,
		pattern: Sequential,
		logger:  zap.NewNop(),
	}
	for _, option := range options {
		if err := option(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Run executes every round and summarizes the timings. It stops between
// rounds once ctx is done.
func (h *Harness) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		Size:    h.size,
		Updates: h.updates,
		Pattern: h.pattern,
	}
	src := h.pattern.Source(h.seed)
	indices := make([]int, h.updates)

	for round := 0; round < h.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for k := range indices {
			indices[k] = src.Intn(h.size)
		}

		baseline, tree, err := h.round(indices)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}
		h.logger.Debug("round complete",
			zap.Int("round", round),
			zap.Duration("naive", baseline),
			zap.Duration("fenwick", tree),
		)
		report.Naive = append(report.Naive, baseline)
		report.Fenwick = append(report.Fenwick, tree)
	}

	report.summarize()
	h.logger.Info("benchmark finished", zap.Object("report", report))
	return report, nil
}

// round applies the indices to fresh structures and returns the time each
// one spent on updates.
func (h *Harness) round(indices []int) (baseline, tree time.Duration, err error) {
	var sum fenwick.Sum[int]

	p := naive.New(h.size, sum.Identity(), sum.Combine)
	start := time.Now()
	for _, i := range indices {
		p.Update(i, 1)
	}
	baseline = time.Since(start)

	t, err := fenwick.NewSum[int](h.size)
	if err != nil {
		return 0, 0, err
	}
	start = time.Now()
	for _, i := range indices {
		if err := t.Update(i, 1); err != nil {
			return 0, 0, err
		}
	}
	tree = time.Since(start)

	for i := 0; i < h.size; i++ {
		got, err := t.Query(i)
		if err != nil {
			return 0, 0, err
		}
		if exp := p.Query(i); got != exp {
			return 0, 0, fmt.Errorf("%w: prefix %d is %d, expected %d", ErrMismatch, i, got, exp)
		}
	}
	return baseline, tree, nil
}
