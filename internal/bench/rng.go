package bench

import (
	"fmt"

	rng "github.com/leesper/go_rng"
)

// IndexSource picks the element each update is applied to.
type IndexSource interface {
	// Intn returns an index in [0, n).
	Intn(n int) int
}

// Pattern names an IndexSource.
type Pattern string

const (
	// Sequential walks the indices in order, wrapping around at the end.
	Sequential Pattern = "sequential"
	// Uniform picks every index with the same probability.
	Uniform Pattern = "uniform"
	// Hotspot concentrates updates around the middle of the list.
	Hotspot Pattern = "hotspot"
)

// ParsePattern validates the name of a pattern.
func ParsePattern(s string) (Pattern, error) {
	switch p := Pattern(s); p {
	case Sequential, Uniform, Hotspot:
		return p, nil
	default:
		return "", fmt.Errorf("unknown pattern %q", s)
	}
}

// Source returns a new IndexSource following the pattern.
func (p Pattern) Source(seed int64) IndexSource {
	switch p {
	case Uniform:
		return &uniformSource{gen: rng.NewUniformGenerator(seed)}
	case Hotspot:
		return &hotspotSource{gen: rng.NewGaussianGenerator(seed)}
	default:
		return &sequentialSource{}
	}
}

type sequentialSource struct {
	k int
}

func (s *sequentialSource) Intn(n int) int {
	i := s.k % n
	s.k++
	return i
}

type uniformSource struct {
	gen *rng.UniformGenerator
}

func (s *uniformSource) Intn(n int) int {
	return int(s.gen.Int64n(int64(n)))
}

type hotspotSource struct {
	gen *rng.GaussianGenerator
}

func (s *hotspotSource) Intn(n int) int {
	i := int(s.gen.Gaussian(float64(n)/2, float64(n)/8))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
