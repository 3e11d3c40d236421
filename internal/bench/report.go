package bench

import (
	"sort"
	"time"

	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the durations of a set of rounds, in seconds.
type Summary struct {
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
}

func summarize(durations []time.Duration) Summary {
	if len(durations) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(durations))
	for i, d := range durations {
		xs[i] = d.Seconds()
	}
	sort.Float64s(xs)

	s := Summary{
		Mean:   stat.Mean(xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		Min:    floats.Min(xs),
	}
	// the sample deviation of a single round is undefined
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}
	return s
}

func (s Summary) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("mean", s.Mean)
	enc.AddFloat64("stddev", s.StdDev)
	enc.AddFloat64("median", s.Median)
	enc.AddFloat64("min", s.Min)
	return nil
}

// Report holds the per-round timings of both structures.
type Report struct {
	Size    int
	Updates int
	Pattern Pattern

	Naive   []time.Duration
	Fenwick []time.Duration

	NaiveStats   Summary
	FenwickStats Summary

	// Speedup is the mean naive time over the mean Fenwick time, or 0 if
	// the Fenwick rounds were too fast to measure.
	Speedup float64
}

func (r *Report) summarize() {
	r.NaiveStats = summarize(r.Naive)
	r.FenwickStats = summarize(r.Fenwick)
	r.Speedup = 0
	if r.FenwickStats.Mean > 0 {
		r.Speedup = r.NaiveStats.Mean / r.FenwickStats.Mean
	}
}

func (r *Report) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("size", r.Size)
	enc.AddInt("updates", r.Updates)
	enc.AddString("pattern", string(r.Pattern))
	enc.AddInt("rounds", len(r.Naive))
	if err := enc.AddObject("naive", r.NaiveStats); err != nil {
		return err
	}
	if err := enc.AddObject("fenwick", r.FenwickStats); err != nil {
		return err
	}
	enc.AddFloat64("speedup", r.Speedup)
	return nil
}
