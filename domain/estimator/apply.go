package estimator

import (
	"math"

	"github.com/bkrueger/resampling/domain/core"
)

// resampleSource yields resamples one at a time. Sources write into a
// caller-provided buffer so a full resample set is never materialized;
// peak memory stays bounded by a single resample regardless of count.
type resampleSource interface {
	// count is the number of resamples the source produces.
	count() int
	// at appends resample i to dst and returns the extended slice.
	at(i int, dst []float64) []float64
}

// evaluate applies the functional to one sequence through the single checked
// code path shared by the full sample and every resample. A failed or
// non-finite evaluation invalidates the whole estimation, so it propagates
// immediately. resample < 0 marks a full-sample evaluation for error context.
func evaluate(fn Functional, values []float64, resample int) (float64, error) {
	v, err := fn(values)
	if err != nil {
		return 0, core.NewFunctionalFailureError(resample, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, core.NewNonFiniteResultError(v, resample)
	}
	return v, nil
}

// evaluateAll applies the functional to every resample in order, reusing one
// scratch buffer across iterations. The first failure aborts with no partial
// results.
func evaluateAll(fn Functional, src resampleSource) ([]float64, error) {
	values := make([]float64, src.count())
	var buf []float64
	for i := range values {
		buf = src.at(i, buf[:0])
		v, err := evaluate(fn, buf, i)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// leaveOneOut produces the N jackknife resamples of a sample, each omitting
// one element and preserving the order of the rest.
type leaveOneOut struct {
	sample Sample
}

func (s *leaveOneOut) count() int {
	return len(s.sample)
}

func (s *leaveOneOut) at(i int, dst []float64) []float64 {
	dst = append(dst, s.sample[:i]...)
	return append(dst, s.sample[i+1:]...)
}

// blockWindows produces all contiguous overlapping windows of a fixed size,
// in order.
type blockWindows struct {
	sample Sample
	size   int
}

func (s *blockWindows) count() int {
	return len(s.sample) - s.size + 1
}

func (s *blockWindows) at(i int, dst []float64) []float64 {
	return append(dst, s.sample[i:i+s.size]...)
}

// bootstrapDraws produces with-replacement resamples of full sample length.
// Draws consume the injected source sequentially, so iterating in order with
// the same seeded source reproduces the same resamples.
type bootstrapDraws struct {
	sample Sample
	draws  int
	source UniformSource
}

func (s *bootstrapDraws) count() int {
	return s.draws
}

func (s *bootstrapDraws) at(_ int, dst []float64) []float64 {
	n := len(s.sample)
	for j := 0; j < n; j++ {
		dst = append(dst, s.sample[s.source.Intn(n)])
	}
	return dst
}

// mean returns the arithmetic mean of a non-empty slice.
func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sumSquaredDeviations returns sum over (v - m)^2, clamped to >= 0 so
// floating-point cancellation on near-constant values can never push the
// variance term negative before a square root.
func sumSquaredDeviations(values []float64, m float64) float64 {
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	if sum < 0 {
		return 0
	}
	return sum
}
