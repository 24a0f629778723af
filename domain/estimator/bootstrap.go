package estimator

import (
	"math"

	"github.com/bkrueger/resampling/domain/core"
)

// Bootstrap computes the resampling-with-replacement estimate and standard
// error of a functional over a sample. Each of opts.Draws resamples is built
// by drawing N indices uniformly with replacement from the injected source,
// so runs with the same seed, sample and draw count are identical.
//
// The point estimate is the mean of the draw values and the standard error is
// their unbiased (M-1 divisor) sample standard deviation. Fewer than two
// draws cannot yield a variance, so Draws == 1 is rejected the same way an
// undersized sample is.
func Bootstrap(sample Sample, fn Functional, opts BootstrapOptions) (Result, error) {
	if opts.Draws <= 0 {
		return Result{}, core.NewInvalidParameterError("draws", "must be a positive integer")
	}
	if opts.Source == nil {
		return Result{}, core.NewInvalidParameterError("source", "must be a non-nil uniform random source")
	}

	n := len(sample)
	if n < 2 {
		return Result{}, core.NewInsufficientSampleError("bootstrap", n, 2)
	}
	if opts.Draws < 2 {
		return Result{}, core.NewInsufficientSampleError("bootstrap draws", opts.Draws, 2)
	}

	values, err := evaluateAll(fn, &bootstrapDraws{sample: sample, draws: opts.Draws, source: opts.Source})
	if err != nil {
		return Result{}, err
	}

	m := mean(values)
	ss := sumSquaredDeviations(values, m)
	stdErr := math.Sqrt(ss / float64(opts.Draws-1))

	return Result{Estimate: m, StdError: stdErr, Resamples: opts.Draws}, nil
}
