package estimator

import (
	"math"

	"github.com/bkrueger/resampling/domain/core"
)

// Jackknife computes the leave-one-out estimate and standard error of a
// functional over a sample. For each index i the functional is evaluated on
// the sample with element i removed, and the N leave-one-out values are
// combined with the full-sample value into the standard bias-corrected
// estimate:
//
//	estimate = N*theta_full - (N-1)*mean(theta_i)
//	error    = sqrt(((N-1)/N) * sum((theta_i - mean)^2))
//
// The method is fully deterministic. Linear functionals (such as the mean)
// are a fixed point of the bias correction: the estimate equals the plain
// full-sample value.
func Jackknife(sample Sample, fn Functional) (Result, error) {
	n := len(sample)
	if n < 2 {
		return Result{}, core.NewInsufficientSampleError("jackknife", n, 2)
	}

	full, err := evaluate(fn, sample, -1)
	if err != nil {
		return Result{}, err
	}

	values, err := evaluateAll(fn, &leaveOneOut{sample: sample})
	if err != nil {
		return Result{}, err
	}

	m := mean(values)
	estimate := float64(n)*full - float64(n-1)*m
	ss := sumSquaredDeviations(values, m)
	stdErr := math.Sqrt(float64(n-1) / float64(n) * ss)

	return Result{Estimate: estimate, StdError: stdErr, Resamples: n}, nil
}
