package estimator

import (
	"fmt"
	"math"

	"github.com/bkrueger/resampling/domain/core"
)

// Subsample computes the contiguous-block subsampling estimate and standard
// error of a functional over a sample. All N-b+1 overlapping windows of
// length b are evaluated in order and combined with the full-sample value:
//
//	estimate = theta_full - (mean(theta_k) - theta_full) * b/(N-b)
//	error    = sqrt((b/N) * sum((theta_k - mean)^2))
//
// The block-to-sample ratio replaces the jackknife's N/(N-1) scaling because
// overlapping block statistics are correlated and converge at a different
// asymptotic rate. Deterministic for a given block size.
//
// blockSize == N leaves a single window and no variance; that degenerate case
// fails explicitly rather than silently reporting a zero error.
func Subsample(sample Sample, fn Functional, blockSize int) (Result, error) {
	n := len(sample)
	if n < 2 {
		return Result{}, core.NewInsufficientSampleError("subsampling", n, 2)
	}
	if blockSize < 1 || blockSize > n {
		return Result{}, core.NewInvalidParameterError("block_size",
			fmt.Sprintf("must be in [1, %d], got %d", n, blockSize))
	}

	windows := n - blockSize + 1
	if windows < 2 {
		return Result{}, core.NewInsufficientSampleError("subsampling windows", windows, 2)
	}

	full, err := evaluate(fn, sample, -1)
	if err != nil {
		return Result{}, err
	}

	values, err := evaluateAll(fn, &blockWindows{sample: sample, size: blockSize})
	if err != nil {
		return Result{}, err
	}

	m := mean(values)
	estimate := full - (m-full)*float64(blockSize)/float64(n-blockSize)
	ss := sumSquaredDeviations(values, m)
	stdErr := math.Sqrt(float64(blockSize) / float64(n) * ss)

	return Result{Estimate: estimate, StdError: stdErr, Resamples: windows}, nil
}
