package estimator

import (
	"fmt"

	"github.com/bkrueger/resampling/domain/core"
)

// Sample is an ordered, fixed-length sequence of measurements. Estimators
// treat it as immutable: no resampling method mutates the input.
type Sample []float64

// Len returns the number of measurements
func (s Sample) Len() int {
	return len(s)
}

// Functional computes a single real-valued statistic from a sequence of
// measurements. It must be deterministic and side-effect-free for resampling
// estimates to be meaningful; the estimators assume this but cannot enforce it.
type Functional func(values []float64) (float64, error)

// UniformSource draws uniformly distributed integers from [0, n).
// *math/rand.Rand satisfies it, so callers can inject any seeded stream.
type UniformSource interface {
	Intn(n int) int
}

// Result is a bias-corrected point estimate paired with its standard error.
// StdError is never negative. Estimate may fall outside the functional's
// natural range for pathological inputs; that is documented, not guarded.
type Result struct {
	Estimate  float64 `json:"estimate"`
	StdError  float64 `json:"std_error"`
	Resamples int     `json:"resamples"`
}

// Method names a resampling method for dispatch by the service layer.
type Method string

const (
	MethodJackknife   Method = "jackknife"
	MethodBootstrap   Method = "bootstrap"
	MethodSubsampling Method = "subsampling"
)

// ParseMethod resolves a method name, accepting the common "subsample" alias.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodJackknife, MethodBootstrap, MethodSubsampling:
		return Method(s), nil
	case "subsample":
		return MethodSubsampling, nil
	default:
		return "", core.NewInvalidParameterError("method", fmt.Sprintf("unknown resampling method %q", s))
	}
}

// DefaultBootstrapDraws is the draw count used when a caller does not
// configure one at the service layer.
const DefaultBootstrapDraws = 1000

// BootstrapOptions configures a bootstrap estimation run.
type BootstrapOptions struct {
	// Draws is the number of with-replacement resamples to evaluate.
	Draws int
	// Source supplies the uniform index draws. It must be non-nil; the
	// estimator never falls back to global process randomness.
	Source UniformSource
}
