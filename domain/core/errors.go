package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInsufficientSample indicates the sample or effective resample count
	// is too small to compute the requested statistic.
	ErrInsufficientSample = errors.New("insufficient sample size")

	// ErrInvalidParameter indicates out-of-range estimator configuration.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidFunctionalResult indicates the caller-supplied functional
	// produced a non-finite value or failed outright.
	ErrInvalidFunctionalResult = errors.New("invalid functional result")
)

// Error constructors with context
func NewInsufficientSampleError(what string, got, min int) error {
	return fmt.Errorf("%w: %s requires at least %d values, got %d", ErrInsufficientSample, what, min, got)
}

func NewInvalidParameterError(param, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, param, reason)
}

func NewNonFiniteResultError(value float64, resample int) error {
	if resample < 0 {
		return fmt.Errorf("%w: functional returned %v on the full sample", ErrInvalidFunctionalResult, value)
	}
	return fmt.Errorf("%w: functional returned %v on resample %d", ErrInvalidFunctionalResult, value, resample)
}

func NewFunctionalFailureError(resample int, err error) error {
	if resample < 0 {
		return fmt.Errorf("%w: functional failed on the full sample: %v", ErrInvalidFunctionalResult, err)
	}
	return fmt.Errorf("%w: functional failed on resample %d: %v", ErrInvalidFunctionalResult, resample, err)
}

// Error checking helpers
func IsInsufficientSampleError(err error) bool {
	return errors.Is(err, ErrInsufficientSample)
}

func IsInvalidParameterError(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

func IsInvalidFunctionalResultError(err error) bool {
	return errors.Is(err, ErrInvalidFunctionalResult)
}
