package core

import (
	"fmt"
	"testing"
)

func TestErrorConstructorsMatchSentinels(t *testing.T) {
	cases := []struct {
		err   error
		check func(error) bool
		name  string
	}{
		{NewInsufficientSampleError("jackknife", 1, 2), IsInsufficientSampleError, "insufficient sample"},
		{NewInvalidParameterError("block_size", "must be in [1, 5]"), IsInvalidParameterError, "invalid parameter"},
		{NewNonFiniteResultError(0, 3), IsInvalidFunctionalResultError, "non-finite result"},
		{NewFunctionalFailureError(-1, fmt.Errorf("boom")), IsInvalidFunctionalResultError, "functional failure"},
	}

	for _, tc := range cases {
		if !tc.check(tc.err) {
			t.Errorf("Expected %s error to match its sentinel: %v", tc.name, tc.err)
		}
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	err := NewInvalidParameterError("draws", "must be positive")
	if IsInsufficientSampleError(err) || IsInvalidFunctionalResultError(err) {
		t.Errorf("Invalid parameter error matched an unrelated sentinel: %v", err)
	}
}

func TestErrorsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("running estimator: %w", NewInsufficientSampleError("bootstrap draws", 1, 2))
	if !IsInsufficientSampleError(err) {
		t.Errorf("Expected wrapped error to still match: %v", err)
	}
}
