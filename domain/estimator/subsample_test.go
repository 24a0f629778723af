package estimator

import (
	"math"
	"testing"

	"github.com/bkrueger/resampling/domain/core"
	"github.com/bkrueger/resampling/internal/testkit"
)

// TestSubsample_MeanOracle checks a hand-computed reference: windows of
// length 2 over [1..5] have means [1.5, 2.5, 3.5, 4.5], so the corrected
// estimate stays 3.0 and the error is sqrt((2/5)*5) = sqrt(2).
func TestSubsample_MeanOracle(t *testing.T) {
	result, err := Subsample(Sample{1, 2, 3, 4, 5}, sampleMean, 2)
	if err != nil {
		t.Fatalf("Subsample failed: %v", err)
	}

	if math.Abs(result.Estimate-3.0) > 1e-12 {
		t.Errorf("Expected estimate 3.0, got %v", result.Estimate)
	}
	want := math.Sqrt(2.0)
	if math.Abs(result.StdError-want) > 1e-12 {
		t.Errorf("Expected standard error %v, got %v", want, result.StdError)
	}
	if result.Resamples != 4 {
		t.Errorf("Expected 4 windows, got %d", result.Resamples)
	}
}

func TestSubsample_Deterministic(t *testing.T) {
	sample := Sample(testkit.NormalSample(17, 60, 0.0, 1.0))

	first, err := Subsample(sample, squaredMean, 10)
	if err != nil {
		t.Fatalf("Subsample failed: %v", err)
	}
	second, err := Subsample(sample, squaredMean, 10)
	if err != nil {
		t.Fatalf("Subsample failed: %v", err)
	}
	if first != second {
		t.Errorf("Expected identical results on repeated calls: %+v vs %+v", first, second)
	}
}

// TestSubsample_FullBlockFails confirms the explicit decision for the
// block_size = N degenerate case: a single window cannot carry a variance,
// so the call fails instead of silently reporting a zero error.
func TestSubsample_FullBlockFails(t *testing.T) {
	_, err := Subsample(Sample{1, 2, 3, 4, 5}, sampleMean, 5)
	if !core.IsInsufficientSampleError(err) {
		t.Errorf("Expected insufficient sample error for block_size = N, got %v", err)
	}
}

func TestSubsample_InvalidBlockSize(t *testing.T) {
	sample := Sample{1, 2, 3, 4, 5}
	for _, block := range []int{0, -1, 6} {
		_, err := Subsample(sample, sampleMean, block)
		if !core.IsInvalidParameterError(err) {
			t.Errorf("Expected invalid parameter error for block_size=%d, got %v", block, err)
		}
	}
}

func TestSubsample_InsufficientSample(t *testing.T) {
	for _, sample := range []Sample{nil, {}, {1.0}} {
		_, err := Subsample(sample, sampleMean, 1)
		if !core.IsInsufficientSampleError(err) {
			t.Errorf("Expected insufficient sample error for len %d, got %v", len(sample), err)
		}
	}
}

func TestSubsample_ConstantSampleZeroError(t *testing.T) {
	result, err := Subsample(Sample(testkit.ConstantSample(8, 2.5)), sampleMean, 3)
	if err != nil {
		t.Fatalf("Subsample failed: %v", err)
	}
	if result.StdError != 0 {
		t.Errorf("Expected exactly zero standard error, got %v", result.StdError)
	}
	if result.Estimate != 2.5 {
		t.Errorf("Expected estimate 2.5, got %v", result.Estimate)
	}
}

func TestSubsample_DoesNotMutateSample(t *testing.T) {
	sample := Sample{9, 8, 7, 6, 5, 4}
	original := append(Sample(nil), sample...)

	if _, err := Subsample(sample, sampleMean, 2); err != nil {
		t.Fatalf("Subsample failed: %v", err)
	}

	for i := range sample {
		if sample[i] != original[i] {
			t.Fatalf("Sample mutated at index %d: %v != %v", i, sample[i], original[i])
		}
	}
}
