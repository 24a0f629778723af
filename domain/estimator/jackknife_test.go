package estimator

import (
	"fmt"
	"math"
	"testing"

	"github.com/bkrueger/resampling/domain/core"
)

func sampleMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("empty sequence")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

func squaredMean(values []float64) (float64, error) {
	m, err := sampleMean(values)
	if err != nil {
		return 0, err
	}
	return m * m, nil
}

// TestJackknife_MeanOracle checks the hand-computed reference: leave-one-out
// means of [1..5] are [3.5, 3.25, 3.0, 2.75, 2.5], giving estimate 3.0 and
// standard error sqrt(0.5).
func TestJackknife_MeanOracle(t *testing.T) {
	result, err := Jackknife(Sample{1, 2, 3, 4, 5}, sampleMean)
	if err != nil {
		t.Fatalf("Jackknife failed: %v", err)
	}

	if math.Abs(result.Estimate-3.0) > 1e-12 {
		t.Errorf("Expected estimate 3.0, got %v", result.Estimate)
	}
	want := math.Sqrt(0.5)
	if math.Abs(result.StdError-want) > 1e-12 {
		t.Errorf("Expected standard error %v, got %v", want, result.StdError)
	}
	if result.Resamples != 5 {
		t.Errorf("Expected 5 resamples, got %d", result.Resamples)
	}
}

// TestJackknife_LinearFunctionalIsFixedPoint verifies the bias correction is
// a no-op for the mean: the corrected estimate equals the plain sample mean.
func TestJackknife_LinearFunctionalIsFixedPoint(t *testing.T) {
	samples := []Sample{
		{2.5, 7.1, -3.0, 0.4},
		{10, 10, 10, 10, 10, 10},
		{-1.5, 8.25, 3.75, 100.0, 2.125, -42.5, 0.5},
	}

	for _, sample := range samples {
		want, _ := sampleMean(sample)
		result, err := Jackknife(sample, sampleMean)
		if err != nil {
			t.Fatalf("Jackknife failed for %v: %v", sample, err)
		}
		if math.Abs(result.Estimate-want) > 1e-9 {
			t.Errorf("Expected estimate %v for %v, got %v", want, sample, result.Estimate)
		}
	}
}

// TestJackknife_SquaredMeanBiasCorrection checks the correction against the
// closed form: for [1..5] and f = mean^2 the corrected estimate is
// mean^2 - var/N = 9 - 2.5/5 = 8.5.
func TestJackknife_SquaredMeanBiasCorrection(t *testing.T) {
	result, err := Jackknife(Sample{1, 2, 3, 4, 5}, squaredMean)
	if err != nil {
		t.Fatalf("Jackknife failed: %v", err)
	}
	if math.Abs(result.Estimate-8.5) > 1e-9 {
		t.Errorf("Expected bias-corrected estimate 8.5, got %v", result.Estimate)
	}
}

// TestJackknife_ConstantSampleZeroError verifies the error is exactly zero,
// not a tiny cancellation artifact, when every leave-one-out value agrees.
func TestJackknife_ConstantSampleZeroError(t *testing.T) {
	result, err := Jackknife(Sample{4, 4, 4, 4, 4, 4}, sampleMean)
	if err != nil {
		t.Fatalf("Jackknife failed: %v", err)
	}
	if result.StdError != 0 {
		t.Errorf("Expected exactly zero standard error, got %v", result.StdError)
	}
	if result.Estimate != 4 {
		t.Errorf("Expected estimate 4, got %v", result.Estimate)
	}
}

func TestJackknife_InsufficientSample(t *testing.T) {
	for _, sample := range []Sample{nil, {}, {3.14}} {
		_, err := Jackknife(sample, sampleMean)
		if !core.IsInsufficientSampleError(err) {
			t.Errorf("Expected insufficient sample error for len %d, got %v", len(sample), err)
		}
	}
}

func TestJackknife_InvalidFunctionalResult(t *testing.T) {
	nanFn := func(values []float64) (float64, error) { return math.NaN(), nil }
	failFn := func(values []float64) (float64, error) { return 0, fmt.Errorf("boom") }

	for name, fn := range map[string]Functional{"nan": nanFn, "failure": failFn} {
		_, err := Jackknife(Sample{1, 2, 3}, fn)
		if !core.IsInvalidFunctionalResultError(err) {
			t.Errorf("Expected invalid functional result error for %s, got %v", name, err)
		}
	}
}

func TestJackknife_DoesNotMutateSample(t *testing.T) {
	sample := Sample{5, 1, 4, 2, 3}
	original := append(Sample(nil), sample...)

	if _, err := Jackknife(sample, sampleMean); err != nil {
		t.Fatalf("Jackknife failed: %v", err)
	}

	for i := range sample {
		if sample[i] != original[i] {
			t.Fatalf("Sample mutated at index %d: %v != %v", i, sample[i], original[i])
		}
	}
}
