// Package functionals provides a registry of named statistical functionals
// for use with the resampling estimators. Every functional maps a sequence of
// measurements to a single real value; nonlinear entries such as the squared
// mean are the ones whose naive plug-in estimates carry the bias the
// estimators correct.
package functionals

import (
	"fmt"
	"math"
	"sort"

	"github.com/bkrueger/resampling/domain/estimator"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of the values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("mean requires at least one value")
	}
	return stat.Mean(values, nil), nil
}

// SquaredMean returns the square of the mean, the textbook nonlinear
// functional whose plug-in estimate is biased upward by Var/N.
func SquaredMean(values []float64) (float64, error) {
	m, err := Mean(values)
	if err != nil {
		return 0, err
	}
	return m * m, nil
}

// Variance returns the unbiased sample variance.
func Variance(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, fmt.Errorf("variance requires at least two values, got %d", len(values))
	}
	return stat.Variance(values, nil), nil
}

// StdDev returns the unbiased sample standard deviation.
func StdDev(values []float64) (float64, error) {
	v, err := Variance(values)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Median returns the middle value of the sorted sequence.
func Median(values []float64) (float64, error) {
	return stats.Median(values)
}

// CoefficientOfVariation returns stddev/mean, undefined for a zero mean.
func CoefficientOfVariation(values []float64) (float64, error) {
	m, err := Mean(values)
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return 0, fmt.Errorf("coefficient of variation is undefined for a zero mean")
	}
	sd, err := StdDev(values)
	if err != nil {
		return 0, err
	}
	return sd / m, nil
}

var registry = map[string]estimator.Functional{
	"mean":         Mean,
	"squared_mean": SquaredMean,
	"variance":     Variance,
	"stddev":       StdDev,
	"median":       Median,
	"cv":           CoefficientOfVariation,
}

// Lookup resolves a functional by name.
func Lookup(name string) (estimator.Functional, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown functional %q (available: %v)", name, Names())
	}
	return fn, nil
}

// Names lists the registered functional names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
