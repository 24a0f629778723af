// Package testkit generates seeded synthetic samples for estimator and
// service tests. All generators are deterministic for a given seed.
package testkit

import (
	"math/rand"
)

// NormalSample draws n values from N(mean, stddev^2) with a fixed seed.
func NormalSample(seed int64, n int, mean, stddev float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = mean + stddev*rng.NormFloat64()
	}
	return values
}

// ConstantSample returns n copies of value. Useful for exercising the
// zero-variance edge cases of the estimators.
func ConstantSample(n int, value float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}
	return values
}

// TrendSample returns an arithmetic progression start, start+step, ...
// Handy when a test needs hand-computable window or leave-one-out means.
func TrendSample(n int, start, step float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	return values
}
