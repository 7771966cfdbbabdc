package core

import (
	"math"
)

// --- Sample statistic helpers ---
//
// These operate on the per-run estimates collected from repeated independent
// simulation runs (e.g. blocking probabilities from N seeded runs at the
// same offered load).

// Mean returns the arithmetic mean of the samples, 0 for an empty slice.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}

// Variance returns the unbiased sample variance. Fewer than two samples
// carry no spread information, so the result is 0.
func Variance(samples []float64) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}
	mean := Mean(samples)
	sum := 0.0
	for _, s := range samples {
		d := s - mean
		sum += d * d
	}
	return sum / float64(n-1)
}

// StdDev returns the sample standard deviation.
func StdDev(samples []float64) float64 {
	return math.Sqrt(Variance(samples))
}

// StdErr returns the standard error of the mean.
func StdErr(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return StdDev(samples) / math.Sqrt(float64(len(samples)))
}

// ConfidenceInterval95 returns the normal-approximation 95% confidence
// interval around the sample mean. With the handful of iterations a sweep
// typically runs this is an approximation, which is all the comparison
// table needs.
func ConfidenceInterval95(samples []float64) (lo, hi float64) {
	mean := Mean(samples)
	margin := 1.96 * StdErr(samples)
	return mean - margin, mean + margin
}
