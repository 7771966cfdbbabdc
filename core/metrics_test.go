package core

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean of empty slice should be 0, got %v", got)
	}
	if got := Mean([]float64{2, 4, 6}); !approxEqualTest(got, 4, 1e-12) {
		t.Errorf("Mean mismatch: exp 4, got %v", got)
	}
}

func TestVarianceAndStdDev(t *testing.T) {
	if got := Variance([]float64{5}); got != 0 {
		t.Errorf("Variance of single sample should be 0, got %v", got)
	}
	// Known set: {2, 4, 4, 4, 5, 5, 7, 9} has sample variance 32/7.
	samples := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := Variance(samples); !approxEqualTest(got, 32.0/7.0, 1e-12) {
		t.Errorf("Variance mismatch: exp %v, got %v", 32.0/7.0, got)
	}
	if got := StdDev(samples); !approxEqualTest(got, math.Sqrt(32.0/7.0), 1e-12) {
		t.Errorf("StdDev mismatch: got %v", got)
	}
}

func TestConfidenceInterval95(t *testing.T) {
	samples := []float64{0.4, 0.4, 0.4, 0.4}
	lo, hi := ConfidenceInterval95(samples)
	if !approxEqualTest(lo, 0.4, 1e-12) || !approxEqualTest(hi, 0.4, 1e-12) {
		t.Errorf("Zero-spread CI should collapse to the mean, got [%v, %v]", lo, hi)
	}

	samples = []float64{0.3, 0.5}
	lo, hi = ConfidenceInterval95(samples)
	if lo >= 0.4 || hi <= 0.4 {
		t.Errorf("CI should bracket the mean: got [%v, %v]", lo, hi)
	}
	if !approxEqualTest(hi-0.4, 0.4-lo, 1e-12) {
		t.Errorf("CI should be symmetric around the mean: got [%v, %v]", lo, hi)
	}
}
