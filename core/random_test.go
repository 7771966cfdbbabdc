package core

import (
	"math"
	"testing"
)

func TestExponential_MeanMatchesRate(t *testing.T) {
	rng := NewRand(42)
	const rate = 2.5
	const n = 200000

	sum := 0.0
	for i := 0; i < n; i++ {
		d := Exponential(rng, rate)
		if d < 0 {
			t.Fatalf("Exponential returned negative gap %v", d)
		}
		sum += d
	}
	mean := sum / n
	// Standard error at n=200k is ~0.001, so 2% is a very safe band.
	if !approxEqualTest(mean, 1.0/rate, 0.02/rate) {
		t.Errorf("Sample mean %.5f too far from expected %.5f", mean, 1.0/rate)
	}
}

func TestExponential_Deterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 100; i++ {
		da, db := Exponential(a, 1.0), Exponential(b, 1.0)
		if da != db {
			t.Fatalf("Same seed diverged at draw %d: %v vs %v", i, da, db)
		}
	}
}

func TestExponential_DegenerateRate(t *testing.T) {
	rng := NewRand(1)
	if d := Exponential(rng, 0); !math.IsInf(d, 1) {
		t.Errorf("Zero rate should yield +Inf gap, got %v", d)
	}
	if d := Exponential(rng, -1); !math.IsInf(d, 1) {
		t.Errorf("Negative rate should yield +Inf gap, got %v", d)
	}
}
