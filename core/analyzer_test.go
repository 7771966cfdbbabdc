package core

import (
	"testing"
)

// Fixed-value sample for driving the analyzer without a simulator.
type testSample struct {
	blocking float64
	arrivals int
}

func (s testSample) BlockingProbability() float64 { return s.blocking }
func (s testSample) Observations() int            { return s.arrivals }

func makeSamples(samples ...testSample) func() []testSample {
	return func() []testSample { return samples }
}

func TestAnalyze_Passing(t *testing.T) {
	resultsFunc := makeSamples(
		testSample{blocking: 0.40, arrivals: 1000},
		testSample{blocking: 0.42, arrivals: 1000},
	)
	expectations := []Expectation{
		ExpectBlocking(GTE, 0.35),
		ExpectBlocking(LTE, 0.45),
		ExpectObservations(EQ, 2000),
	}

	result := Analyze("Passing", resultsFunc, expectations...)
	result.Assert(t)

	if !result.AnalysisPerformed {
		t.Errorf("Analysis should have been performed")
	}
	if !result.AllPassed {
		t.Errorf("Expected all expectations to pass, but AllPassed is false")
	}
	if len(result.ExpectationChecks) != len(expectations) {
		t.Errorf("Expected %d expectation results, got %d", len(expectations), len(result.ExpectationChecks))
	}
	if !approxEqualTest(result.Metrics[BlockingMetric], 0.41, 1e-9) {
		t.Errorf("Weighted blocking mismatch: exp 0.41, got %.6f", result.Metrics[BlockingMetric])
	}
}

func TestAnalyze_WeightsByObservations(t *testing.T) {
	// 9000 arrivals at 0.1 and 1000 at 0.5: the pooled estimate is 0.14,
	// not the unweighted 0.3.
	resultsFunc := makeSamples(
		testSample{blocking: 0.1, arrivals: 9000},
		testSample{blocking: 0.5, arrivals: 1000},
	)
	result := Analyze("Weighted", resultsFunc, ExpectBlocking(EQ, 0.14))
	result.Assert(t)
}

func TestAnalyze_Failing(t *testing.T) {
	resultsFunc := makeSamples(
		testSample{blocking: 0.40, arrivals: 1000},
	)
	expectations := []Expectation{
		ExpectBlocking(GTE, 0.35),   // Pass
		ExpectBlocking(GT, 0.40),    // Fail
		ExpectObservations(GT, 500), // Pass
	}

	result := Analyze("Failing", resultsFunc, expectations...)
	result.AssertFailure(t)

	if result.AllPassed {
		t.Errorf("Expected AllPassed to be false, but it was true")
	}
	if len(result.ExpectationChecks) > 1 && result.ExpectationChecks[1].Passed {
		t.Errorf("Expected second expectation (Blocking > 0.40) to fail, but it passed")
	}
}

func TestAnalyze_NoSamples(t *testing.T) {
	emptyFunc := makeSamples()
	expectations := []Expectation{ExpectBlocking(LTE, 0.5)}

	result := Analyze("Empty", emptyFunc, expectations...)
	result.LogResults(t)

	if result.AnalysisPerformed {
		t.Error("AnalysisPerformed should be false with no samples")
	}
	if result.AllPassed {
		t.Error("AllPassed should be false when expectations exist but analysis could not run")
	}
	if len(result.ExpectationChecks) != 0 {
		t.Errorf("ExpectationChecks should be empty with no samples, got %d", len(result.ExpectationChecks))
	}
}

func TestAnalyze_NoExpectations(t *testing.T) {
	resultsFunc := makeSamples(testSample{blocking: 0.25, arrivals: 100})

	result := Analyze("NoExpectations", resultsFunc)
	result.Assert(t)

	if !result.AllPassed {
		t.Error("AllPassed should be true when no expectations are given")
	}
	if _, ok := result.Metrics[BlockingMetric]; !ok {
		t.Error("Blocking metric missing")
	}
}

func TestAnalyze_SpreadMetric(t *testing.T) {
	resultsFunc := makeSamples(
		testSample{blocking: 0.2, arrivals: 100},
		testSample{blocking: 0.4, arrivals: 100},
	)
	result := Analyze("Spread", resultsFunc, ExpectSpread(GT, 0.1))
	result.Assert(t)
}
