// core/analyzer.go
package core

import (
	"math"
	"testing"
)

// The analyzer wraps a batch of simulation results with declarative
// expectations, so tests read as performance assertions ("blocking <= 0.45
// over at least 10k observations") instead of hand-rolled arithmetic.

// BlockingSample is anything that reports an empirical blocking estimate
// over a number of observed arrivals.
type BlockingSample interface {
	BlockingProbability() float64
	Observations() int
}

type MetricType int

const (
	// BlockingMetric is the observation-weighted mean blocking probability
	// across all samples.
	BlockingMetric MetricType = iota
	// ObservationsMetric is the total number of observed arrivals.
	ObservationsMetric
	// SpreadMetric is the standard deviation of the per-sample estimates.
	SpreadMetric
)

type OperatorType int

const (
	LT OperatorType = iota
	LTE
	EQ
	NEQ
	GTE
	GT
)

// Expectation is a single metric assertion checked by Analyze.
type Expectation struct {
	Metric    MetricType
	Operator  OperatorType
	Threshold float64
}

func ExpectBlocking(op OperatorType, threshold float64) Expectation {
	return Expectation{Metric: BlockingMetric, Operator: op, Threshold: threshold}
}

func ExpectObservations(op OperatorType, threshold float64) Expectation {
	return Expectation{Metric: ObservationsMetric, Operator: op, Threshold: threshold}
}

func ExpectSpread(op OperatorType, threshold float64) Expectation {
	return Expectation{Metric: SpreadMetric, Operator: op, Threshold: threshold}
}

// ExpectationCheck records the evaluation of one expectation.
type ExpectationCheck struct {
	Expectation Expectation
	ActualValue float64
	Passed      bool
}

// AnalysisResult holds the computed metrics and per-expectation outcomes.
type AnalysisResult struct {
	Name              string
	AnalysisPerformed bool
	AllPassed         bool
	Metrics           map[MetricType]float64
	ExpectationChecks []ExpectationCheck
}

// Analyze computes blocking metrics over the samples produced by
// resultsFunc and evaluates each expectation against them. A nil or empty
// sample set skips analysis; in that case AllPassed is only true when no
// expectations were given.
func Analyze[S BlockingSample](name string, resultsFunc func() []S, expectations ...Expectation) *AnalysisResult {
	out := &AnalysisResult{
		Name:    name,
		Metrics: map[MetricType]float64{},
	}

	samples := resultsFunc()
	if len(samples) == 0 {
		out.AllPassed = len(expectations) == 0
		return out
	}

	totalObs := 0
	weightedBlocked := 0.0
	estimates := make([]float64, 0, len(samples))
	for _, s := range samples {
		obs := s.Observations()
		totalObs += obs
		weightedBlocked += s.BlockingProbability() * float64(obs)
		estimates = append(estimates, s.BlockingProbability())
	}

	blocking := 0.0
	if totalObs > 0 {
		blocking = weightedBlocked / float64(totalObs)
	}
	out.Metrics[BlockingMetric] = blocking
	out.Metrics[ObservationsMetric] = float64(totalObs)
	out.Metrics[SpreadMetric] = StdDev(estimates)
	out.AnalysisPerformed = true

	out.AllPassed = true
	for _, exp := range expectations {
		actual := out.Metrics[exp.Metric]
		check := ExpectationCheck{
			Expectation: exp,
			ActualValue: actual,
			Passed:      checkExpectation(actual, exp.Operator, exp.Threshold),
		}
		if !check.Passed {
			out.AllPassed = false
		}
		out.ExpectationChecks = append(out.ExpectationChecks, check)
	}
	return out
}

func checkExpectation(actual float64, op OperatorType, threshold float64) bool {
	const eps = 1e-9
	switch op {
	case LT:
		return actual < threshold
	case LTE:
		return actual <= threshold+eps
	case EQ:
		return math.Abs(actual-threshold) <= eps
	case NEQ:
		return math.Abs(actual-threshold) > eps
	case GTE:
		return actual >= threshold-eps
	case GT:
		return actual > threshold
	}
	return false
}

// Assert fails the test if any expectation did not hold.
func (r *AnalysisResult) Assert(t testing.TB) {
	t.Helper()
	r.LogResults(t)
	if !r.AllPassed {
		t.Errorf("%s: one or more expectations failed", r.Name)
	}
}

// AssertFailure fails the test if every expectation held. Used by tests
// that verify the analyzer itself catches violations.
func (r *AnalysisResult) AssertFailure(t testing.TB) {
	t.Helper()
	r.LogResults(t)
	if r.AllPassed {
		t.Errorf("%s: expected at least one expectation to fail, but all passed", r.Name)
	}
}

// LogResults writes the metric values and each check to the test log.
func (r *AnalysisResult) LogResults(t testing.TB) {
	t.Helper()
	if !r.AnalysisPerformed {
		t.Logf("%s: analysis skipped (no samples)", r.Name)
		return
	}
	t.Logf("%s: blocking=%.6f observations=%.0f spread=%.6f",
		r.Name, r.Metrics[BlockingMetric], r.Metrics[ObservationsMetric], r.Metrics[SpreadMetric])
	for _, check := range r.ExpectationChecks {
		status := "PASS"
		if !check.Passed {
			status = "FAIL"
		}
		t.Logf("  [%s] %s %s %.6f (actual %.6f)", status,
			metricTypeToString(check.Expectation.Metric),
			operatorTypeToString(check.Expectation.Operator),
			check.Expectation.Threshold, check.ActualValue)
	}
}

func metricTypeToString(m MetricType) string {
	switch m {
	case BlockingMetric:
		return "Blocking"
	case ObservationsMetric:
		return "Observations"
	case SpreadMetric:
		return "Spread"
	}
	return "Unknown"
}

func operatorTypeToString(op OperatorType) string {
	switch op {
	case LT:
		return "<"
	case LTE:
		return "<="
	case EQ:
		return "=="
	case NEQ:
		return "!="
	case GTE:
		return ">="
	case GT:
		return ">"
	}
	return "?"
}
