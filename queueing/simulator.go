// queueing/simulator.go
package queueing

import (
	"container/heap"
	"fmt"

	"github.com/panyam/lossq/core"
)

// DefaultMaxEvents caps a single Run. The horizon bounds simulated time,
// not event count, so a high arrival rate (or MinArrivals doubling the
// horizon) needs an explicit budget to keep interactive callers bounded.
const DefaultMaxEvents = 50_000_000

// Result is the outcome of one simulation run.
type Result struct {
	Arrivals int // total arrivals observed, Served + Blocked
	Served   int
	Blocked  int

	Horizon    core.Duration // final horizon, after any MinArrivals extension
	Extensions int           // number of horizon doublings performed
}

// BlockingProbability returns the empirical blocking fraction. A run with
// zero arrivals has no estimate; Run reports that case as an error, so 0
// here is only reachable through a hand-built Result.
func (r *Result) BlockingProbability() float64 {
	if r.Arrivals == 0 {
		return 0
	}
	return float64(r.Blocked) / float64(r.Arrivals)
}

// Observations returns the number of arrivals backing the estimate.
func (r *Result) Observations() int { return r.Arrivals }

// Simulator runs a discrete-event Monte Carlo estimate of the blocking
// probability of an M/M/S/S loss system. Each Run owns all of its state
// (clock, server occupancy, departure schedule), so distinct Simulator
// values may run concurrently, each with its own Rand.
//
// Departures are tracked as simulated timestamps in a min-heap and settled
// against the clock before each arrival is admitted. Server occupancy is
// therefore a function of simulated time only, never of how fast the host
// executes the loop.
type Simulator struct {
	ArrivalRate float64       // λ > 0
	ServiceRate float64       // μ > 0
	Servers     int           // S >= 0
	Horizon     core.Duration // T > 0, simulated seconds

	// Rand supplies the uniform draws behind both exponential samplers.
	// Nil means a wall-clock seeded generator; tests inject a seeded or
	// scripted source for reproducibility.
	Rand core.RandSource

	// MaxEvents bounds total arrivals processed across horizon extensions.
	// Zero means DefaultMaxEvents.
	MaxEvents int

	// MinArrivals, when positive, doubles the horizon and reruns until at
	// least this many arrivals were observed, trading runtime for a tighter
	// estimate. Zero preserves the fixed-horizon behavior.
	MinArrivals int
}

func (s *Simulator) validate() error {
	if s.ArrivalRate <= 0 {
		return fmt.Errorf("%w: arrival rate must be > 0, got %g", ErrInvalidInput, s.ArrivalRate)
	}
	if s.ServiceRate <= 0 {
		return fmt.Errorf("%w: service rate must be > 0, got %g", ErrInvalidInput, s.ServiceRate)
	}
	if s.Servers < 0 {
		return fmt.Errorf("%w: servers must be >= 0, got %d", ErrInvalidInput, s.Servers)
	}
	if s.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be > 0, got %g", ErrInvalidInput, s.Horizon)
	}
	if s.MaxEvents < 0 {
		return fmt.Errorf("%w: max events must be >= 0, got %d", ErrInvalidInput, s.MaxEvents)
	}
	return nil
}

// Run executes the simulation and returns the observed counts.
//
// Errors: ErrInvalidInput for out-of-domain parameters,
// ErrInsufficientSamples when the horizon produced no arrivals (and
// MinArrivals is disabled), ErrEventBudget when MaxEvents was hit first.
func (s *Simulator) Run() (*Result, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	rng := s.Rand
	if rng == nil {
		rng = core.NewTimeRand()
	}
	budget := s.MaxEvents
	if budget == 0 {
		budget = DefaultMaxEvents
	}

	horizon := s.Horizon
	extensions := 0
	for {
		res, err := s.runOnce(rng, horizon, budget)
		if err != nil {
			return nil, err
		}
		res.Extensions = extensions
		budget -= res.Arrivals

		if s.MinArrivals <= 0 {
			if res.Arrivals == 0 {
				return nil, fmt.Errorf("%w: no arrivals within horizon %g", ErrInsufficientSamples, horizon)
			}
			return res, nil
		}
		if res.Arrivals >= s.MinArrivals {
			return res, nil
		}
		if budget <= 0 {
			return nil, fmt.Errorf("%w: %d arrivals observed, %d required", ErrEventBudget, res.Arrivals, s.MinArrivals)
		}
		horizon *= 2
		extensions++
	}
}

// runOnce simulates a single fixed horizon from a fresh initial state.
func (s *Simulator) runOnce(rng core.RandSource, horizon core.Duration, budget int) (*Result, error) {
	res := &Result{Horizon: horizon}

	var now core.Duration
	busy := 0
	var departures departureHeap

	for {
		now += core.Exponential(rng, s.ArrivalRate)
		if now >= horizon {
			// Horizon reached. Calls still in service are simply not
			// counted further; pending departures are discarded with the
			// rest of the run state.
			return res, nil
		}
		if res.Arrivals >= budget {
			return nil, fmt.Errorf("%w: %d events before horizon %g", ErrEventBudget, res.Arrivals, horizon)
		}

		// Settle every departure due at or before this arrival so the
		// occupancy the arrival sees reflects elapsed simulated time.
		for departures.Len() > 0 && departures.min() <= now {
			heap.Pop(&departures)
			busy--
		}

		res.Arrivals++
		if busy < s.Servers {
			busy++
			res.Served++
			heap.Push(&departures, now+core.Exponential(rng, s.ServiceRate))
		} else {
			// Blocked calls draw no service time and hold no server.
			res.Blocked++
		}
	}
}

// SimulateBlocking estimates the blocking probability of an M/M/S/S system
// over the given horizon. A nil rng selects a wall-clock seeded generator.
func SimulateBlocking(arrivalRate, serviceRate float64, servers int, horizon core.Duration, rng core.RandSource) (float64, error) {
	sim := &Simulator{
		ArrivalRate: arrivalRate,
		ServiceRate: serviceRate,
		Servers:     servers,
		Horizon:     horizon,
		Rand:        rng,
	}
	res, err := sim.Run()
	if err != nil {
		return 0, err
	}
	return res.BlockingProbability(), nil
}

// departureHeap is a min-heap of pending departure timestamps. One
// timestamp per busy server is all the state a loss system needs, so the
// heap stores bare durations rather than event structs.
type departureHeap []core.Duration

func (h departureHeap) Len() int           { return len(h) }
func (h departureHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h departureHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *departureHeap) Push(x any) { *h = append(*h, x.(core.Duration)) }

func (h *departureHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

func (h departureHeap) min() core.Duration { return h[0] }
