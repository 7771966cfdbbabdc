// sweep/sweep.go
package sweep

import (
	"errors"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	gfn "github.com/panyam/goutils/fn"

	"github.com/panyam/lossq/core"
	"github.com/panyam/lossq/queueing"
)

// Point pairs the analytical and simulated blocking estimates at one
// offered load.
type Point struct {
	OfferedLoad float64
	Analytical  float64
	Simulated   float64
	AbsError    float64
	Arrivals    int // total arrivals across all iterations at this point
}

// Runner evaluates a Config: for every offered-load point it computes the
// Erlang-B value and the mean of several independently seeded simulation
// runs. Points are independent, so they fan out across a worker pool; no
// state is shared between evaluations.
type Runner struct {
	cfg  Config
	seed int64

	// Verbose turns on per-point progress logging, matching the cadence of
	// an interactive sweep.
	Verbose bool

	completed atomic.Int64
}

// NewRunner validates the config and fixes the base seed (wall clock when
// the config left it zero).
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{cfg: cfg, seed: seed}, nil
}

// Run evaluates every point and returns them in offered-load order.
func (r *Runner) Run() ([]Point, error) {
	loads := r.cfg.Loads()
	points := make([]Point, len(loads))
	errs := make([]error, len(loads))

	pool, err := ants.NewPool(r.cfg.Workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, load := range loads {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			points[i], errs[i] = r.evaluate(i, load)
		}); err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return points, nil
}

// evaluate computes one point: the analytical value plus the average of
// Iterations seeded simulation runs.
func (r *Runner) evaluate(idx int, load float64) (Point, error) {
	analytical, err := queueing.ErlangB(load, r.cfg.Servers)
	if err != nil {
		return Point{}, err
	}

	arrivals := 0
	estimates := make([]float64, 0, r.cfg.Iterations)
	for it := 0; it < r.cfg.Iterations; it++ {
		sim := &queueing.Simulator{
			ArrivalRate: load * r.cfg.ServiceRate,
			ServiceRate: r.cfg.ServiceRate,
			Servers:     r.cfg.Servers,
			Horizon:     r.cfg.Horizon,
			MinArrivals: r.cfg.MinArrivals,
			Rand:        core.NewRand(r.iterationSeed(idx, it)),
		}
		res, err := sim.Run()
		if err != nil {
			return Point{}, err
		}
		arrivals += res.Arrivals
		estimates = append(estimates, res.BlockingProbability())
	}

	simulated := core.Mean(estimates)
	done := r.completed.Add(1)
	if r.Verbose {
		log.Printf("sweep: %d/%d points complete (A=%.2f)", done, r.cfg.LoadPoints, load)
	}
	return Point{
		OfferedLoad: load,
		Analytical:  analytical,
		Simulated:   simulated,
		AbsError:    math.Abs(simulated - analytical),
		Arrivals:    arrivals,
	}, nil
}

// iterationSeed derives a distinct, reproducible stream per (point,
// iteration) pair from the base seed. Large odd strides keep the derived
// seeds from colliding across the grid.
func (r *Runner) iterationSeed(point, iteration int) int64 {
	return r.seed + int64(point)*1_000_003 + int64(iteration)*7_919
}

// Series splits sweep points into the two named series a comparison chart
// wants.
func Series(points []Point) (analytical, simulated []float64) {
	analytical = gfn.Map(points, func(p Point) float64 { return p.Analytical })
	simulated = gfn.Map(points, func(p Point) float64 { return p.Simulated })
	return
}
