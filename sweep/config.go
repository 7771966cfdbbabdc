package sweep

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one comparison sweep: a range of offered-load points
// evaluated both analytically and by repeated simulation.
type Config struct {
	// Servers is the size of the loss system under study.
	Servers int `yaml:"servers"`

	// ServiceRate is μ; the arrival rate at each point is derived as
	// λ = A·μ so the offered load sweeps the requested range.
	ServiceRate float64 `yaml:"serviceRate"`

	// Offered-load grid: LoadPoints values starting at LoadStart, spaced
	// LoadStep apart.
	LoadStart  float64 `yaml:"loadStart"`
	LoadStep   float64 `yaml:"loadStep"`
	LoadPoints int     `yaml:"loadPoints"`

	// Horizon is the simulated time per run, in seconds.
	Horizon float64 `yaml:"horizon"`

	// Iterations is the number of independent runs averaged per point.
	Iterations int `yaml:"iterations"`

	// MinArrivals, when positive, lets each run extend its horizon until
	// this many arrivals were observed.
	MinArrivals int `yaml:"minArrivals"`

	// Seed is the base seed; every (point, iteration) pair derives its own
	// stream from it. Zero picks a wall-clock seed.
	Seed int64 `yaml:"seed"`

	// Workers bounds the number of points evaluated concurrently.
	Workers int `yaml:"workers"`
}

// DefaultConfig mirrors the classic comparison setup: 40 points at 0.5
// erlang steps, 20000s horizons, 5 iterations per point, at least 10k
// arrivals per run.
func DefaultConfig() Config {
	return Config{
		Servers:     5,
		ServiceRate: 1.0,
		LoadStart:   0.5,
		LoadStep:    0.5,
		LoadPoints:  40,
		Horizon:     20000,
		Iterations:  5,
		MinArrivals: 10000,
		Workers:     4,
	}
}

// LoadConfig reads a YAML sweep description, applied on top of the
// defaults so files only need to state what they change.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading sweep config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing sweep config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Servers < 0 {
		return errors.New("servers must be >= 0")
	}
	if c.ServiceRate <= 0 {
		return errors.New("service rate must be > 0")
	}
	if c.LoadStart <= 0 {
		// A zero load point would give the simulator a zero arrival rate.
		return errors.New("load start must be > 0")
	}
	if c.LoadStep <= 0 {
		return errors.New("load step must be > 0")
	}
	if c.LoadPoints <= 0 {
		return errors.New("load points must be > 0")
	}
	if c.Horizon <= 0 {
		return errors.New("horizon must be > 0")
	}
	if c.Iterations <= 0 {
		return errors.New("iterations must be > 0")
	}
	if c.MinArrivals < 0 {
		return errors.New("min arrivals must be >= 0")
	}
	if c.Workers <= 0 {
		return errors.New("workers must be > 0")
	}
	return nil
}

// Loads returns the offered-load grid the sweep will evaluate.
func (c Config) Loads() []float64 {
	loads := make([]float64, c.LoadPoints)
	for i := range loads {
		loads[i] = c.LoadStart + float64(i)*c.LoadStep
	}
	return loads
}
