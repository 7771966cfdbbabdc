package queueing

// LossSystem models a pool of identical servers with no waiting room
// (M/M/S/S) using the Erlang-B analytical result. It is a stateless
// component configured with arrival rate, average service time and server
// count; its methods predict steady-state behavior from those parameters
// alone.
//
// Limitations:
//   - Analytical model: steady-state averages only. It does not capture the
//     variance of bursty arrivals the way the Simulator in this package does.
//   - Stateless: it does not track instantaneous server occupancy.
type LossSystem struct {
	Name string

	// --- Configuration ---
	ArrivalRate    float64 // λ (arrivals per second)
	AvgServiceTime float64 // Ts = 1/μ (seconds per call)
	Servers        uint    // S

	// Internal derived values
	serviceRate  float64 // μ = 1 / Ts
	offeredLoad  float64 // A = λ / μ
	blockingProb float64 // B(A, S)
}

// Init derives the service rate, offered load and blocking probability.
// Zero-valued configuration fields get small non-zero defaults so a
// partially configured component never divides by zero.
func (ls *LossSystem) Init() {
	if ls.ArrivalRate <= 0 {
		ls.ArrivalRate = 1e-9
	}
	if ls.AvgServiceTime <= 0 {
		ls.AvgServiceTime = 1e-9
	}
	ls.serviceRate = 1.0 / ls.AvgServiceTime
	ls.offeredLoad = ls.ArrivalRate / ls.serviceRate

	// Inputs are clamped non-negative above, so ErlangB cannot fail here.
	ls.blockingProb, _ = ErlangB(ls.offeredLoad, int(ls.Servers))
}

// NewLossSystem creates and initializes a LossSystem component.
func NewLossSystem(name string, arrivalRate float64, avgServiceTime float64, servers uint) *LossSystem {
	ls := &LossSystem{
		Name:           name,
		ArrivalRate:    arrivalRate,
		AvgServiceTime: avgServiceTime,
		Servers:        servers,
	}
	ls.Init()
	return ls
}

// OfferedLoad returns A = λ/μ in erlangs.
func (ls *LossSystem) OfferedLoad() float64 { return ls.offeredLoad }

// BlockingProbability returns the Erlang-B blocking probability B(A, S).
func (ls *LossSystem) BlockingProbability() float64 { return ls.blockingProb }

// CarriedLoad returns the traffic actually served, A * (1 - B).
func (ls *LossSystem) CarriedLoad() float64 {
	return ls.offeredLoad * (1.0 - ls.blockingProb)
}

// EffectiveThroughput returns the admitted arrival rate, λ * (1 - B).
func (ls *LossSystem) EffectiveThroughput() float64 {
	return ls.ArrivalRate * (1.0 - ls.blockingProb)
}
