// queueing/erlang.go
package queueing

import (
	"fmt"
)

// ErlangB returns the blocking probability of an M/M/S/S loss system with
// the given offered load (A = lambda/mu, in erlangs) and server count.
//
// The closed form B = (A^S/S!) / sum_{k=0..S}(A^k/k!) is evaluated through
// the recurrence
//
//	B(A, 0) = 1
//	B(A, k) = A*B(A, k-1) / (k + A*B(A, k-1))
//
// rather than through explicit powers and factorials. Every intermediate
// value stays in [0, 1], so the result is finite for server counts far past
// the ~170 where float64 factorials overflow.
func ErlangB(offeredLoad float64, servers int) (float64, error) {
	if offeredLoad < 0 {
		return 0, fmt.Errorf("%w: offered load must be >= 0, got %g", ErrInvalidInput, offeredLoad)
	}
	if servers < 0 {
		return 0, fmt.Errorf("%w: servers must be >= 0, got %d", ErrInvalidInput, servers)
	}
	// No traffic means no arrivals and therefore no blocking, even with
	// zero servers.
	if offeredLoad == 0 {
		return 0, nil
	}

	b := 1.0 // B(A, 0): with no servers every arrival is blocked
	for k := 1; k <= servers; k++ {
		ab := offeredLoad * b
		b = ab / (float64(k) + ab)
	}
	return b, nil
}

// ErlangC returns the probability an arrival has to wait in the delayed
// (M/M/S) variant of the same system, derived from ErlangB via
//
//	C = S*B / (S - A*(1 - B))
//
// An overloaded system (A >= S) queues every arrival, so the result is 1.
func ErlangC(offeredLoad float64, servers int) (float64, error) {
	b, err := ErlangB(offeredLoad, servers)
	if err != nil {
		return 0, err
	}
	if offeredLoad == 0 {
		return 0, nil
	}
	if offeredLoad >= float64(servers) {
		return 1, nil
	}

	sb := float64(servers) * b
	c := sb / (float64(servers) - offeredLoad*(1.0-b))
	// Guard against float drift at the domain edges.
	if c < 0 {
		return 0, nil
	}
	if c > 1 {
		return 1, nil
	}
	return c, nil
}
