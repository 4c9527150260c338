package models

import (
	"math"

	"github.com/queueworks/qcalc/core"
)

// rateTolerance decides when λ and μ count as equal.
const rateTolerance = 1e-9

// ComputeDD1K1 evaluates the deterministic single-server queue with system
// capacity K at time t, starting from n0 customers.
//
// The instantaneous count grows (or drains) linearly, n(t) = n0 + (λ-μ)·t,
// clamped into [0, K-1]. Utilization ρ = λ/μ is reported regardless of its
// value: a finite-capacity deterministic queue saturates rather than
// diverges, so there is no instability error here.
//
// The mean-count figures in the λ < μ branch are an educational
// approximation, not a standard closed form for this transient model.
func ComputeDD1K1(lambda, mu float64, k, n0 int, t float64) Metrics {
	raw := float64(n0) + (lambda-mu)*t
	nt := math.Min(math.Max(raw, 0), float64(k-1))

	rho := lambda / mu

	var l, lq float64
	switch {
	case math.Abs(lambda-mu) <= rateTolerance:
		// Arrivals and departures balance: the count stays at n0.
		l = float64(n0)
		lq = math.Max(0, float64(n0-1))
	case lambda < mu:
		// The queue empties periodically.
		l = lambda * lambda / (2 * mu * (mu - lambda))
		lq = math.Max(0, l-lambda/mu)
	default:
		// The system saturates at capacity.
		l = float64(k - 1)
		lq = math.Max(0, float64(k-2))
	}

	var w, wq float64
	if lambda > 0 {
		w = l / lambda
		wq = lq / lambda
	}

	return Metrics{
		Nt:  core.Num(nt),
		L:   core.Num(l),
		Lq:  core.Num(lq),
		W:   core.Num(w),
		Wq:  core.Num(wq),
		Rho: core.Num(rho),
	}
}
