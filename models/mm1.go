package models

import "github.com/queueworks/qcalc/core"

// MM1UnstableMsg is returned verbatim in Metrics.Err when λ >= μ.
const MM1UnstableMsg = "System unstable: λ must be less than μ for M/M/1"

// ComputeMM1 evaluates the steady-state M/M/1 queue.
//
// For ρ = λ/μ >= 1 the queue grows without bound: the result carries
// MM1UnstableMsg, every metric is the unbounded sentinel, and Rho keeps its
// computed value for diagnostic display. Otherwise the standard closed forms
// apply. Nt mirrors L, since a stationary infinite-horizon model has no
// transient count.
func ComputeMM1(lambda, mu float64) Metrics {
	rho := lambda / mu
	if rho >= 1 {
		return unstableMetrics(rho, MM1UnstableMsg)
	}

	l := rho / (1 - rho)
	lq := rho * rho / (1 - rho)
	w := 1 / (mu - lambda)
	wq := rho / (mu * (1 - rho))

	return Metrics{
		Nt:  core.Num(l),
		L:   core.Num(l),
		Lq:  core.Num(lq),
		W:   core.Num(w),
		Wq:  core.Num(wq),
		Rho: core.Num(rho),
	}
}
