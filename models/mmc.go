package models

import "github.com/queueworks/qcalc/core"

// MMCUnstableMsg is returned verbatim in Metrics.Err when λ >= c·μ.
const MMCUnstableMsg = "System unstable: λ must be less than c×μ for M/M/C"

// MaxServers bounds the server count accepted by Validate. It keeps the
// Erlang-C summation trivially small and rejects configurations far outside
// the model's useful range.
const MaxServers = 170

// ComputeMMC evaluates the steady-state M/M/C queue with c parallel servers
// using the Erlang-C formulas.
//
// r = λ/μ is the offered load and ρ = λ/(c·μ) the per-server utilization.
// For ρ >= 1 the result carries MMCUnstableMsg with all metrics unbounded,
// mirroring ComputeMM1. At c = 1 the Erlang-C forms reduce exactly to the
// M/M/1 closed forms.
func ComputeMMC(lambda, mu float64, c int) Metrics {
	r := lambda / mu
	rho := lambda / (float64(c) * mu)
	if rho >= 1 {
		return unstableMetrics(rho, MMCUnstableMsg)
	}

	// The r^n/n! terms are built with the recurrence term_{n+1} = term_n ·
	// r/(n+1). Evaluating the ratio directly keeps every intermediate finite
	// where a separate power and factorial would overflow at large offered
	// loads.
	sum := 0.0
	term := 1.0 // r^n / n!, starting at n = 0 with 0! = 1
	for n := 0; n < c; n++ {
		sum += term
		term *= r / float64(n+1)
	}
	// term is now r^c / c!.
	p0 := 1 / (sum + term/(1-rho))

	lq := p0 * term * rho / ((1 - rho) * (1 - rho))
	l := lq + r
	w := l / lambda
	wq := lq / lambda

	return Metrics{
		Nt:  core.Num(l),
		L:   core.Num(l),
		Lq:  core.Num(lq),
		W:   core.Num(w),
		Wq:  core.Num(wq),
		Rho: core.Num(rho),
	}
}
