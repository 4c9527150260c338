package models

import (
	"fmt"

	"github.com/queueworks/qcalc/core"
)

// Metrics is the output contract shared by all three calculators.
//
// Nt is the instantaneous system count for the deterministic model; the
// stationary models have no transient notion and report L there. When Err is
// non-empty the system is unstable: every field except Rho carries the
// unbounded sentinel, and Rho keeps its computed (>= 1) value so callers can
// still display it for diagnostics.
type Metrics struct {
	Nt  core.Value `json:"nt"`  // instantaneous or mean number in system
	L   core.Value `json:"l"`   // mean number in system
	Lq  core.Value `json:"lq"`  // mean number in queue
	W   core.Value `json:"w"`   // mean time in system
	Wq  core.Value `json:"wq"`  // mean time in queue
	Rho core.Value `json:"rho"` // utilization
	Err string     `json:"error,omitempty"`
}

// Unstable reports whether the result carries an instability error. Callers
// must check this before using any field other than Rho.
func (m *Metrics) Unstable() bool {
	return m.Err != ""
}

func (m Metrics) String() string {
	if m.Err != "" {
		return fmt.Sprintf("{rho=%s, err=%q}", m.Rho, m.Err)
	}
	return fmt.Sprintf("{nt=%s, l=%s, lq=%s, w=%s, wq=%s, rho=%s}",
		m.Nt, m.L, m.Lq, m.W, m.Wq, m.Rho)
}

// unstableMetrics builds the error-shaped result: all metrics unbounded,
// rho reported as computed.
func unstableMetrics(rho float64, msg string) Metrics {
	return Metrics{
		Nt:  core.Unbounded(),
		L:   core.Unbounded(),
		Lq:  core.Unbounded(),
		W:   core.Unbounded(),
		Wq:  core.Unbounded(),
		Rho: core.Num(rho),
		Err: msg,
	}
}
