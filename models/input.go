package models

import "fmt"

// Kind selects one of the three queueing models.
type Kind int

const (
	KindDD1K1 Kind = iota // deterministic single-server, finite capacity
	KindMM1               // exponential single-server, infinite capacity
	KindMMC               // exponential multi-server, infinite capacity
)

func (k Kind) String() string {
	switch k {
	case KindDD1K1:
		return "dd1k"
	case KindMM1:
		return "mm1"
	case KindMMC:
		return "mmc"
	default:
		return "unknown"
	}
}

// Label returns the conventional Kendall notation for the model.
func (k Kind) Label() string {
	switch k {
	case KindDD1K1:
		return "D/D/1/K-1"
	case KindMM1:
		return "M/M/1"
	case KindMMC:
		return "M/M/C"
	default:
		return "unknown"
	}
}

// ParseKind maps a model selector string to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "dd1k", "dd1k1", "ddk":
		return KindDD1K1, nil
	case "mm1":
		return KindMM1, nil
	case "mmc":
		return KindMMC, nil
	default:
		return 0, fmt.Errorf("unknown model %q (want dd1k, mm1 or mmc)", s)
	}
}

// Input is a tagged union over the three model variants. Lambda and Mu apply
// to every model; K, N0 and T are only meaningful for the deterministic model
// and C only for the multi-server model. Inputs are constructed fresh per
// computation and never mutated.
type Input struct {
	Kind   Kind
	Lambda float64 // λ, arrivals per unit time
	Mu     float64 // μ, completions per server per unit time

	K  int     // system capacity, deterministic model only
	N0 int     // initial count, deterministic model only
	T  float64 // evaluation time, deterministic model only

	C int // server count, multi-server model only
}

// Validate enforces the caller-side preconditions the calculators assume.
// The engine itself never re-checks these.
func (in *Input) Validate() error {
	if in.Lambda <= 0 {
		return fmt.Errorf("arrival rate λ must be positive, got %v", in.Lambda)
	}
	if in.Mu <= 0 {
		return fmt.Errorf("service rate μ must be positive, got %v", in.Mu)
	}
	switch in.Kind {
	case KindDD1K1:
		if in.K < 1 {
			return fmt.Errorf("capacity K must be at least 1, got %d", in.K)
		}
		if in.N0 < 0 {
			return fmt.Errorf("initial count n0 must be non-negative, got %d", in.N0)
		}
		if in.T < 0 {
			return fmt.Errorf("time t must be non-negative, got %v", in.T)
		}
	case KindMM1:
		// No model-specific parameters.
	case KindMMC:
		if in.C < 1 {
			return fmt.Errorf("server count c must be at least 1, got %d", in.C)
		}
		if in.C > MaxServers {
			return fmt.Errorf("server count c must be at most %d, got %d", MaxServers, in.C)
		}
	default:
		return fmt.Errorf("unknown model kind %d", in.Kind)
	}
	return nil
}

// Compute dispatches to the calculator for the input's kind. The input must
// have passed Validate.
func (in *Input) Compute() Metrics {
	switch in.Kind {
	case KindDD1K1:
		return ComputeDD1K1(in.Lambda, in.Mu, in.K, in.N0, in.T)
	case KindMMC:
		return ComputeMMC(in.Lambda, in.Mu, in.C)
	default:
		return ComputeMM1(in.Lambda, in.Mu)
	}
}
