package core

import (
	"fmt"
	"math"
	"strconv"
)

// Value is a metric scalar that is either an ordinary non-negative number or
// the unbounded sentinel. Unstable systems report unbounded metrics; keeping
// the sentinel as an explicit state (rather than a raw floating infinity)
// stops it from silently leaking into further arithmetic.
type Value struct {
	num       float64
	unbounded bool
}

// Num wraps an ordinary numeric metric value.
func Num(v float64) Value {
	return Value{num: v}
}

// Unbounded returns the sentinel for metrics that grow without limit.
func Unbounded() Value {
	return Value{unbounded: true}
}

// IsUnbounded reports whether v carries the unbounded sentinel.
func (v Value) IsUnbounded() bool {
	return v.unbounded
}

// Float64 returns the numeric value. ok is false for the unbounded sentinel,
// in which case the number must not be used for display math.
func (v Value) Float64() (val float64, ok bool) {
	if v.unbounded {
		return 0, false
	}
	return v.num, true
}

// Rounded returns the value rounded to 3 decimals for presentation.
// Calling it on the unbounded sentinel returns +Inf.
func (v Value) Rounded() float64 {
	if v.unbounded {
		return math.Inf(1)
	}
	return Round3(v.num)
}

func (v Value) String() string {
	if v.unbounded {
		return "∞"
	}
	if math.IsNaN(v.num) {
		return "-"
	}
	return strconv.FormatFloat(Round3(v.num), 'f', 3, 64)
}

// MarshalJSON renders numbers rounded to 3 decimals and the sentinel as the
// string "unbounded" (JSON has no infinity literal).
func (v Value) MarshalJSON() ([]byte, error) {
	if v.unbounded {
		return []byte(`"unbounded"`), nil
	}
	if math.IsNaN(v.num) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(Round3(v.num), 'f', -1, 64)), nil
}

// UnmarshalJSON accepts the same encoding MarshalJSON produces.
func (v *Value) UnmarshalJSON(data []byte) error {
	s := string(data)
	switch s {
	case `"unbounded"`:
		*v = Unbounded()
		return nil
	case "null":
		*v = Num(math.NaN())
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid metric value %s: %w", s, err)
	}
	*v = Num(f)
	return nil
}

// Round3 rounds x to 3 decimal digits.
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// WithinTolerance reports whether a and b differ by at most tol.
func WithinTolerance(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tol
}
