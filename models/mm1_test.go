package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// mustNum unwraps a numeric metric value, failing the test on the sentinel.
func mustNum(t *testing.T, v interface{ Float64() (float64, bool) }) float64 {
	t.Helper()
	f, ok := v.Float64()
	require.True(t, ok, "expected a numeric value, got the unbounded sentinel")
	return f
}

func TestMM1Stable(t *testing.T) {
	m := ComputeMM1(2, 5)
	require.False(t, m.Unstable())

	assert.InDelta(t, 0.4, mustNum(t, m.Rho), tol)
	assert.InDelta(t, 2.0/3.0, mustNum(t, m.L), tol)
	assert.InDelta(t, 0.4*0.4/0.6, mustNum(t, m.Lq), tol)
	assert.InDelta(t, 1.0/3.0, mustNum(t, m.W), tol)
	assert.InDelta(t, 0.4/(5*0.6), mustNum(t, m.Wq), tol)
	assert.InDelta(t, mustNum(t, m.L), mustNum(t, m.Nt), tol, "Nt mirrors L for stationary models")
}

func TestMM1Unstable(t *testing.T) {
	m := ComputeMM1(5, 4)
	require.True(t, m.Unstable())
	assert.Equal(t, MM1UnstableMsg, m.Err)

	// Rho stays numeric for diagnostics, everything else is unbounded.
	assert.InDelta(t, 1.25, mustNum(t, m.Rho), tol)
	for name, v := range map[string]interface{ IsUnbounded() bool }{
		"nt": m.Nt, "l": m.L, "lq": m.Lq, "w": m.W, "wq": m.Wq,
	} {
		assert.True(t, v.IsUnbounded(), "%s should be unbounded", name)
	}
}

func TestMM1BoundaryIsUnstable(t *testing.T) {
	m := ComputeMM1(4, 4)
	require.True(t, m.Unstable(), "rho == 1 is unstable")
	assert.InDelta(t, 1.0, mustNum(t, m.Rho), tol)
}

// Lq = L - rho and Wq = W - 1/mu must hold for every stable M/M/1.
func TestMM1Identities(t *testing.T) {
	cases := []struct{ lambda, mu float64 }{
		{0.1, 1}, {1, 2}, {2, 5}, {7, 8}, {99, 100},
	}
	for _, c := range cases {
		m := ComputeMM1(c.lambda, c.mu)
		require.False(t, m.Unstable())

		l := mustNum(t, m.L)
		lq := mustNum(t, m.Lq)
		w := mustNum(t, m.W)
		wq := mustNum(t, m.Wq)
		rho := mustNum(t, m.Rho)

		assert.InDelta(t, l-rho, lq, 1e-9, "λ=%v μ=%v", c.lambda, c.mu)
		assert.InDelta(t, w-1/c.mu, wq, 1e-9, "λ=%v μ=%v", c.lambda, c.mu)
		assert.LessOrEqual(t, lq, l)
		assert.InDelta(t, l/c.lambda, w, 1e-9, "Little's law")
		assert.InDelta(t, lq/c.lambda, wq, 1e-9, "Little's law (queue)")
	}
}

// L grows monotonically as lambda approaches mu from below.
func TestMM1DivergesTowardsBoundary(t *testing.T) {
	mu := 10.0
	prev := -1.0
	for _, lambda := range []float64{5, 8, 9, 9.5, 9.9, 9.99, 9.999} {
		m := ComputeMM1(lambda, mu)
		require.False(t, m.Unstable())
		l := mustNum(t, m.L)
		assert.Greater(t, l, prev, "L must increase as λ → μ")
		prev = l
	}
	assert.Greater(t, prev, 999.0, "L near the boundary should be very large")
}
