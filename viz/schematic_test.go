package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queueworks/qcalc/models"
)

func TestBuildSchematicMM1(t *testing.T) {
	in := &models.Input{Kind: models.KindMM1, Lambda: 2, Mu: 5}
	m := in.Compute()
	s := BuildSchematic(in, &m)

	assert.Equal(t, "M/M/1", s.Model)
	assert.False(t, s.Unstable)
	assert.Equal(t, 1, s.Servers)
	assert.Empty(t, s.ServerOverflow)
	// Lq ~= 0.267 rounds up to a single visible slot.
	assert.Equal(t, 1, s.QueueSlots)
	assert.Empty(t, s.QueueOverflow)
	assert.InDelta(t, 0.4, s.Utilization, 1e-9)
	assert.Contains(t, s.ArrivalLabel, "2.000")
	assert.Contains(t, s.DepartureLabel, "2.000", "stable system departs at λ")
}

func TestBuildSchematicQueueOverflow(t *testing.T) {
	// λ=9.9, μ=10: Lq ~= 98, far past the visible cap.
	in := &models.Input{Kind: models.KindMM1, Lambda: 9.9, Mu: 10}
	m := in.Compute()
	s := BuildSchematic(in, &m)

	assert.Equal(t, MaxQueueSlots, s.QueueSlots)
	require.NotEmpty(t, s.QueueOverflow)
	assert.Equal(t, "+91", s.QueueOverflow) // ceil(98.01)=99 visible-capped at 8
}

func TestBuildSchematicUnstable(t *testing.T) {
	in := &models.Input{Kind: models.KindMM1, Lambda: 5, Mu: 4}
	m := in.Compute()
	s := BuildSchematic(in, &m)

	assert.True(t, s.Unstable)
	assert.Equal(t, MaxQueueSlots, s.QueueSlots)
	assert.Equal(t, "∞", s.QueueOverflow)
	assert.InDelta(t, 1.25, s.Utilization, 1e-9)
	assert.Contains(t, s.DepartureLabel, "μ", "saturated system departs at capacity")
}

func TestBuildSchematicServerOverflow(t *testing.T) {
	in := &models.Input{Kind: models.KindMMC, Lambda: 5, Mu: 1, C: 8}
	m := in.Compute()
	s := BuildSchematic(in, &m)

	assert.Equal(t, MaxServerBoxes, s.Servers)
	assert.Equal(t, "+5", s.ServerOverflow)
}

func TestBuildSchematicMMCVisibleServers(t *testing.T) {
	in := &models.Input{Kind: models.KindMMC, Lambda: 10, Mu: 4, C: 3}
	m := in.Compute()
	s := BuildSchematic(in, &m)

	assert.Equal(t, 3, s.Servers)
	assert.Empty(t, s.ServerOverflow)
	assert.InDelta(t, 10.0/12.0, s.Utilization, 1e-9)
}
