package viz

import (
	"fmt"
	"math"

	"github.com/queueworks/qcalc/models"
)

const (
	// MaxQueueSlots caps the visible queue markers; anything beyond shows as
	// an overflow counter.
	MaxQueueSlots = 8

	// MaxServerBoxes caps the visible server boxes.
	MaxServerBoxes = 3
)

// BuildSchematic derives the diagram layout for a validated input and its
// computed metrics. Queue slots are proportional to Lq rounded up; server
// boxes come from the model's server count.
func BuildSchematic(in *models.Input, m *models.Metrics) *Schematic {
	s := &Schematic{
		Model:        in.Kind.Label(),
		ArrivalLabel: fmt.Sprintf("λ = %.3f/s", in.Lambda),
	}
	if rho, ok := m.Rho.Float64(); ok {
		s.Utilization = rho
	}
	s.Unstable = m.Unstable()

	// Queue slot markers from the queue-length metric.
	if lq, ok := m.Lq.Float64(); ok {
		slots := int(math.Ceil(lq))
		if slots > MaxQueueSlots {
			s.QueueSlots = MaxQueueSlots
			s.QueueOverflow = fmt.Sprintf("+%d", slots-MaxQueueSlots)
		} else {
			s.QueueSlots = slots
		}
	} else {
		// Unbounded queue: fill the visible slots and mark the rest.
		s.QueueSlots = MaxQueueSlots
		s.QueueOverflow = "∞"
	}

	servers := 1
	if in.Kind == models.KindMMC {
		servers = in.C
	}
	if servers > MaxServerBoxes {
		s.Servers = MaxServerBoxes
		s.ServerOverflow = fmt.Sprintf("+%d", servers-MaxServerBoxes)
	} else {
		s.Servers = servers
	}

	// A stable system departs at the arrival rate; a saturated one departs
	// at its total service capacity.
	capacity := in.Mu * float64(servers)
	if s.Unstable || in.Lambda > capacity {
		if servers > 1 {
			s.DepartureLabel = fmt.Sprintf("c·μ = %.3f/s", capacity)
		} else {
			s.DepartureLabel = fmt.Sprintf("μ = %.3f/s", capacity)
		}
	} else {
		s.DepartureLabel = fmt.Sprintf("λ = %.3f/s", in.Lambda)
	}

	return s
}
