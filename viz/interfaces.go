// Package viz turns a computed queueing result into a proportional schematic:
// an arrival arrow, a capped row of queue slot markers, the visible server
// boxes, and a departure arrow. Generators render the same layout to
// different output formats.
package viz

// Schematic is the renderer-independent layout of a queueing diagram.
type Schematic struct {
	Model string // Kendall notation for the title, e.g. "M/M/1"

	ArrivalLabel   string // label on the incoming arrow, e.g. "λ = 2.000/s"
	DepartureLabel string // label on the outgoing arrow

	QueueSlots    int    // number of visible slot markers (0..MaxQueueSlots)
	QueueOverflow string // "+N" past the visible slots, "∞" when unbounded, "" otherwise

	Servers        int    // number of visible server boxes (1..MaxServerBoxes)
	ServerOverflow string // "+N" when c exceeds the visible boxes, "" otherwise

	Utilization float64 // ρ as computed, possibly >= 1 for unstable systems
	Unstable    bool
}

// SchematicGenerator renders a Schematic into a format-specific string.
type SchematicGenerator interface {
	Generate(s *Schematic) (string, error)
}
