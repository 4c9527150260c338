package viz

import (
	"bytes"
	"fmt"
)

// DotGenerator renders a Schematic as a Graphviz digraph.
type DotGenerator struct{}

func (g *DotGenerator) Generate(s *Schematic) (string, error) {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("digraph \"%s\" {\n", s.Model))
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(fmt.Sprintf("  label=\"%s (ρ = %.3f)\";\n", s.Model, s.Utilization))
	b.WriteString("  node [shape=record];\n")

	b.WriteString("  arrival [shape=plaintext, label=\"" + s.ArrivalLabel + "\"];\n")

	queueLabel := ""
	for i := 0; i < s.QueueSlots; i++ {
		if i > 0 {
			queueLabel += "|"
		}
		queueLabel += "▪"
	}
	if s.QueueOverflow != "" {
		if queueLabel != "" {
			queueLabel = s.QueueOverflow + "|" + queueLabel
		} else {
			queueLabel = s.QueueOverflow
		}
	}
	if queueLabel == "" {
		queueLabel = "empty"
	}
	b.WriteString(fmt.Sprintf("  queue [label=\"{%s}\"];\n", queueLabel))

	for i := 0; i < s.Servers; i++ {
		style := ""
		if s.Unstable {
			style = ", style=filled, fillcolor=mistyrose"
		}
		b.WriteString(fmt.Sprintf("  server%d [label=\"server %d\"%s];\n", i+1, i+1, style))
	}
	if s.ServerOverflow != "" {
		b.WriteString(fmt.Sprintf("  servermore [shape=plaintext, label=\"%s servers\"];\n", s.ServerOverflow))
	}

	b.WriteString("  departure [shape=plaintext, label=\"" + s.DepartureLabel + "\"];\n")

	b.WriteString("  arrival -> queue;\n")
	for i := 0; i < s.Servers; i++ {
		b.WriteString(fmt.Sprintf("  queue -> server%d;\n", i+1))
		b.WriteString(fmt.Sprintf("  server%d -> departure;\n", i+1))
	}
	if s.ServerOverflow != "" {
		b.WriteString("  queue -> servermore [style=dashed];\n")
		b.WriteString("  servermore -> departure [style=dashed];\n")
	}
	b.WriteString("}\n")
	return b.String(), nil
}
