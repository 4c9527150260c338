package viz

import (
	"bytes"
	"fmt"
	"strings"
)

// MermaidGenerator renders a Schematic as a Mermaid flowchart.
type MermaidGenerator struct{}

func (g *MermaidGenerator) Generate(s *Schematic) (string, error) {
	var b bytes.Buffer
	b.WriteString("graph LR;\n")
	b.WriteString(fmt.Sprintf("  subgraph %s\n", s.Model))

	slots := strings.Repeat("▪", s.QueueSlots)
	if s.QueueOverflow != "" {
		slots = s.QueueOverflow + " " + slots
	}
	if slots == "" {
		slots = "empty"
	}
	b.WriteString(fmt.Sprintf("    queue[\"%s\"];\n", slots))

	for i := 0; i < s.Servers; i++ {
		b.WriteString(fmt.Sprintf("    server%d((\"server %d\"));\n", i+1, i+1))
	}
	if s.ServerOverflow != "" {
		b.WriteString(fmt.Sprintf("    servermore[\"%s servers\"];\n", s.ServerOverflow))
	}
	b.WriteString("  end\n")

	b.WriteString(fmt.Sprintf("  arrival([\"%s\"]);\n", s.ArrivalLabel))
	b.WriteString(fmt.Sprintf("  departure([\"%s\"]);\n", s.DepartureLabel))

	b.WriteString("  arrival --> queue;\n")
	for i := 0; i < s.Servers; i++ {
		b.WriteString(fmt.Sprintf("  queue --> server%d;\n", i+1))
		b.WriteString(fmt.Sprintf("  server%d --> departure;\n", i+1))
	}
	if s.ServerOverflow != "" {
		b.WriteString("  queue -.-> servermore;\n")
		b.WriteString("  servermore -.-> departure;\n")
	}
	return b.String(), nil
}

// GeneratorFor maps a format name to its generator.
func GeneratorFor(format string) (SchematicGenerator, error) {
	switch format {
	case "svg":
		return &SvgGenerator{}, nil
	case "dot":
		return &DotGenerator{}, nil
	case "mermaid":
		return &MermaidGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown diagram format %q (want svg, dot or mermaid)", format)
	}
}
