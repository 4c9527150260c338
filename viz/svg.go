package viz

import (
	"bytes"
	"fmt"
	"html"
)

// SvgGenerator renders a Schematic as a standalone SVG document.
type SvgGenerator struct{}

// Geometry constants for the fixed-size canvas.
const (
	svgWidth  = 640
	svgHeight = 200

	slotSize   = 22.0
	slotGap    = 4.0
	serverSize = 44.0
	serverGap  = 10.0
	midY       = 100.0
)

func (g *SvgGenerator) Generate(s *Schematic) (string, error) {
	var b bytes.Buffer

	b.WriteString(fmt.Sprintf("<svg width=\"%d\" height=\"%d\" xmlns=\"http://www.w3.org/2000/svg\">\n", svgWidth, svgHeight))
	b.WriteString("  <style>\n")
	b.WriteString("    text { font-family: sans-serif; font-size: 12px; }\n")
	b.WriteString("    .title { font-size: 14px; font-weight: bold; }\n")
	b.WriteString("    .slot { fill: #e8eef7; stroke: #4a6fa5; }\n")
	b.WriteString("    .server { fill: #d7ead9; stroke: #3a7d44; }\n")
	b.WriteString("    .server.hot { fill: #f7dcdc; stroke: #a54a4a; }\n")
	b.WriteString("    .arrow { stroke: #333; stroke-width: 1.5; marker-end: url(#head); }\n")
	b.WriteString("  </style>\n")
	b.WriteString("  <defs>\n")
	b.WriteString("    <marker id=\"head\" markerWidth=\"8\" markerHeight=\"8\" refX=\"6\" refY=\"3\" orient=\"auto\">\n")
	b.WriteString("      <path d=\"M0,0 L6,3 L0,6 z\" fill=\"#333\"/>\n")
	b.WriteString("    </marker>\n")
	b.WriteString("  </defs>\n")

	title := s.Model
	if s.Unstable {
		title += " (unstable)"
	}
	b.WriteString(fmt.Sprintf("  <text class=\"title\" x=\"%d\" y=\"24\" text-anchor=\"middle\">%s</text>\n",
		svgWidth/2, html.EscapeString(title)))

	// Arrival arrow.
	b.WriteString(fmt.Sprintf("  <line class=\"arrow\" x1=\"20\" y1=\"%.0f\" x2=\"120\" y2=\"%.0f\"/>\n", midY, midY))
	b.WriteString(fmt.Sprintf("  <text x=\"70\" y=\"%.0f\" text-anchor=\"middle\">%s</text>\n",
		midY-12, html.EscapeString(s.ArrivalLabel)))

	// Queue slots, drawn right to left so the head of the queue touches the
	// servers.
	queueRight := 130.0 + float64(MaxQueueSlots)*(slotSize+slotGap)
	for i := 0; i < s.QueueSlots; i++ {
		x := queueRight - float64(i+1)*(slotSize+slotGap)
		b.WriteString(fmt.Sprintf("  <rect class=\"slot\" x=\"%.1f\" y=\"%.1f\" width=\"%.0f\" height=\"%.0f\"/>\n",
			x, midY-slotSize/2, slotSize, slotSize))
	}
	if s.QueueOverflow != "" {
		b.WriteString(fmt.Sprintf("  <text x=\"%.1f\" y=\"%.0f\" text-anchor=\"middle\">%s</text>\n",
			queueRight-float64(MaxQueueSlots)*(slotSize+slotGap)-18, midY+4, html.EscapeString(s.QueueOverflow)))
	}

	// Server boxes, stacked vertically.
	serverX := queueRight + 30
	serverClass := "server"
	if s.Unstable {
		serverClass = "server hot"
	}
	totalHeight := float64(s.Servers)*serverSize + float64(s.Servers-1)*serverGap
	topY := midY - totalHeight/2
	for i := 0; i < s.Servers; i++ {
		y := topY + float64(i)*(serverSize+serverGap)
		b.WriteString(fmt.Sprintf("  <rect class=\"%s\" x=\"%.1f\" y=\"%.1f\" width=\"%.0f\" height=\"%.0f\" rx=\"6\"/>\n",
			serverClass, serverX, y, serverSize, serverSize))
	}
	if s.ServerOverflow != "" {
		b.WriteString(fmt.Sprintf("  <text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\">%s</text>\n",
			serverX+serverSize/2, topY+totalHeight+16, html.EscapeString(s.ServerOverflow)))
	}
	b.WriteString(fmt.Sprintf("  <text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\">ρ = %.3f</text>\n",
		serverX+serverSize/2, topY-10, s.Utilization))

	// Departure arrow.
	depX := serverX + serverSize + 20
	b.WriteString(fmt.Sprintf("  <line class=\"arrow\" x1=\"%.1f\" y1=\"%.0f\" x2=\"%.1f\" y2=\"%.0f\"/>\n",
		depX, midY, depX+100, midY))
	b.WriteString(fmt.Sprintf("  <text x=\"%.1f\" y=\"%.0f\" text-anchor=\"middle\">%s</text>\n",
		depX+50, midY-12, html.EscapeString(s.DepartureLabel)))

	b.WriteString("</svg>\n")
	return b.String(), nil
}
