package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/queueworks/qcalc/models"
)

// computeAndRender validates the input, runs the calculator and prints the
// result. Validation failures exit non-zero; an unstable system is a valid
// result and is rendered as one.
func computeAndRender(in *models.Input, jsonOutput bool) {
	if err := in.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := in.Compute()
	if jsonOutput {
		out, err := json.MarshalIndent(map[string]any{
			"model":   in.Kind.String(),
			"metrics": m,
		}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	displayMetricsTable(in, &m)
}

func displayMetricsTable(in *models.Input, m *models.Metrics) {
	fmt.Printf("\n%s Metrics\n", in.Kind.Label())
	fmt.Println(strings.Repeat("─", 48))

	if m.Unstable() {
		color.New(color.FgRed).Printf("%s\n", m.Err)
		fmt.Printf("%-34s %s\n", "Utilization (ρ)", colorRho(m.Rho.String(), rhoValue(m)))
		fmt.Println(strings.Repeat("─", 48))
		return
	}

	rows := []struct {
		label string
		value string
	}{
		{"Instantaneous/mean count (nt)", m.Nt.String()},
		{"Mean number in system (L)", m.L.String()},
		{"Mean number in queue (Lq)", m.Lq.String()},
		{"Mean time in system (W)", m.W.String()},
		{"Mean time in queue (Wq)", m.Wq.String()},
	}
	for _, row := range rows {
		fmt.Printf("%-34s %s\n", row.label, row.value)
	}
	fmt.Printf("%-34s %s\n", "Utilization (ρ)", colorRho(m.Rho.String(), rhoValue(m)))
	fmt.Println(strings.Repeat("─", 48))
}

func rhoValue(m *models.Metrics) float64 {
	rho, _ := m.Rho.Float64()
	return rho
}

// colorRho shades utilization by band: green below 0.8, yellow up to 0.95,
// red beyond.
func colorRho(s string, rho float64) string {
	switch {
	case rho >= 0.95:
		return color.New(color.FgRed).Sprint(s)
	case rho >= 0.8:
		return color.New(color.FgYellow).Sprint(s)
	default:
		return color.New(color.FgGreen).Sprint(s)
	}
}
