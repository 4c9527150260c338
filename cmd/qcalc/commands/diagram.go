package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/queueworks/qcalc/models"
	"github.com/queueworks/qcalc/viz"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Render a schematic diagram for a model",
	Long: `Render the queueing schematic (arrival arrow, queue slots, server
boxes, departure arrow) for a computed model.

Examples:
  qcalc diagram --model mm1 --lambda 2 --mu 5 --format svg -o mm1.svg
  qcalc diagram --model mmc --lambda 10 --mu 4 --servers 3 --format mermaid
  qcalc diagram --model dd1k --lambda 3 --mu 2 --capacity 10 --initial 0 --time 4 --format dot`,
	Run: func(cmd *cobra.Command, args []string) {
		model, _ := cmd.Flags().GetString("model")
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("output")

		in, err := inputFromFlags(cmd, model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		gen, err := viz.GeneratorFor(format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		m := in.Compute()
		out, err := gen.Generate(viz.BuildSchematic(in, &m))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if outPath == "" {
			fmt.Print(out)
			return
		}
		if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s diagram to %s\n", format, outPath)
	},
}

// inputFromFlags assembles and validates a model input from the diagram
// command's flags.
func inputFromFlags(cmd *cobra.Command, model string) (*models.Input, error) {
	kind, err := models.ParseKind(model)
	if err != nil {
		return nil, err
	}

	lambda, _ := cmd.Flags().GetFloat64("lambda")
	mu, _ := cmd.Flags().GetFloat64("mu")
	in := &models.Input{Kind: kind, Lambda: lambda, Mu: mu}

	switch kind {
	case models.KindDD1K1:
		in.K, _ = cmd.Flags().GetInt("capacity")
		in.N0, _ = cmd.Flags().GetInt("initial")
		in.T, _ = cmd.Flags().GetFloat64("time")
	case models.KindMMC:
		in.C, _ = cmd.Flags().GetInt("servers")
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

func init() {
	diagramCmd.Flags().String("model", "", "Model to render: dd1k, mm1 or mmc (required)")
	diagramCmd.Flags().String("format", "svg", "Output format: svg, dot or mermaid")
	diagramCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	diagramCmd.Flags().Float64("lambda", 0, "Arrival rate λ (required)")
	diagramCmd.Flags().Float64("mu", 0, "Service rate μ (required)")
	diagramCmd.Flags().Int("servers", 1, "Number of servers c (mmc)")
	diagramCmd.Flags().Int("capacity", 1, "System capacity K (dd1k)")
	diagramCmd.Flags().Int("initial", 0, "Initial count n0 (dd1k)")
	diagramCmd.Flags().Float64("time", 0, "Evaluation time t (dd1k)")
	diagramCmd.MarkFlagRequired("model")
	diagramCmd.MarkFlagRequired("lambda")
	diagramCmd.MarkFlagRequired("mu")
	AddCommand(diagramCmd)
}
