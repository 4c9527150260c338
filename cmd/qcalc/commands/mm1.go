package commands

import (
	"github.com/spf13/cobra"

	"github.com/queueworks/qcalc/models"
)

var mm1Cmd = &cobra.Command{
	Use:   "mm1",
	Short: "Evaluate an M/M/1 queue",
	Long: `Evaluate the steady-state single-server exponential queue.

Examples:
  qcalc mm1 --lambda 2 --mu 5
  qcalc mm1 --lambda 2 --mu 5 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		lambda, _ := cmd.Flags().GetFloat64("lambda")
		mu, _ := cmd.Flags().GetFloat64("mu")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		computeAndRender(&models.Input{
			Kind:   models.KindMM1,
			Lambda: lambda,
			Mu:     mu,
		}, jsonOutput)
	},
}

func init() {
	mm1Cmd.Flags().Float64("lambda", 0, "Arrival rate λ (required)")
	mm1Cmd.Flags().Float64("mu", 0, "Service rate μ (required)")
	mm1Cmd.Flags().Bool("json", false, "Output as JSON")
	mm1Cmd.MarkFlagRequired("lambda")
	mm1Cmd.MarkFlagRequired("mu")
	AddCommand(mm1Cmd)
}
