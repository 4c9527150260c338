package commands

import (
	"github.com/spf13/cobra"

	"github.com/queueworks/qcalc/models"
)

var dd1kCmd = &cobra.Command{
	Use:   "dd1k",
	Short: "Evaluate a D/D/1/K-1 queue at a point in time",
	Long: `Evaluate the deterministic single-server finite-capacity queue:
the instantaneous count at time t plus the mean-value metrics.

Examples:
  qcalc dd1k --lambda 3 --mu 2 --capacity 10 --initial 0 --time 4
  qcalc dd1k --lambda 2 --mu 2 --capacity 10 --initial 5 --time 1 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		lambda, _ := cmd.Flags().GetFloat64("lambda")
		mu, _ := cmd.Flags().GetFloat64("mu")
		capacity, _ := cmd.Flags().GetInt("capacity")
		initial, _ := cmd.Flags().GetInt("initial")
		t, _ := cmd.Flags().GetFloat64("time")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		computeAndRender(&models.Input{
			Kind:   models.KindDD1K1,
			Lambda: lambda,
			Mu:     mu,
			K:      capacity,
			N0:     initial,
			T:      t,
		}, jsonOutput)
	},
}

func init() {
	dd1kCmd.Flags().Float64("lambda", 0, "Arrival rate λ (required)")
	dd1kCmd.Flags().Float64("mu", 0, "Service rate μ (required)")
	dd1kCmd.Flags().Int("capacity", 1, "System capacity K")
	dd1kCmd.Flags().Int("initial", 0, "Initial count n0")
	dd1kCmd.Flags().Float64("time", 0, "Evaluation time t")
	dd1kCmd.Flags().Bool("json", false, "Output as JSON")
	dd1kCmd.MarkFlagRequired("lambda")
	dd1kCmd.MarkFlagRequired("mu")
	AddCommand(dd1kCmd)
}
