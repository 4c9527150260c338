package commands

import (
	"github.com/spf13/cobra"

	"github.com/queueworks/qcalc/models"
)

var mmcCmd = &cobra.Command{
	Use:   "mmc",
	Short: "Evaluate an M/M/C queue (Erlang-C)",
	Long: `Evaluate the steady-state multi-server exponential queue.

Examples:
  qcalc mmc --lambda 10 --mu 4 --servers 3
  qcalc mmc --lambda 10 --mu 4 --servers 3 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		lambda, _ := cmd.Flags().GetFloat64("lambda")
		mu, _ := cmd.Flags().GetFloat64("mu")
		servers, _ := cmd.Flags().GetInt("servers")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		computeAndRender(&models.Input{
			Kind:   models.KindMMC,
			Lambda: lambda,
			Mu:     mu,
			C:      servers,
		}, jsonOutput)
	},
}

func init() {
	mmcCmd.Flags().Float64("lambda", 0, "Arrival rate λ (required)")
	mmcCmd.Flags().Float64("mu", 0, "Per-server service rate μ (required)")
	mmcCmd.Flags().Int("servers", 1, "Number of parallel servers c")
	mmcCmd.Flags().Bool("json", false, "Output as JSON")
	mmcCmd.MarkFlagRequired("lambda")
	mmcCmd.MarkFlagRequired("mu")
	AddCommand(mmcCmd)
}
