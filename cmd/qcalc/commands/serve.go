package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/queueworks/qcalc/logging"
	"github.com/queueworks/qcalc/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the queueing metrics HTTP API",
	Long: `Start the HTTP API exposing the calculators, diagrams, a health
check and Prometheus metrics. Configuration comes from the environment
(QCALC_HOST, QCALC_PORT, QCALC_LOG_LEVEL, or a .env file); flags override.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := server.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if serveHost != "" {
			cfg.Host = serveHost
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if level, err := logging.ParseLevel(cfg.LogLevel); err == nil {
			logging.SetLevel(level)
		}

		srv := server.New(cfg)

		// Drain in-flight requests on SIGINT/SIGTERM before exiting.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			sig := <-sigCh
			logging.Info("received %s, shutting down", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logging.Error("shutdown: %v", err)
			}
		}()

		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (default: QCALC_HOST or localhost)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (default: QCALC_PORT or 8080)")
	AddCommand(serveCmd)
}
