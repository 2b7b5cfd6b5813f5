package cmd

import (
	"fmt"
	"os"

	"bookmychair/config"
	"bookmychair/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "bookmychair",
	Short: "Workplace chair booking service",
	Long:  `REST API for reserving shared chairs by date and time slot, with admin inventory and usage reports.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
		logger = utils.GetLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command. With no subcommand it serves.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, tokenCmd, seedCmd)
	rootCmd.Run = serveCmd.Run
}
