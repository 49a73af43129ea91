// cmd/podbench/root.go
package podbench

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base Cobra command for the podbench application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:           "podbench",
	Short:         "Analyze and chart pod readiness/deletion benchmarks",
	Long:          `podbench computes summary statistics from pod benchmark log files and renders grouped bar charts comparing orchestration platforms across use cases and pod-count scales.`,
	SilenceErrors: true,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
}
