// cmd/podbench/summarize.go
package podbench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gkoukis/podbench/metrics"
)

// errNoData is returned when a readable file yields zero usable samples.
// The wording is part of the command's output contract.
var errNoData = errors.New("No valid data found in file.")

// summarizeCmd implements 'summarize', which parses a benchmark metrics
// file and prints mean, sample standard deviation, min and max over the
// batch readiness times it contains.
var summarizeCmd = &cobra.Command{
	Use:   "summarize <metrics_file.txt>",
	Short: "Compute summary statistics from a pod benchmark log",
	Long:  `The 'summarize' command reads a comma-separated benchmark metrics file, extracts the batch readiness time from each data row, and prints the mean, sample standard deviation, minimum and maximum in milliseconds.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		values, err := metrics.ReadBatchTimes(args[0])
		if err != nil {
			return err
		}
		if len(values) == 0 {
			return errNoData
		}
		s := metrics.Summarize(values)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "----- Results -----")
		fmt.Fprintf(out, "Values: %s\n", formatValues(values))
		fmt.Fprintf(out, "Mean: %.2f ms\n", s.Mean)
		fmt.Fprintf(out, "Std Dev: %.2f ms\n", s.StdDev)
		fmt.Fprintf(out, "Min: %.2f ms\n", s.Min)
		fmt.Fprintf(out, "Max: %.2f ms\n", s.Max)
		return nil
	},
}

// formatValues renders the parsed sample list as "[v1, v2, ...]".
func formatValues(values []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteByte(']')
	return b.String()
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}
