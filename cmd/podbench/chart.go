// cmd/podbench/chart.go
package podbench

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/gkoukis/podbench/charts"
)

// chartCmd represents the 'chart' command group and acts as a namespace
// for subcommands that render platform-comparison charts.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Group commands for rendering comparison charts",
	Long:  `The 'chart' command groups related subcommands that render grouped bar charts from a summary dataset. It performs no action on its own.`,
}

// debugDataset pretty-prints the loaded dataset before rendering.
var debugDataset bool

// renderCharts loads a dataset file and renders one chart per pod count,
// printing each written path.
func renderCharts(cmd *cobra.Command, c charts.Chart, dataPath, outDir string) error {
	ds, err := charts.LoadDataset(dataPath)
	if err != nil {
		return err
	}
	if debugDataset {
		pp.Println(ds)
	}

	paths, err := charts.Render(ds, c, outDir)
	if err != nil {
		return err
	}

	savedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	out := cmd.OutOrStdout()
	for _, p := range paths {
		fmt.Fprintln(out, savedStyle.Render(fmt.Sprintf("Saved: %s", p)))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.PersistentFlags().BoolVar(&debugDataset, "debug", false, "pretty-print the loaded dataset before rendering")
}
