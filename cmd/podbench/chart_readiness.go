// cmd/podbench/chart_readiness.go
package podbench

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gkoukis/podbench/charts"
)

// Declare variables to store the flag values.
// This is not strictly necessary if you only access via viper,
// but it's common practice with StringVar.
var (
	readinessData string
	readinessOut  string
)

// chartReadinessCmd represents the 'chart readiness' command.
var chartReadinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Render pod readiness bar charts",
	Long:  `The 'readiness' subcommand renders one grouped bar chart per pod count comparing K8s and CODECO pod readiness times per use case, with min/max error bars and standard deviation annotations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return renderCharts(cmd, charts.Readiness,
			viper.GetString("readiness-data"), viper.GetString("readiness-out"))
	},
}

func init() {
	// 1. Add the command to the chart group
	chartCmd.AddCommand(chartReadinessCmd)

	// 2. Define the flags
	chartReadinessCmd.Flags().StringVarP(&readinessData, "data", "d", "data/readiness.json", "dataset JSON file")
	chartReadinessCmd.Flags().StringVarP(&readinessOut, "out", "o", "pod_readiness_all_in_one_stdiv", "output directory for the PNGs")

	// 3. Bind the Cobra flags to Viper
	viper.BindPFlag("readiness-data", chartReadinessCmd.Flags().Lookup("data"))
	viper.BindPFlag("readiness-out", chartReadinessCmd.Flags().Lookup("out"))
}
