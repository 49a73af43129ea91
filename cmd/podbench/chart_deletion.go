// cmd/podbench/chart_deletion.go
package podbench

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gkoukis/podbench/charts"
)

var (
	deletionData string
	deletionOut  string
)

// chartDeletionCmd represents the 'chart deletion' command.
var chartDeletionCmd = &cobra.Command{
	Use:   "deletion",
	Short: "Render pod deletion bar charts",
	Long:  `The 'deletion' subcommand renders one grouped bar chart per pod count comparing K8s and CODECO pod deletion times per use case, with min/max error bars and standard deviation annotations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return renderCharts(cmd, charts.Deletion,
			viper.GetString("deletion-data"), viper.GetString("deletion-out"))
	},
}

func init() {
	chartCmd.AddCommand(chartDeletionCmd)

	chartDeletionCmd.Flags().StringVarP(&deletionData, "data", "d", "data/deletion.json", "dataset JSON file")
	chartDeletionCmd.Flags().StringVarP(&deletionOut, "out", "o", "pod_deletion_all_in_one_stdiv", "output directory for the PNGs")

	viper.BindPFlag("deletion-data", chartDeletionCmd.Flags().Lookup("data"))
	viper.BindPFlag("deletion-out", chartDeletionCmd.Flags().Lookup("out"))
}
