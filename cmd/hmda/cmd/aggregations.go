package cmd

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(aggregationsCmd)
}

var aggregationsCmd = &cobra.Command{
	Use:   "aggregations",
	Short: "Prints aggregate loan statistics for the given filters.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd.Context(), client.GetAggregations)
	},
}
