package cmd

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(institutionsCmd)
}

var institutionsCmd = &cobra.Command{
	Use:   "institutions",
	Short: "Prints the institutions that filed HMDA data matching the filters.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd.Context(), client.GetInstitutions)
	},
}
