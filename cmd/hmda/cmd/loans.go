package cmd

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(loansCmd)
}

var loansCmd = &cobra.Command{
	Use:   "loans",
	Short: "Prints individual loan level records for the given filters.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd.Context(), client.GetLoans)
	},
}
