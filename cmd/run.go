package cmd

import "github.com/spf13/cobra"

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the animated field in a window",
	RunE:  runWindow,
}

func init() {
	rootCmd.AddCommand(runCmd)
}
