package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/shape-field/internal/scene"
	"github.com/iburimskiy/shape-field/internal/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Animate the field in the terminal",
	RunE:  runTerm,
}

func init() {
	rootCmd.AddCommand(termCmd)
}

func runTerm(cmd *cobra.Command, args []string) error {
	s, err := settings(cmd)
	if err != nil {
		return err
	}
	// The terminal owns the screen; log lines would tear it.
	logger := log.New(io.Discard, "", 0)
	sc := scene.New(s, logger)
	defer sc.Close()
	return term.Run(sc, logger)
}
