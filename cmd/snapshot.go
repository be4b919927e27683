package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/shape-field/internal/scene"
	"github.com/iburimskiy/shape-field/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write the field as an SVG image after a stretch of virtual time",
	RunE:  runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().StringP("out", "o", "-", "output file, - for stdout")
	snapshotCmd.Flags().Duration("after", 5*time.Second, "virtual time to advance before the snapshot")
}

func snapshotFlags(cmd *cobra.Command) (string, time.Duration, error) {
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return "", 0, err
	}
	after, err := cmd.Flags().GetDuration("after")
	if err != nil {
		return "", 0, err
	}
	return out, after, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	s, err := settings(cmd)
	if err != nil {
		return err
	}
	out, after, err := snapshotFlags(cmd)
	if err != nil {
		return err
	}
	if after < 0 {
		return fmt.Errorf("--after must not be negative, got %v", after)
	}

	s.Media = ""
	sc := scene.New(s, log.New(io.Discard, "", 0))
	defer sc.Close()
	sc.Start()
	sc.Advance(after)

	var w io.Writer = cmd.OutOrStdout()
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	snapshot.Write(bw, sc)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if out != "-" {
		log.Printf("Wrote %s: %d shapes at %v", out, sc.Field.Live(), after)
	}
	return nil
}
