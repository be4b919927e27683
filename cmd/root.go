package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iburimskiy/shape-field/internal/config"
	"github.com/iburimskiy/shape-field/internal/game"
	"github.com/iburimskiy/shape-field/internal/scene"
)

var rootCmd = &cobra.Command{
	Use:   "shapefield",
	Short: "Floating glowing shapes behind a small personal page",
	Long: `shapefield animates a field of drifting, glowing shapes and rising
particles behind a scrollable page with a hamburger menu.

Settings come from flags, then SHAPEFIELD_* environment variables (an
optional .env file is loaded first), then the revision defaults.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	addSettingsFlags(rootCmd.PersistentFlags())
}

func addSettingsFlags(f *pflag.FlagSet) {
	f.String("env", ".env", "environment file to load before reading SHAPEFIELD_* variables")
	f.Int("revision", config.DefaultRevision, "tuning revision (1-3)")
	f.Int64("seed", 0, "random seed, 0 for time based")
	f.Int("width", config.WindowWidth, "viewport width in pixels")
	f.Int("height", config.WindowHeight, "viewport height in pixels")
	f.String("media", "", "soundtrack for the showreel placeholder (wav, mp3, flac)")
	f.Bool("autoplay", true, "try to start the soundtrack without a user gesture")
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}

// settings layers explicitly set flags over the environment and defaults.
func settings(cmd *cobra.Command) (config.Settings, error) {
	f := cmd.Flags()
	envFile, err := f.GetString("env")
	if err != nil {
		return config.Settings{}, err
	}
	s, err := config.Load(envFile)
	if err != nil {
		return config.Settings{}, err
	}
	if err := applyFlags(f, &s); err != nil {
		return config.Settings{}, err
	}
	if err := s.Resolve(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

func applyFlags(f *pflag.FlagSet, s *config.Settings) error {
	var err error
	if f.Changed("revision") {
		if s.Revision, err = f.GetInt("revision"); err != nil {
			return err
		}
	}
	if f.Changed("seed") {
		if s.Seed, err = f.GetInt64("seed"); err != nil {
			return err
		}
	}
	if f.Changed("width") {
		if s.Width, err = f.GetInt("width"); err != nil {
			return err
		}
	}
	if f.Changed("height") {
		if s.Height, err = f.GetInt("height"); err != nil {
			return err
		}
	}
	if f.Changed("media") {
		if s.Media, err = f.GetString("media"); err != nil {
			return err
		}
	}
	if f.Changed("autoplay") {
		if s.Autoplay, err = f.GetBool("autoplay"); err != nil {
			return err
		}
	}
	return nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := settings(cmd)
	if err != nil {
		return err
	}
	sc := scene.New(s, log.Default())
	defer sc.Close()
	return game.Run(sc, log.Default())
}
