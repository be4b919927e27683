package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings is the resolved run configuration.
type Settings struct {
	Revision int
	Seed     int64 // 0 means time based
	Width    int
	Height   int
	Media    string // soundtrack path, empty for none
	Autoplay bool

	Profile
}

// Defaults returns the settings of the latest revision with no overrides.
func Defaults() Settings {
	p, _ := Revision(DefaultRevision)
	return Settings{
		Revision: DefaultRevision,
		Width:    WindowWidth,
		Height:   WindowHeight,
		Autoplay: true,
		Profile:  p,
	}
}

// Load resolves settings from defaults, the optional env file and the
// process environment, in that order. A missing env file is not an error.
func Load(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Settings{}, fmt.Errorf("load %s: %w", envFile, err)
			}
		} else {
			log.Printf("Loaded environment from %s", envFile)
		}
	}

	s := Defaults()
	if v, ok := lookupEnv("REVISION"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%sREVISION: %w", EnvPrefix, err)
		}
		s.Revision = n
	}
	if v, ok := lookupEnv("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		s.Seed = n
	}
	if v, ok := lookupEnv("MEDIA"); ok {
		s.Media = v
	}
	if v, ok := lookupEnv("AUTOPLAY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%sAUTOPLAY: %w", EnvPrefix, err)
		}
		s.Autoplay = b
	}
	if err := s.Resolve(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Resolve reloads the tuning profile for s.Revision and validates sizes.
// Call it after changing Revision.
func (s *Settings) Resolve() error {
	p, err := Revision(s.Revision)
	if err != nil {
		return err
	}
	s.Profile = p
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", s.Width, s.Height)
	}
	return nil
}

func lookupEnv(name string) (string, bool) {
	v := os.Getenv(EnvPrefix + name)
	if v == "" {
		return "", false
	}
	return v, true
}
