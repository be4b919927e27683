package media

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/shape-field/internal/config"
	"github.com/iburimskiy/shape-field/internal/page"
)

// ErrAutoplayBlocked is returned by Play when playback was not started by
// the user and autoplay is disabled.
var ErrAutoplayBlocked = errors.New("autoplay blocked until user interaction")

// Soundtrack is the ambient audio element shown in the showreel
// placeholder. It satisfies page.Media.
type Soundtrack struct {
	autoplay bool
	gesture  bool
	logger   *log.Logger
	onEvent  func(page.MediaEvent, error)

	path        string
	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *tap
	length      time.Duration

	initSpeaker func(beep.SampleRate, int) error
	speakerRate beep.SampleRate
	initDone    bool
	paused      bool
}

func NewSoundtrack(autoplay bool, logger *log.Logger) *Soundtrack {
	if logger == nil {
		logger = log.Default()
	}
	return &Soundtrack{autoplay: autoplay, logger: logger, initSpeaker: speaker.Init}
}

// OnEvent sets the lifecycle callback.
func (s *Soundtrack) OnEvent(fn func(page.MediaEvent, error)) {
	s.onEvent = fn
}

func (s *Soundtrack) emit(ev page.MediaEvent, err error) {
	if s.onEvent != nil {
		s.onEvent(ev, err)
	}
}

func (s *Soundtrack) Source() string {
	return s.path
}

// AllowPlayback records a user gesture, lifting the autoplay restriction.
func (s *Soundtrack) AllowPlayback() {
	s.gesture = true
}

// Load opens and decodes path. Success emits loaded then canplay; failure
// emits error and is also returned.
func (s *Soundtrack) Load(path string) error {
	s.stopCurrent()
	s.path = path

	f, err := os.Open(path)
	if err != nil {
		s.emit(page.MediaError, err)
		return err
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		_ = f.Close()
		err = fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		s.emit(page.MediaError, err)
		return err
	}

	s.currentFile = f
	s.streamer = streamer
	s.format = format
	s.tap = newTap(streamer, config.VisualRingSize)
	s.ctrl = &beep.Ctrl{Streamer: s.tap}
	s.length = format.SampleRate.D(streamer.Len())

	s.emit(page.MediaLoaded, nil)
	s.emit(page.MediaCanPlay, nil)
	return nil
}

func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, errors.New("unsupported file type: " + ext)
	}
}

// Play starts the loaded track.
func (s *Soundtrack) Play() error {
	if s.ctrl == nil {
		return errors.New("no media loaded")
	}
	if !s.autoplay && !s.gesture {
		return ErrAutoplayBlocked
	}

	rate := s.format.SampleRate
	if s.initDone {
		speaker.Clear()
	}
	if !s.initDone || s.speakerRate != rate {
		// Init closes the previous output context, if any.
		if err := s.initSpeaker(rate, rate.N(time.Second/20)); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		s.initDone = true
		s.speakerRate = rate
	}

	s.paused = false
	speaker.Play(beep.Seq(s.ctrl, beep.Callback(func() {
		s.logger.Printf("Media finished: %s", s.path)
	})))
	return nil
}

// SpeakerRate is the sample rate the speaker was last initialised with,
// 0 before the first Play.
func (s *Soundtrack) SpeakerRate() beep.SampleRate {
	return s.speakerRate
}

// TogglePause pauses or resumes playback.
func (s *Soundtrack) TogglePause() {
	if s.ctrl == nil || !s.initDone {
		return
	}
	speaker.Lock()
	s.paused = !s.paused
	s.ctrl.Paused = s.paused
	speaker.Unlock()
}

// Position returns how far playback has progressed.
func (s *Soundtrack) Position() time.Duration {
	if s.tap == nil {
		return 0
	}
	return s.format.SampleRate.D(s.tap.Frames())
}

// Length returns the decoded track length.
func (s *Soundtrack) Length() time.Duration {
	return s.length
}

// Level returns the recent output level in [0, 1].
func (s *Soundtrack) Level() float64 {
	if s.tap == nil {
		return 0
	}
	return s.tap.level(2048)
}

func (s *Soundtrack) stopCurrent() {
	if s.initDone {
		speaker.Clear()
	}
	if s.streamer != nil {
		_ = s.streamer.Close()
		s.streamer = nil
	}
	if s.currentFile != nil {
		_ = s.currentFile.Close()
		s.currentFile = nil
	}
	s.ctrl = nil
	s.tap = nil
	s.length = 0
}

// Close stops playback and releases the file.
func (s *Soundtrack) Close() {
	s.stopCurrent()
}

// Pick asks the user for a soundtrack file. A cancelled dialog returns an
// empty path and no error.
func Pick() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose a soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
