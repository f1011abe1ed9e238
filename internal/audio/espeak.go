package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// ESpeakConfig holds configuration for espeak-ng speech
type ESpeakConfig struct {
	Voice     string // Voice variant (e.g., "en-us", "en-us+f3", "en-gb")
	Speed     int    // Speech speed in words per minute (default: 140)
	Pitch     int    // Pitch adjustment, 0 to 99 (default: 50)
	Amplitude int    // Volume/amplitude, 0 to 200 (default: 100)
	WordGap   int    // Gap between words in 10ms units (default: 0)
}

// DefaultESpeakConfig returns the default configuration for an English voice
func DefaultESpeakConfig() *ESpeakConfig {
	return &ESpeakConfig{
		Voice:     "en-us",
		Speed:     140,
		Pitch:     50,
		Amplitude: 100,
		WordGap:   0,
	}
}

// ESpeakSynthesizer implements Synthesizer with the local espeak-ng engine.
// It works offline and needs no API key.
type ESpeakSynthesizer struct {
	config *ESpeakConfig
	run    func(ctx context.Context, args ...string) ([]byte, error)
}

// NewESpeakSynthesizer creates a new espeak-ng provider
func NewESpeakSynthesizer(config *ESpeakConfig) (Synthesizer, error) {
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}
	return newESpeakSynthesizer(config, runESpeak), nil
}

func newESpeakSynthesizer(config *ESpeakConfig, run func(ctx context.Context, args ...string) ([]byte, error)) *ESpeakSynthesizer {
	if config == nil {
		config = DefaultESpeakConfig()
	}
	s := &ESpeakSynthesizer{config: config, run: run}
	s.SetSpeed(config.Speed)
	s.SetPitch(config.Pitch)
	s.SetAmplitude(config.Amplitude)
	s.SetWordGap(config.WordGap)
	return s
}

// Pronounce speaks the word with espeak-ng and decodes its WAV output
func (s *ESpeakSynthesizer) Pronounce(ctx context.Context, word string) (*Buffer, error) {
	if err := ValidateWord(word); err != nil {
		return nil, err
	}

	wav, err := s.run(ctx, s.args(PrepareText(word))...)
	if err != nil {
		return nil, err
	}
	return DecodeWAV(wav)
}

func (s *ESpeakSynthesizer) args(text string) []string {
	args := []string{
		"-v", s.config.Voice, // Voice selection
		"-s", fmt.Sprintf("%d", s.config.Speed), // Speed
		"-p", fmt.Sprintf("%d", s.config.Pitch), // Pitch
		"-a", fmt.Sprintf("%d", s.config.Amplitude), // Amplitude/volume
	}

	if s.config.WordGap > 0 {
		args = append(args, "-g", fmt.Sprintf("%d", s.config.WordGap))
	}

	// WAV on stdout, no file needed
	return append(args, "--stdout", text)
}

func runESpeak(ctx context.Context, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "espeak-ng", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// SetSpeed updates the speech speed
func (s *ESpeakSynthesizer) SetSpeed(speed int) {
	if speed < 80 {
		speed = 80
	} else if speed > 450 {
		speed = 450
	}
	s.config.Speed = speed
}

// SetPitch updates the pitch (0-99, 50 is default)
func (s *ESpeakSynthesizer) SetPitch(pitch int) {
	if pitch < 0 {
		pitch = 0
	} else if pitch > 99 {
		pitch = 99
	}
	s.config.Pitch = pitch
}

// SetAmplitude updates the volume/amplitude (0-200, 100 is default)
func (s *ESpeakSynthesizer) SetAmplitude(amplitude int) {
	if amplitude < 0 {
		amplitude = 0
	} else if amplitude > 200 {
		amplitude = 200
	}
	s.config.Amplitude = amplitude
}

// SetWordGap updates the gap between words in 10ms units
func (s *ESpeakSynthesizer) SetWordGap(gap int) {
	if gap < 0 {
		gap = 0
	}
	s.config.WordGap = gap
}

// Name returns the provider name
func (s *ESpeakSynthesizer) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (s *ESpeakSynthesizer) IsAvailable() error {
	return checkESpeakInstalled()
}

// checkESpeakInstalled verifies that espeak-ng is available on the system
func checkESpeakInstalled() error {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}

// ESpeakAvailable reports whether espeak-ng can be used
func ESpeakAvailable() bool {
	return checkESpeakInstalled() == nil
}

// ListVoices returns commonly installed English voice variants
func ListVoices() []string {
	return []string{
		"en-us",    // American English
		"en-us+m3", // American English, male variant
		"en-us+f3", // American English, female variant
		"en-gb",    // British English
		"en-gb+f2", // British English, female variant
	}
}
