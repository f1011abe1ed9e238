package audio

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func TestESpeakSynthesizer_Pronounce(t *testing.T) {
	var wav bytes.Buffer
	if err := EncodeWAV(&wav, &Buffer{Channels: 1, SampleRate: 22050, Data: [][]float32{{0.5, -0.5}}}); err != nil {
		t.Fatalf("EncodeWAV() error: %v", err)
	}

	var gotArgs []string
	s := newESpeakSynthesizer(nil, func(ctx context.Context, args ...string) ([]byte, error) {
		gotArgs = args
		return wav.Bytes(), nil
	})

	buf, err := s.Pronounce(context.Background(), "rocket!")
	if err != nil {
		t.Fatalf("Pronounce() error: %v", err)
	}
	if buf.SampleRate != 22050 || buf.Frames() != 2 {
		t.Errorf("Unexpected buffer: %d Hz, %d frames", buf.SampleRate, buf.Frames())
	}

	if !slices.Contains(gotArgs, "--stdout") {
		t.Errorf("Expected --stdout in args %v", gotArgs)
	}
	if gotArgs[len(gotArgs)-1] != "rocket" {
		t.Errorf("Expected cleaned word as last argument, got %v", gotArgs)
	}
}

func TestESpeakSynthesizer_Errors(t *testing.T) {
	s := newESpeakSynthesizer(nil, func(ctx context.Context, args ...string) ([]byte, error) {
		return nil, errors.New("espeak-ng failed")
	})

	if _, err := s.Pronounce(context.Background(), ""); err == nil {
		t.Error("Expected error for empty word")
	}
	if _, err := s.Pronounce(context.Background(), "moon"); err == nil {
		t.Error("Expected error from failing command")
	}

	garbage := newESpeakSynthesizer(nil, func(ctx context.Context, args ...string) ([]byte, error) {
		return []byte("not a wav"), nil
	})
	_, err := garbage.Pronounce(context.Background(), "moon")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("Expected DecodeError, got %v", err)
	}
}

func TestESpeakSynthesizer_Clamping(t *testing.T) {
	config := &ESpeakConfig{Voice: "en-gb", Speed: 10, Pitch: 150, Amplitude: -5, WordGap: -1}
	s := newESpeakSynthesizer(config, nil)

	if config.Speed != 80 || config.Pitch != 99 || config.Amplitude != 0 || config.WordGap != 0 {
		t.Errorf("Unexpected clamped config: %+v", config)
	}

	s.SetWordGap(5)
	args := s.args("moon")
	if !slices.Contains(args, "-g") {
		t.Errorf("Expected word gap flag in %v", args)
	}
	if s.Name() != "espeak-ng" {
		t.Errorf("Name() = %q", s.Name())
	}
}

func TestNewESpeakSynthesizer_Installed(t *testing.T) {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		t.Skip("Skipping: espeak-ng not installed")
	}

	s, err := NewESpeakSynthesizer(DefaultESpeakConfig())
	if err != nil {
		t.Fatalf("NewESpeakSynthesizer() error: %v", err)
	}

	buf, err := s.Pronounce(context.Background(), "elephant")
	if err != nil {
		t.Fatalf("Pronounce() error: %v", err)
	}
	if buf.Frames() == 0 {
		t.Error("Expected audio frames")
	}
}
