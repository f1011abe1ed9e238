//go:build !portaudio

package audio

import (
	"errors"
	"testing"
)

func TestNewPortAudioPlayerStub(t *testing.T) {
	if _, err := NewPortAudioPlayer(); !errors.Is(err, ErrNoPlayer) {
		t.Errorf("Expected ErrNoPlayer, got %v", err)
	}
}
