package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Player plays a decoded buffer and blocks until playback ends
type Player interface {
	Play(ctx context.Context, buf *Buffer) error
}

// NopPlayer discards every buffer. Used with --no-audio.
type NopPlayer struct{}

// Play implements Player
func (NopPlayer) Play(ctx context.Context, buf *Buffer) error {
	return ctx.Err()
}

// SystemPlayer plays buffers through a platform audio command.
// Each utterance is written to a temporary WAV file first.
type SystemPlayer struct {
	TempDir string
	command func(file string) (*exec.Cmd, error)
}

// NewSystemPlayer creates a player backed by the first audio command found on the system
func NewSystemPlayer() *SystemPlayer {
	return &SystemPlayer{TempDir: os.TempDir(), command: playbackCommand}
}

// Play writes buf as WAV and runs the player command on it.
// Cancelling ctx kills the command.
func (p *SystemPlayer) Play(ctx context.Context, buf *Buffer) error {
	if buf == nil || buf.Frames() == 0 {
		return nil
	}

	f, err := os.CreateTemp(p.TempDir, "proplay-*.wav")
	if err != nil {
		return fmt.Errorf("failed to create temp audio file: %w", err)
	}
	file := f.Name()
	defer os.Remove(file)

	if err := EncodeWAV(f, buf); err != nil {
		f.Close()
		return fmt.Errorf("failed to write audio: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}

	cmd, err := p.command(file)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", filepath.Base(cmd.Path), err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("playback failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		<-done
		return ctx.Err()
	}
}

// ErrNoPlayer is returned when no supported audio command is installed
var ErrNoPlayer = errors.New("no audio player found. Install ffplay, sox, paplay, or aplay")

// playbackCommand picks a platform-specific command for a WAV file
func playbackCommand(file string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin": // macOS
		return exec.Command("afplay", file), nil
	case "linux":
		// Try multiple commands in order of preference
		if _, err := exec.LookPath("paplay"); err == nil {
			return exec.Command("paplay", file), nil
		} else if _, err := exec.LookPath("aplay"); err == nil {
			return exec.Command("aplay", "-q", file), nil
		} else if _, err := exec.LookPath("ffplay"); err == nil {
			return exec.Command("ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", file), nil
		} else if _, err := exec.LookPath("play"); err == nil {
			// SoX play command
			return exec.Command("play", "-q", file), nil
		}
		return nil, ErrNoPlayer
	case "windows":
		return exec.Command("powershell", "-c",
			fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", file)), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// PlayerAvailable reports whether a system audio command exists
func PlayerAvailable() error {
	_, err := playbackCommand(filepath.Join(os.TempDir(), "probe.wav"))
	return err
}
