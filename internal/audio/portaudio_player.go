//go:build portaudio

package audio

import (
	"context"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// PortAudioPlayer writes buffers straight to the default output device
type PortAudioPlayer struct {
	mu sync.Mutex // one stream at a time
}

// NewPortAudioPlayer initializes PortAudio. Call Close when done.
func NewPortAudioPlayer() (Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}
	return &PortAudioPlayer{}, nil
}

// Play implements Player
func (p *PortAudioPlayer) Play(ctx context.Context, buf *Buffer) error {
	if buf == nil || buf.Frames() == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	chunk := make([][]float32, buf.Channels)
	for c := range chunk {
		chunk[c] = make([]float32, FramesPerChunk)
	}

	stream, err := portaudio.OpenDefaultStream(0, buf.Channels, float64(buf.SampleRate), FramesPerChunk, chunk)
	if err != nil {
		return fmt.Errorf("failed to open output stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("failed to start output stream: %w", err)
	}
	defer stream.Stop()

	for offset := 0; offset < buf.Frames(); {
		if err := ctx.Err(); err != nil {
			return err
		}
		offset += FillChunk(chunk, buf, offset)
		if err := stream.Write(); err != nil {
			return fmt.Errorf("failed to write audio: %w", err)
		}
	}
	return nil
}

// Close releases PortAudio
func (p *PortAudioPlayer) Close() error {
	return portaudio.Terminate()
}
