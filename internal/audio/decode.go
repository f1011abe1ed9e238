package audio

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"time"
)

// Format of the PCM payload returned by the speech services
const (
	SampleRate     = 24000 // Hz
	Channels       = 1     // mono
	BitDepth       = 16
	BytesPerSample = BitDepth / 8
)

// Buffer is decoded audio: one slice of samples in [-1, 1] per channel
type Buffer struct {
	Channels   int
	SampleRate int
	Data       [][]float32
}

// Frames returns the number of samples per channel
func (b *Buffer) Frames() int {
	if b == nil || len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration returns the playback length
func (b *Buffer) Duration() time.Duration {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

// DecodeError reports an audio payload that cannot be decoded
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode audio: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode audio: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode converts a base64 payload of 16-bit little-endian mono PCM at
// 24 kHz into a Buffer. It is the entry point for audio that arrives as a
// base64 string, such as raw inlineData JSON; the SDK providers already hand
// back bytes and call DecodePCM.
func Decode(payload string) (*Buffer, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &DecodeError{Reason: "invalid base64", Err: err}
	}
	return DecodePCM(raw, SampleRate, Channels)
}

// DecodePCM converts interleaved 16-bit little-endian PCM into a Buffer.
// A trailing partial frame is dropped.
func DecodePCM(raw []byte, sampleRate, channels int) (*Buffer, error) {
	if channels < 1 {
		return nil, &DecodeError{Reason: fmt.Sprintf("invalid channel count %d", channels)}
	}
	if sampleRate < 1 {
		return nil, &DecodeError{Reason: fmt.Sprintf("invalid sample rate %d", sampleRate)}
	}
	if len(raw)%BytesPerSample != 0 {
		return nil, &DecodeError{Reason: fmt.Sprintf("odd byte count %d for 16-bit samples", len(raw))}
	}

	samples := len(raw) / BytesPerSample
	frames := samples / channels

	buf := &Buffer{
		Channels:   channels,
		SampleRate: sampleRate,
		Data:       make([][]float32, channels),
	}
	for ch := 0; ch < channels; ch++ {
		data := make([]float32, frames)
		for i := 0; i < frames; i++ {
			off := (i*channels + ch) * BytesPerSample
			sample := int16(binary.LittleEndian.Uint16(raw[off:]))
			data[i] = float32(sample) / 32768.0
		}
		buf.Data[ch] = data
	}

	return buf, nil
}
