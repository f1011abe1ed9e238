package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// EncodeWAV writes the buffer as a 16-bit PCM RIFF/WAVE stream
func EncodeWAV(w io.Writer, buf *Buffer) error {
	if buf == nil || buf.Channels < 1 {
		return fmt.Errorf("no audio to encode")
	}

	frames := buf.Frames()
	dataSize := frames * buf.Channels * BytesPerSample
	byteRate := buf.SampleRate * buf.Channels * BytesPerSample

	var header bytes.Buffer
	header.WriteString("RIFF")
	binary.Write(&header, binary.LittleEndian, uint32(36+dataSize))
	header.WriteString("WAVE")
	header.WriteString("fmt ")
	binary.Write(&header, binary.LittleEndian, uint32(16))
	binary.Write(&header, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&header, binary.LittleEndian, uint16(buf.Channels))
	binary.Write(&header, binary.LittleEndian, uint32(buf.SampleRate))
	binary.Write(&header, binary.LittleEndian, uint32(byteRate))
	binary.Write(&header, binary.LittleEndian, uint16(buf.Channels*BytesPerSample))
	binary.Write(&header, binary.LittleEndian, uint16(BitDepth))
	header.WriteString("data")
	binary.Write(&header, binary.LittleEndian, uint32(dataSize))

	if _, err := w.Write(header.Bytes()); err != nil {
		return fmt.Errorf("failed to write WAV header: %w", err)
	}

	data := make([]byte, dataSize)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < buf.Channels; ch++ {
			off := (i*buf.Channels + ch) * BytesPerSample
			binary.LittleEndian.PutUint16(data[off:], uint16(toInt16(buf.Data[ch][i])))
		}
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	return nil
}

func toInt16(sample float32) int16 {
	v := math.Round(float64(sample) * 32768.0)
	if v > math.MaxInt16 {
		v = math.MaxInt16
	} else if v < math.MinInt16 {
		v = math.MinInt16
	}
	return int16(v)
}

// DecodeWAV reads a 16-bit PCM WAV stream, such as espeak-ng output, into a
// Buffer. Chunks other than "fmt " and "data" are skipped.
func DecodeWAV(data []byte) (*Buffer, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, &DecodeError{Reason: "not a RIFF/WAVE stream"}
	}

	var (
		channels   int
		sampleRate int
		bits       int
		haveFormat bool
	)

	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		end := body + size
		if id == "data" && (size == 0 || end > len(data)) {
			// streamed output leaves the size unset
			end = len(data)
		}
		if end > len(data) || end < body {
			return nil, &DecodeError{Reason: fmt.Sprintf("truncated %q chunk", id)}
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, &DecodeError{Reason: "short fmt chunk"}
			}
			if format := binary.LittleEndian.Uint16(data[body:]); format != 1 {
				return nil, &DecodeError{Reason: fmt.Sprintf("unsupported WAV format %d", format)}
			}
			channels = int(binary.LittleEndian.Uint16(data[body+2:]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4:]))
			bits = int(binary.LittleEndian.Uint16(data[body+14:]))
			haveFormat = true

		case "data":
			if !haveFormat {
				return nil, &DecodeError{Reason: "data chunk before fmt chunk"}
			}
			if bits != BitDepth {
				return nil, &DecodeError{Reason: fmt.Sprintf("unsupported bit depth %d", bits)}
			}
			pcm := data[body:end]
			if len(pcm)%BytesPerSample != 0 {
				pcm = pcm[:len(pcm)-1]
			}
			return DecodePCM(pcm, sampleRate, channels)
		}

		pos = end + size%2 // chunks are word aligned
	}

	return nil, &DecodeError{Reason: "no data chunk"}
}
