package audio

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestEncodeDecodeWAV(t *testing.T) {
	in := &Buffer{
		Channels:   2,
		SampleRate: 22050,
		Data: [][]float32{
			{0, 0.5, -0.5, 1},
			{-1, 0.25, 0, -0.25},
		},
	}

	var wav bytes.Buffer
	if err := EncodeWAV(&wav, in); err != nil {
		t.Fatalf("EncodeWAV() error: %v", err)
	}
	if wav.Len() != 44+4*2*2 {
		t.Errorf("WAV size = %d, want %d", wav.Len(), 44+4*2*2)
	}

	out, err := DecodeWAV(wav.Bytes())
	if err != nil {
		t.Fatalf("DecodeWAV() error: %v", err)
	}
	if out.Channels != 2 || out.SampleRate != 22050 || out.Frames() != 4 {
		t.Fatalf("Got %d channels, %d Hz, %d frames", out.Channels, out.SampleRate, out.Frames())
	}
	for ch := range in.Data {
		for i, want := range in.Data[ch] {
			if want == 1 {
				// clipped to the largest positive sample
				want = 32767.0 / 32768.0
			}
			if out.Data[ch][i] != want {
				t.Errorf("channel %d sample %d = %v, want %v", ch, i, out.Data[ch][i], want)
			}
		}
	}
}

func TestDecodeWAV_StreamedSize(t *testing.T) {
	var wav bytes.Buffer
	if err := EncodeWAV(&wav, &Buffer{Channels: 1, SampleRate: 22050, Data: [][]float32{{0.5, 0.5, 0.5}}}); err != nil {
		t.Fatalf("EncodeWAV() error: %v", err)
	}

	// espeak-ng writing to a pipe leaves the data size unset
	data := wav.Bytes()
	binary.LittleEndian.PutUint32(data[40:], 0)

	buf, err := DecodeWAV(data)
	if err != nil {
		t.Fatalf("DecodeWAV() error: %v", err)
	}
	if buf.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", buf.Frames())
	}
}

func TestDecodeWAV_SkipsUnknownChunks(t *testing.T) {
	var wav bytes.Buffer
	if err := EncodeWAV(&wav, &Buffer{Channels: 1, SampleRate: 16000, Data: [][]float32{{0.25}}}); err != nil {
		t.Fatalf("EncodeWAV() error: %v", err)
	}
	data := wav.Bytes()

	// splice an odd-sized LIST chunk between fmt and data
	var spliced bytes.Buffer
	spliced.Write(data[:36])
	spliced.WriteString("LIST")
	binary.Write(&spliced, binary.LittleEndian, uint32(3))
	spliced.Write([]byte{'a', 'b', 'c', 0})
	spliced.Write(data[36:])

	buf, err := DecodeWAV(spliced.Bytes())
	if err != nil {
		t.Fatalf("DecodeWAV() error: %v", err)
	}
	if buf.Frames() != 1 || buf.Data[0][0] != 0.25 {
		t.Errorf("Unexpected buffer: %v", buf.Data)
	}
}

func TestDecodeWAV_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not riff", []byte("RIFX\x00\x00\x00\x00WAVE")},
		{"no data chunk", []byte("RIFF\x04\x00\x00\x00WAVE")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeWAV(tt.data); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestEncodeWAV_NoAudio(t *testing.T) {
	var wav bytes.Buffer
	if err := EncodeWAV(&wav, nil); err == nil {
		t.Error("Expected error for nil buffer")
	}
}
