package audio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func speechContentServer(t *testing.T, mimeType string, pcm []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		parts := []map[string]any{}
		if pcm != nil {
			// []byte is sent as base64, like the real API
			parts = append(parts, map[string]any{
				"inlineData": map[string]any{"mimeType": mimeType, "data": pcm},
			})
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{"role": "model", "parts": parts},
			}},
		})
	}))
}

func TestGeminiSynthesizer_Pronounce(t *testing.T) {
	server := speechContentServer(t, "audio/L16;codec=pcm;rate=24000", pcmBytes(16384, -16384, 0))
	defer server.Close()

	s, err := NewGeminiSynthesizer(context.Background(), &Config{GeminiKey: "test-key", GeminiBaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewGeminiSynthesizer() error: %v", err)
	}

	buf, err := s.Pronounce(context.Background(), "giraffe")
	if err != nil {
		t.Fatalf("Pronounce() error: %v", err)
	}
	if buf.SampleRate != 24000 || buf.Channels != 1 || buf.Frames() != 3 {
		t.Errorf("Unexpected buffer: %d Hz, %d channels, %d frames", buf.SampleRate, buf.Channels, buf.Frames())
	}
	if buf.Data[0][0] != 0.5 {
		t.Errorf("sample 0 = %v, want 0.5", buf.Data[0][0])
	}
}

func TestGeminiSynthesizer_NoAudio(t *testing.T) {
	server := speechContentServer(t, "", nil)
	defer server.Close()

	s, err := NewGeminiSynthesizer(context.Background(), &Config{GeminiKey: "test-key", GeminiBaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewGeminiSynthesizer() error: %v", err)
	}

	if got := Pronounce(context.Background(), s, "giraffe"); got != nil {
		t.Errorf("Expected no audio, got %v", got)
	}
}

func TestSampleRateFromMIME(t *testing.T) {
	tests := []struct {
		mime string
		want int
	}{
		{"audio/L16;codec=pcm;rate=24000", 24000},
		{"audio/L16;rate=16000", 16000},
		{"audio/L16", SampleRate},
		{"", SampleRate},
		{"audio/L16;rate=abc", SampleRate},
	}

	for _, tt := range tests {
		if got := sampleRateFromMIME(tt.mime); got != tt.want {
			t.Errorf("sampleRateFromMIME(%q) = %d, want %d", tt.mime, got, tt.want)
		}
	}
}

func TestGeminiSynthesizer_Integration(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: GEMINI_API_KEY not set")
	}

	s, err := NewGeminiSynthesizer(context.Background(), &Config{GeminiKey: apiKey})
	if err != nil {
		t.Fatalf("NewGeminiSynthesizer() error: %v", err)
	}

	buf, err := s.Pronounce(context.Background(), "butterfly")
	if err != nil {
		t.Fatalf("Pronounce() error: %v", err)
	}
	t.Logf("Got %v of audio", buf.Duration())
}
