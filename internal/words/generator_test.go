package words

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockGenerator implements Generator for testing
type mockGenerator struct {
	name         string
	result       []SpellingWord
	requestErr   error
	availableErr error
	calls        int
}

func (m *mockGenerator) RequestWords(ctx context.Context, theme Theme, difficulty Difficulty) ([]SpellingWord, error) {
	m.calls++
	return m.result, m.requestErr
}

func (m *mockGenerator) Name() string {
	return m.name
}

func (m *mockGenerator) IsAvailable() error {
	return m.availableErr
}

func TestDefaultGeneratorConfig(t *testing.T) {
	config := DefaultGeneratorConfig()

	if config.Provider != "gemini" {
		t.Errorf("Expected provider 'gemini', got '%s'", config.Provider)
	}
	if config.GeminiModel != "gemini-3-flash-preview" {
		t.Errorf("Expected Gemini model 'gemini-3-flash-preview', got '%s'", config.GeminiModel)
	}
	if config.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("Expected OpenAI model 'gpt-4o-mini', got '%s'", config.OpenAIModel)
	}
}

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantErr  bool
		errMsg   string
		wantName string
	}{
		{
			name:    "nil config uses defaults",
			config:  nil,
			wantErr: true,
			errMsg:  "Gemini API key is required",
		},
		{
			name:    "openai without key",
			config:  &Config{Provider: "openai"},
			wantErr: true,
			errMsg:  "OpenAI API key is required",
		},
		{
			name:    "file without path",
			config:  &Config{Provider: "file"},
			wantErr: true,
			errMsg:  "words file is required for the file provider",
		},
		{
			name:    "unknown provider",
			config:  &Config{Provider: "unknown"},
			wantErr: true,
			errMsg:  "unknown word provider: unknown",
		},
		{
			name:     "openai with key",
			config:   &Config{Provider: "openai", OpenAIKey: "test-key"},
			wantName: "openai",
		},
		{
			name:     "file provider",
			config:   &Config{Provider: "file", WordsFile: "words.txt"},
			wantName: "file",
		},
		{
			name:     "file with openai fallback",
			config:   &Config{Provider: "file", WordsFile: "words.txt", Fallback: "openai", OpenAIKey: "test-key"},
			wantName: "file (fallback: openai)",
		},
		{
			name:     "unusable fallback is skipped",
			config:   &Config{Provider: "file", WordsFile: "words.txt", Fallback: "openai"},
			wantName: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator(context.Background(), tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewGenerator() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if err.Error() != tt.errMsg {
					t.Errorf("NewGenerator() error = %v, want %v", err.Error(), tt.errMsg)
				}
				return
			}
			if gen.Name() != tt.wantName {
				t.Errorf("Name() = %v, want %v", gen.Name(), tt.wantName)
			}
		})
	}
}

func TestGeneratorWithFallback(t *testing.T) {
	words := []SpellingWord{{Word: "moon", Definition: "d", Hint: "h", Category: "Space"}}
	primary := &mockGenerator{name: "primary", result: words}
	fallback := &mockGenerator{name: "fallback", result: words}

	gen := NewGeneratorWithFallback(primary, fallback)
	ctx := context.Background()

	// Successful primary
	got, err := gen.RequestWords(ctx, Space, Easy)
	if err != nil || len(got) != 1 {
		t.Fatalf("RequestWords() = %v, %v", got, err)
	}
	if primary.calls != 1 || fallback.calls != 0 {
		t.Errorf("Expected 1 primary and 0 fallback calls, got %d and %d", primary.calls, fallback.calls)
	}

	// Primary fails
	primary.requestErr = errors.New("primary failed")
	primary.calls = 0
	if _, err := gen.RequestWords(ctx, Space, Easy); err != nil {
		t.Errorf("RequestWords() unexpected error: %v", err)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Errorf("Expected 1 primary and 1 fallback call, got %d and %d", primary.calls, fallback.calls)
	}

	// Primary comes back empty
	primary.requestErr = nil
	primary.result = nil
	fallback.calls = 0
	got, err = gen.RequestWords(ctx, Space, Easy)
	if err != nil || len(got) != 1 || fallback.calls != 1 {
		t.Errorf("Expected fallback words after empty primary, got %v, %v (fallback calls %d)", got, err, fallback.calls)
	}

	// Both fail
	primary.requestErr = errors.New("primary failed")
	fallback.requestErr = errors.New("fallback failed")
	if _, err := gen.RequestWords(ctx, Space, Easy); err == nil {
		t.Error("RequestWords() expected error when both generators fail")
	}
}

func TestGeneratorWithFallbackIsAvailable(t *testing.T) {
	primary := &mockGenerator{name: "primary"}
	fallback := &mockGenerator{name: "fallback"}
	gen := NewGeneratorWithFallback(primary, fallback)

	if err := gen.IsAvailable(); err != nil {
		t.Errorf("IsAvailable() unexpected error: %v", err)
	}

	primary.availableErr = errors.New("primary unavailable")
	if err := gen.IsAvailable(); err != nil {
		t.Errorf("IsAvailable() unexpected error when fallback available: %v", err)
	}

	fallback.availableErr = errors.New("fallback unavailable")
	if err := gen.IsAvailable(); err == nil {
		t.Error("IsAvailable() expected error when both generators unavailable")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(EverydayObjects, Hard)

	for _, want := range []string{"5 spelling words", "Theme: Everyday Objects", "Difficulty: hard", "definition", "hint"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestErrorTypes(t *testing.T) {
	genErr := &GenerationError{Theme: Food, Difficulty: Medium, Reason: "empty list"}
	if !IsGenerationError(genErr) {
		t.Error("Expected GenerationError to be detected")
	}
	if !strings.Contains(genErr.Error(), "Food") {
		t.Errorf("Unexpected message: %s", genErr.Error())
	}

	cause := errors.New("connection refused")
	transportErr := &TransportError{Provider: "gemini", Err: cause}
	if IsGenerationError(transportErr) {
		t.Error("TransportError must not be classified as GenerationError")
	}
	if !errors.Is(transportErr, cause) {
		t.Error("TransportError should unwrap to its cause")
	}
}
