package cli

import (
	"testing"

	"github.com/spf13/viper"

	"codeberg.org/snonux/proplay/internal/words"
)

func TestGameSelection(t *testing.T) {
	tests := []struct {
		name       string
		theme      string
		difficulty string
		wantTheme  words.Theme
		wantDiff   words.Difficulty
		wantErr    bool
	}{
		{"defaults", "", "", words.Animals, words.Easy, false},
		{"case insensitive", "SPACE", "Hard", words.Space, words.Hard, false},
		{"dashed theme", "everyday-objects", "medium", words.EverydayObjects, words.Medium, false},
		{"difficulty label", "food", "Word Master", words.Food, words.Hard, false},
		{"unknown theme", "dinosaurs", "easy", "", "", true},
		{"unknown difficulty", "food", "extreme", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			if tt.theme != "" {
				viper.Set("game.theme", tt.theme)
			}
			if tt.difficulty != "" {
				viper.Set("game.difficulty", tt.difficulty)
			}

			theme, difficulty, err := GameSelection()
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if theme != tt.wantTheme || difficulty != tt.wantDiff {
				t.Errorf("Expected %s/%s, got %s/%s", tt.wantTheme, tt.wantDiff, theme, difficulty)
			}
		})
	}
}

func TestGeneratorConfigProvider(t *testing.T) {
	tests := []struct {
		name     string
		gemini   string
		openai   string
		file     string
		explicit string
		expected string
	}{
		{"gemini key", "g", "", "", "", "gemini"},
		{"openai only", "", "o", "", "", "openai"},
		{"both keys", "g", "o", "", "", "gemini"},
		{"words file wins", "g", "o", "words.txt", "", "file"},
		{"explicit provider", "g", "o", "words.txt", "openai", "openai"},
		{"nothing configured", "", "", "", "", "gemini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			clearKeys(t)
			t.Setenv("GEMINI_API_KEY", tt.gemini)
			t.Setenv("OPENAI_API_KEY", tt.openai)
			if tt.file != "" {
				viper.Set("words.file", tt.file)
			}
			if tt.explicit != "" {
				viper.Set("words.provider", tt.explicit)
			}

			config := GeneratorConfig()
			if config.Provider != tt.expected {
				t.Errorf("Expected provider %s, got %s", tt.expected, config.Provider)
			}
			if config.GeminiKey != tt.gemini || config.OpenAIKey != tt.openai {
				t.Errorf("Expected keys to be passed through, got %q/%q", config.GeminiKey, config.OpenAIKey)
			}
		})
	}
}

func TestGeneratorConfigOverrides(t *testing.T) {
	resetViper(t)
	clearKeys(t)
	viper.Set("words.gemini_model", "gemini-custom")
	viper.Set("words.fallback", "openai")
	viper.Set("openai.base_url", "http://localhost:9999/v1")

	config := GeneratorConfig()
	if config.GeminiModel != "gemini-custom" {
		t.Errorf("Expected gemini-custom, got %s", config.GeminiModel)
	}
	if config.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("Expected default OpenAI model, got %s", config.OpenAIModel)
	}
	if config.Fallback != "openai" {
		t.Errorf("Expected fallback openai, got %s", config.Fallback)
	}
	if config.OpenAIBaseURL != "http://localhost:9999/v1" {
		t.Errorf("Expected base URL override, got %s", config.OpenAIBaseURL)
	}
}

func TestAudioConfig(t *testing.T) {
	t.Run("no audio", func(t *testing.T) {
		resetViper(t)
		t.Setenv("GEMINI_API_KEY", "g")
		if p := AudioConfig(true).Provider; p != "none" {
			t.Errorf("Expected none, got %s", p)
		}
	})

	t.Run("gemini preferred", func(t *testing.T) {
		resetViper(t)
		clearKeys(t)
		t.Setenv("GEMINI_API_KEY", "g")
		t.Setenv("OPENAI_API_KEY", "o")
		if p := AudioConfig(false).Provider; p != "gemini" {
			t.Errorf("Expected gemini, got %s", p)
		}
	})

	t.Run("openai key", func(t *testing.T) {
		resetViper(t)
		clearKeys(t)
		t.Setenv("OPENAI_API_KEY", "o")
		if p := AudioConfig(false).Provider; p != "openai" {
			t.Errorf("Expected openai, got %s", p)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		resetViper(t)
		clearKeys(t)
		viper.Set("audio.provider", "espeak")
		viper.Set("audio.espeak_voice", "en-gb")
		viper.Set("audio.espeak_speed", 180)
		viper.Set("audio.openai_voice", "nova")
		viper.Set("audio.openai_speed", 1.2)

		config := AudioConfig(false)
		if config.Provider != "espeak" {
			t.Errorf("Expected espeak, got %s", config.Provider)
		}
		if config.ESpeak.Voice != "en-gb" || config.ESpeak.Speed != 180 {
			t.Errorf("Expected espeak overrides, got %+v", config.ESpeak)
		}
		if config.OpenAIVoice != "nova" || config.OpenAISpeed != 1.2 {
			t.Errorf("Expected OpenAI overrides, got %s/%v", config.OpenAIVoice, config.OpenAISpeed)
		}
		if config.GeminiVoice != "Kore" {
			t.Errorf("Expected default Gemini voice, got %s", config.GeminiVoice)
		}
	})
}

func TestModelsConfig(t *testing.T) {
	resetViper(t)
	clearKeys(t)
	t.Setenv("GOOGLE_API_KEY", "g")
	viper.Set("openai.api_key", "o")

	config := ModelsConfig()
	if config.GeminiKey != "g" || config.OpenAIKey != "o" {
		t.Errorf("Expected keys g/o, got %s/%s", config.GeminiKey, config.OpenAIKey)
	}
}
