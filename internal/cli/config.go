package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"codeberg.org/snonux/proplay/internal/audio"
	"codeberg.org/snonux/proplay/internal/models"
	"codeberg.org/snonux/proplay/internal/words"
)

// GameSelection returns the configured theme and difficulty
func GameSelection() (words.Theme, words.Difficulty, error) {
	theme, difficulty := words.Animals, words.Easy

	if s := viper.GetString("game.theme"); s != "" {
		t, err := words.ParseTheme(s)
		if err != nil {
			return "", "", err
		}
		theme = t
	}
	if s := viper.GetString("game.difficulty"); s != "" {
		d, err := words.ParseDifficulty(s)
		if err != nil {
			return "", "", err
		}
		difficulty = d
	}
	return theme, difficulty, nil
}

// GeneratorConfig builds the word generator configuration. Without an
// explicit provider a words file wins, then Gemini, then OpenAI.
func GeneratorConfig() *words.Config {
	config := words.DefaultGeneratorConfig()
	config.GeminiKey = GetGeminiKey()
	config.GeminiBaseURL = viper.GetString("gemini.base_url")
	config.OpenAIKey = GetOpenAIKey()
	config.OpenAIBaseURL = viper.GetString("openai.base_url")
	config.WordsFile = viper.GetString("words.file")
	config.Fallback = viper.GetString("words.fallback")

	if model := viper.GetString("words.gemini_model"); model != "" {
		config.GeminiModel = model
	}
	if model := viper.GetString("words.openai_model"); model != "" {
		config.OpenAIModel = model
	}

	switch provider := viper.GetString("words.provider"); {
	case provider != "":
		config.Provider = provider
	case config.WordsFile != "":
		config.Provider = "file"
	case config.GeminiKey == "" && config.OpenAIKey != "":
		config.Provider = "openai"
	default:
		config.Provider = "gemini"
	}
	return config
}

// AudioConfig builds the pronunciation configuration. Without an explicit
// provider Gemini is preferred, then OpenAI, then a local espeak-ng.
func AudioConfig(noAudio bool) *audio.Config {
	config := audio.DefaultProviderConfig()
	if noAudio {
		config.Provider = "none"
		return config
	}

	config.GeminiKey = GetGeminiKey()
	config.GeminiBaseURL = viper.GetString("gemini.base_url")
	config.OpenAIKey = GetOpenAIKey()
	config.OpenAIBaseURL = viper.GetString("openai.base_url")
	config.Fallback = viper.GetString("audio.fallback")

	if v := viper.GetString("audio.gemini_model"); v != "" {
		config.GeminiModel = v
	}
	if v := viper.GetString("audio.gemini_voice"); v != "" {
		config.GeminiVoice = v
	}
	if v := viper.GetString("audio.openai_model"); v != "" {
		config.OpenAIModel = v
	}
	if v := viper.GetString("audio.openai_voice"); v != "" {
		config.OpenAIVoice = v
	}
	if v := viper.GetFloat64("audio.openai_speed"); v != 0 {
		config.OpenAISpeed = v
	}
	if v := viper.GetString("audio.openai_instruction"); v != "" {
		config.OpenAIInstruction = v
	}
	if v := viper.GetString("audio.espeak_voice"); v != "" {
		config.ESpeak.Voice = v
	}
	if v := viper.GetInt("audio.espeak_speed"); v != 0 {
		config.ESpeak.Speed = v
	}

	switch provider := viper.GetString("audio.provider"); {
	case provider != "":
		config.Provider = provider
	case config.GeminiKey != "":
		config.Provider = "gemini"
	case config.OpenAIKey != "":
		config.Provider = "openai"
	case audio.ESpeakAvailable():
		config.Provider = "espeak"
	default:
		config.Provider = "none"
	}
	return config
}

// ModelsConfig returns the credentials used by --list-models
func ModelsConfig() models.Config {
	return models.Config{
		GeminiKey:     GetGeminiKey(),
		GeminiBaseURL: viper.GetString("gemini.base_url"),
		OpenAIKey:     GetOpenAIKey(),
		OpenAIBaseURL: viper.GetString("openai.base_url"),
	}
}

// Describe returns a one-line summary of the chosen providers
func Describe(gen *words.Config, speech *audio.Config) string {
	return fmt.Sprintf("words: %s, audio: %s", gen.Provider, speech.Provider)
}
