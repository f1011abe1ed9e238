package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/proplay/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "proplay",
		Short: "AI Spelling Quest",
		Long: `proplay is a spelling game for young learners.

Pick a theme and a difficulty, get five fresh words with definitions and
hints from Gemini or OpenAI, listen to how each word sounds and spell it.

Examples:
  proplay                                  # Launch the GUI (default)
  proplay --console --theme space          # Play in the terminal
  proplay --words-file words.txt           # Use a local word list
  proplay --list-models                    # Show usable models`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.proplay.yaml)")

	// Local flags
	cmd.Flags().BoolVar(&flags.Console, "console", false, "Play in the terminal instead of the GUI")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available Gemini and OpenAI models for the configured API keys")
	cmd.Flags().StringVarP(&flags.Theme, "theme", "t", flags.Theme, "Theme: Animals, Space, Food, Nature, Everyday Objects, Superheroes")
	cmd.Flags().StringVarP(&flags.Difficulty, "difficulty", "d", flags.Difficulty, "Difficulty: easy, medium or hard")
	cmd.Flags().StringVar(&flags.WordsFile, "words-file", "", "Read words from a local file (word = definition | hint)")
	cmd.Flags().BoolVar(&flags.NoAudio, "no-audio", false, "Disable pronunciation")

	// Word generation flags
	cmd.Flags().StringVar(&flags.WordProvider, "word-provider", "", "Word provider: gemini, openai or file (default: first one configured)")
	cmd.Flags().StringVar(&flags.WordFallback, "word-fallback", "", "Fallback word provider")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for word generation")
	cmd.Flags().StringVar(&flags.OpenAIChatModel, "openai-chat-model", flags.OpenAIChatModel, "OpenAI model for word generation")

	// Pronunciation flags
	cmd.Flags().StringVar(&flags.AudioProvider, "audio-provider", "", "Audio provider: gemini, openai, espeak or none (default: first one available)")
	cmd.Flags().StringVar(&flags.AudioFallback, "audio-fallback", "", "Fallback audio provider")
	cmd.Flags().StringVar(&flags.GeminiTTSModel, "gemini-tts-model", flags.GeminiTTSModel, "Gemini speech model")
	cmd.Flags().StringVar(&flags.GeminiVoice, "gemini-voice", flags.GeminiVoice, "Gemini prebuilt voice, e.g. Kore, Puck, Zephyr")
	cmd.Flags().StringVar(&flags.OpenAITTSModel, "openai-tts-model", flags.OpenAITTSModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0, may be ignored by gpt-4o-mini-tts)")
	cmd.Flags().StringVar(&flags.OpenAIInstruction, "openai-instruction", flags.OpenAIInstruction, "Voice instructions for the gpt-4o-mini-tts model")
	cmd.Flags().StringVar(&flags.ESpeakVoice, "espeak-voice", flags.ESpeakVoice, "espeak-ng voice")
	cmd.Flags().IntVar(&flags.ESpeakSpeed, "espeak-speed", flags.ESpeakSpeed, "espeak-ng speed in words per minute (80 to 450)")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	bindings := map[string]string{
		"game.theme":               "theme",
		"game.difficulty":          "difficulty",
		"words.provider":           "word-provider",
		"words.fallback":           "word-fallback",
		"words.file":               "words-file",
		"words.gemini_model":       "gemini-model",
		"words.openai_model":       "openai-chat-model",
		"audio.provider":           "audio-provider",
		"audio.fallback":           "audio-fallback",
		"audio.gemini_model":       "gemini-tts-model",
		"audio.gemini_voice":       "gemini-voice",
		"audio.openai_model":       "openai-tts-model",
		"audio.openai_voice":       "openai-voice",
		"audio.openai_speed":       "openai-speed",
		"audio.openai_instruction": "openai-instruction",
		"audio.espeak_voice":       "espeak-voice",
		"audio.espeak_speed":       "espeak-speed",
	}
	for key, flag := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil {
			viper.BindPFlag(key, f)
		}
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".proplay" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".proplay")
	}

	// A .env file in the working directory may hold the API keys. Variables
	// already set in the environment take precedence.
	_ = godotenv.Load()

	// Environment variables
	viper.SetEnvPrefix("PROPLAY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return viper.GetString("gemini.api_key")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("openai.api_key")
}
