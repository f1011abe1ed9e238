package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Console    bool
	ListModels bool
	Theme      string
	Difficulty string
	WordsFile  string
	NoAudio    bool

	// Word generation flags
	WordProvider    string
	WordFallback    string
	GeminiModel     string
	OpenAIChatModel string

	// Pronunciation flags
	AudioProvider     string
	AudioFallback     string
	GeminiTTSModel    string
	GeminiVoice       string
	OpenAITTSModel    string
	OpenAIVoice       string
	OpenAISpeed       float64
	OpenAIInstruction string
	ESpeakVoice       string
	ESpeakSpeed       int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Theme:             "Animals",
		Difficulty:        "easy",
		GeminiModel:       "gemini-3-flash-preview",
		OpenAIChatModel:   "gpt-4o-mini",
		GeminiTTSModel:    "gemini-2.5-flash-preview-tts",
		GeminiVoice:       "Kore",
		OpenAITTSModel:    "gpt-4o-mini-tts",
		OpenAIVoice:       "coral",
		OpenAISpeed:       0.9,
		OpenAIInstruction: "Speak slowly and clearly for a child learning to spell.",
		ESpeakVoice:       "en-us",
		ESpeakSpeed:       140,
	}
}
