// Package audio turns spoken pronunciations into playable sample data. It
// holds the PCM decode pipeline, the pronunciation providers (Gemini TTS,
// OpenAI TTS and espeak-ng) and the playback capability used by the game.
package audio
