// Package words provides the content generator for spelling quests. It asks
// a generative model (Gemini or OpenAI) or a local word list for a batch of
// spelling words with definitions and hints, and decodes the answer item
// by item so that a malformed payload becomes an empty batch.
package words
