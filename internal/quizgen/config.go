package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Batches need
	// room for every block, so this scales generously.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxExclude is the maximum number of existing prompts to include in
	// the dedup list for single-question generation.
	MaxExclude int
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
		MaxExclude:  50,
	}
}
