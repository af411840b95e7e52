package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"trivium/internal/progress"
)

// Config holds the runtime settings for the trainer.
type Config struct {
	// QuestionsPath is the JSON question bank to load.
	QuestionsPath string

	// PracticeSize is the default number of questions in a practice run.
	PracticeSize int

	// WeakThreshold is the accuracy below which a topic counts as weak.
	WeakThreshold float64

	// WeakLimit is the number of weak topics targeted at once.
	WeakLimit int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		QuestionsPath: "data/questions.json",
		PracticeSize:  8,
		WeakThreshold: progress.DefaultWeakThreshold,
		WeakLimit:     progress.DefaultWeakLimit,
	}
}

// FromEnv builds a Config from environment variables, loading a .env file
// first when present. Unset or malformed values keep their defaults.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if p := os.Getenv("TRIVIUM_QUESTIONS"); p != "" {
		cfg.QuestionsPath = p
	}
	if v := os.Getenv("TRIVIUM_PRACTICE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PracticeSize = n
		}
	}
	if v := os.Getenv("TRIVIUM_WEAK_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.WeakThreshold = f
		}
	}
	if v := os.Getenv("TRIVIUM_WEAK_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WeakLimit = n
		}
	}

	return cfg
}

// Validate checks that every setting is inside its workable range.
func (c Config) Validate() error {
	if c.QuestionsPath == "" {
		return fmt.Errorf("questions path must not be empty")
	}
	if c.PracticeSize < 1 {
		return fmt.Errorf("practice size must be at least 1, got %d", c.PracticeSize)
	}
	if c.WeakThreshold <= 0 || c.WeakThreshold > 1 {
		return fmt.Errorf("weak threshold must be in (0, 1], got %v", c.WeakThreshold)
	}
	if c.WeakLimit < 1 {
		return fmt.Errorf("weak limit must be at least 1, got %d", c.WeakLimit)
	}
	return nil
}
