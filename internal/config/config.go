// Package config collects runtime settings from .env files and the environment.
// Command-line flags are layered on top by the caller.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/robalobadob/adivina/internal/daily"
)

// Config holds every tunable of the game binary.
type Config struct {
	LogLevel        string // zerolog level name (LOG_LEVEL)
	LogFile         string // log destination; empty discards logs (LOG_FILE)
	WordsFile       string // vocabulary override (WORDS_FILE)
	Daily           bool   // word of the day instead of a random word (ADIVINA_DAILY)
	DailySalt       string // HMAC salt for daily mode (DAILY_SALT)
	HighlightMisses bool   // render absent letters apart from empty cells (ADIVINA_HIGHLIGHT_MISSES)
}

// Load reads the given .env files (default ".env"), then the environment.
// Missing .env files are not an error.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
		WordsFile:       os.Getenv("WORDS_FILE"),
		Daily:           getBool("ADIVINA_DAILY", false),
		DailySalt:       getEnv("DAILY_SALT", daily.DefaultSalt),
		HighlightMisses: getBool("ADIVINA_HIGHLIGHT_MISSES", false),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
