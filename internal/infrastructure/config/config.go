package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Question store
	StoreDriver   string // "json" or "sqlite"
	QuestionsPath string // JSON dataset path
	SQLitePath    string // used when StoreDriver is "sqlite"

	// Scoring provider (OpenRouter or any OpenAI-compatible endpoint)
	OpenRouterBaseURL string
	OpenRouterAPIKey  string
	Model             string
	GradingTimeout    time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":3002"),
		ShutdownTimeout: getDurationDefault("SHUTDOWN_TIMEOUT", 10*time.Second),

		StoreDriver:   getenvDefault("STORE_DRIVER", "json"),
		QuestionsPath: getenvDefault("QUESTIONS_PATH", "data/translation_questions.json"),
		SQLitePath:    getenvDefault("SQLITE_PATH", "questions.db"),

		OpenRouterBaseURL: getenvDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterAPIKey:  mustGetenv("OPENROUTER_API_KEY"),
		Model:             getenvDefault("GRADING_MODEL", "deepseek/deepseek-chat-v3-0324"),
		GradingTimeout:    getDurationDefault("GRADING_TIMEOUT", 60*time.Second),
	}
}

// mustGetenv fails fast on a missing credential so a bad deployment dies at
// startup instead of surfacing as a provider error on the first request.
func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
