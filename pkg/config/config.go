package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	OpenAIAPIKey string
	OpenAIModel  string
	MockLLM      bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		MockLLM:      getEnvBool("MOCK_LLM", false),
	}
	if cfg.MockLLM && cfg.OpenAIAPIKey == "" {
		// Mock mode never touches the network; a dummy key keeps wiring happy.
		cfg.OpenAIAPIKey = "mock-api-key"
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
