package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	APIKey string

	OpenRouterAPIKey     string
	OpenRouterBase       string
	OpenRouterModel      string
	OpenRouterEmbedModel string
	OpenRouterAppTitle   string
	OpenRouterReferer    string

	SkillsPath         string
	JobDescriptionPath string

	SemanticWeight float64
	SkillsWeight   float64

	LogJSON bool
	Debug   bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:   getEnv("PORT", "8000"),
		APIKey: getEnv("API_KEY", "supersecretkey123"),

		OpenRouterAPIKey:     os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:       os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:      getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterEmbedModel: getEnv("OPENROUTER_EMBED_MODEL", "openai/text-embedding-3-small"),
		OpenRouterAppTitle:   os.Getenv("OPENROUTER_APP_TITLE"),
		OpenRouterReferer:    os.Getenv("OPENROUTER_REFERER"),

		SkillsPath:         getEnv("SKILLS_PATH", "data/skills_list.json"),
		JobDescriptionPath: getEnv("JOB_DESCRIPTION_PATH", "data/job_description.txt"),

		SemanticWeight: getEnvFloat("SEMANTIC_WEIGHT", 0.6),
		SkillsWeight:   getEnvFloat("SKILLS_WEIGHT", 0.4),

		LogJSON: getEnvBool("LOG_JSON", false),
		Debug:   getEnvBool("DEBUG", false),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
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
