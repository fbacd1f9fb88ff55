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

	// LLM provider (OpenAI-compatible chat-completion endpoint)
	LLMURL    string // e.g. "https://api.openai.com"
	LLMModel  string // model name, e.g. "gpt-4o-mini"
	LLMAPIKey string // bearer token; the service cannot run without it

	// Classroom platform API
	ClassroomURL   string
	ClassroomToken string

	// Document / form publishing APIs
	DocsURL    string
	DocsToken  string
	FormsURL   string
	FormsToken string

	// Local progress log
	ProgressDBPath string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		LLMURL:          getenvDefault("LLM_URL", "https://api.openai.com"),
		LLMModel:        getenvDefault("LLM_MODEL", "gpt-4o-mini"),
		LLMAPIKey:       mustGetenv("LLM_API_KEY"),
		ClassroomURL:    getenvDefault("CLASSROOM_URL", "http://localhost:9090"),
		ClassroomToken:  os.Getenv("CLASSROOM_TOKEN"),
		DocsURL:         getenvDefault("DOCS_URL", "http://localhost:9091"),
		DocsToken:       os.Getenv("DOCS_TOKEN"),
		FormsURL:        getenvDefault("FORMS_URL", "http://localhost:9092"),
		FormsToken:      os.Getenv("FORMS_TOKEN"),
		ProgressDBPath:  getenvDefault("PROGRESS_DB_PATH", "progress.db"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
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
