package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config collects every environment knob once at startup. It is provided
// through fx so no package reads os.Getenv at request time.
type Config struct {
	Port         string
	DatabasePath string
	UploadDir    string

	AIProvider    string // "openai" or "gemini"
	OpenAIAPIKey  string
	GeminiAPIKey  string
	AIModel       string
	AIMaxTokens   int
	AITemperature float32
	AITopP        float32
	AITimeout     time.Duration

	TokenBudget     int
	RateLimitWindow time.Duration
	RateLimitMax    int

	MigrationAtomic bool

	CORSAllowedOrigins []string
	CSPPolicy          string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	provider := envString("AI_PROVIDER", "openai")

	defaultModel := "gpt-4o-mini"
	if provider == "gemini" {
		defaultModel = "gemini-1.5-flash"
	}

	return &Config{
		Port:         envString("PORT", "3000"),
		DatabasePath: envString("DATABASE_PATH", "travelog.db"),
		UploadDir:    envString("UPLOAD_DIR", "uploads"),

		AIProvider:    provider,
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		AIModel:       envString("AI_MODEL", defaultModel),
		AIMaxTokens:   envInt("AI_MAX_TOKENS", 1500),
		AITemperature: envFloat32("AI_TEMPERATURE", 0.7),
		AITopP:        envFloat32("AI_TOP_P", 0.9),
		AITimeout:     time.Duration(envInt("AI_TIMEOUT_SECONDS", 45)) * time.Second,

		TokenBudget:     envInt("AI_TOKEN_BUDGET", 10000),
		RateLimitWindow: time.Duration(envInt("RATE_LIMIT_WINDOW_MINUTES", 15)) * time.Minute,
		RateLimitMax:    envInt("RATE_LIMIT_MAX_REQUESTS", 10),

		MigrationAtomic: envBool("MIGRATION_ATOMIC", false),

		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:4200",
			"http://localhost:3000",
		}),
		CSPPolicy: envString("CSP_POLICY",
			"default-src 'self'; img-src 'self' data: blob:; media-src 'self' blob:"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func envFloat32(key string, fallback float32) float32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %v", key, v, fallback)
		return fallback
	}
	return float32(f)
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
