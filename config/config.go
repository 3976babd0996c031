package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds all configuration values.
type Config struct {
	Port        string
	CORSOrigins []string

	// Postgres
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	// Auth
	JWTSecret string
	JWTTTL    time.Duration

	// Redis cache for chat answers; empty address keeps the cache in memory
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// AI coach
	LLMProvider   string
	LLMModel      string
	GeminiAPIKey  string
	OpenAIAPIKey  string
	ChatRateLimit int
	ChatCacheTTL  time.Duration

	// SES mail for password resets; empty sender logs the mail instead
	AWSRegion string
	SESEmail  string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads .env (if present) and then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() Config {
	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini))
	defaultModel := "gemini-2.0-flash"
	if provider == ProviderOpenAI {
		defaultModel = "gpt-4o-mini"
	}

	return Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "aifit"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", "ai-fit-secret-key"),
		JWTTTL:    getDuration("JWT_TTL", 7*24*time.Hour),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		LLMProvider:   provider,
		LLMModel:      getEnv("LLM_MODEL", defaultModel),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		ChatRateLimit: getInt("CHAT_RATE_LIMIT", 10),
		ChatCacheTTL:  getDuration("CHAT_CACHE_TTL", 24*time.Hour),

		AWSRegion: getEnv("AWS_REGION", "us-east-1"),
		SESEmail:  getEnv("SES_EMAIL", ""),

		LogFile:  getEnv("LOG_FILE", "/tmp/aifit.log"),
		LogLevel: parseLogLevel(getEnv("LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultVal
	}
	return n
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultVal
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
