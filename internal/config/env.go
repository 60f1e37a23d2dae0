package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	Port              string
	DatabaseDSN       string
	JWTSecret         string
	AIProvider        string
	AIAPIKey          string
	AIBaseURL         string
	GeminiAPIKey      string
	RedisAddr         string
	TutorRateLimit    int
	TutorRateWindow   time.Duration
	CorsAllowedOrigin string
	LogLevel          string
}

func Load() *Env {
	_ = godotenv.Load()

	return &Env{
		Port:              getEnv("PORT", "8080"),
		DatabaseDSN:       os.Getenv("DATABASE_DSN"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AIProvider:        strings.ToLower(getEnv("AI_PROVIDER", "openai")),
		AIAPIKey:          os.Getenv("AI_API_KEY"),
		AIBaseURL:         os.Getenv("AI_BASE_URL"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		TutorRateLimit:    getEnvInt("TUTOR_RATE_LIMIT", 20),
		TutorRateWindow:   getEnvDuration("TUTOR_RATE_WINDOW", time.Minute),
		CorsAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
}

func (e *Env) InLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
