package config_test

import (
	"testing"
	"time"

	"github.com/sharc777/allam-lambda/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "AI_PROVIDER", "TUTOR_RATE_LIMIT", "TUTOR_RATE_WINDOW", "CORS_ALLOWED_ORIGIN", "LOG_LEVEL"} {
			t.Setenv(k, "")
		}
		env := config.Load()
		if env.Port != "8080" || env.AIProvider != "openai" || env.CorsAllowedOrigin != "*" || env.LogLevel != "info" {
			t.Fatalf("unexpected defaults: %+v", env)
		}
		if env.TutorRateLimit != 20 || env.TutorRateWindow != time.Minute {
			t.Fatalf("unexpected rate limit defaults: %d/%s", env.TutorRateLimit, env.TutorRateWindow)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("AI_PROVIDER", "Gemini")
		t.Setenv("TUTOR_RATE_LIMIT", "5")
		t.Setenv("TUTOR_RATE_WINDOW", "30s")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		env := config.Load()
		if env.AIProvider != "gemini" || env.TutorRateLimit != 5 || env.TutorRateWindow != 30*time.Second || env.RedisAddr != "localhost:6379" {
			t.Fatalf("overrides not applied: %+v", env)
		}
	})

	t.Run("InvalidNumbersFallBack", func(t *testing.T) {
		t.Setenv("TUTOR_RATE_LIMIT", "many")
		t.Setenv("TUTOR_RATE_WINDOW", "-1s")
		env := config.Load()
		if env.TutorRateLimit != 20 || env.TutorRateWindow != time.Minute {
			t.Fatalf("want defaults, got %d/%s", env.TutorRateLimit, env.TutorRateWindow)
		}
	})

	t.Run("InLambda", func(t *testing.T) {
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "generate-quiz")
		if !config.Load().InLambda() {
			t.Fatal("should detect lambda runtime")
		}
	})
}
