package container

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sharc777/allam-lambda/internal/auth"
	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/llm"
	"github.com/sharc777/allam-lambda/internal/quizgen"
	"github.com/sharc777/allam-lambda/internal/ratelimit"
	"github.com/sharc777/allam-lambda/internal/tutor"
)

type Container struct {
	Env              *config.Env
	QuizGenContainer *quizgen.QuizGenContainer
	TutorContainer   *tutor.TutorContainer
}

// New connects the database and wires every feature. Background work such
// as the in-memory limiter janitor stops when ctx is cancelled.
func New(ctx context.Context, env *config.Env) (*Container, error) {
	config.InitLogger(env.LogLevel)
	auth.Init(env.JWTSecret)

	if err := config.Connect(ctx, env.DatabaseDSN); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	provider, err := llm.New(ctx, env)
	if err != nil {
		return nil, err
	}

	quizGenContainer := quizgen.NewQuizGenContainer(config.DB, provider)
	tutorContainer := tutor.NewTutorContainer(provider, newLimiter(ctx, env), quizGenContainer.Settings)

	return &Container{
		Env:              env,
		QuizGenContainer: quizGenContainer,
		TutorContainer:   tutorContainer,
	}, nil
}

func newLimiter(ctx context.Context, env *config.Env) ratelimit.Limiter {
	if env.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: env.RedisAddr})
		config.Log.WithField("addr", env.RedisAddr).Info("using redis tutor rate limiter")
		return ratelimit.NewRedis(client, "tutor:", env.TutorRateLimit, env.TutorRateWindow)
	}
	mem := ratelimit.NewMemory(env.TutorRateLimit, env.TutorRateWindow)
	go mem.Run(ctx, env.TutorRateWindow)
	return mem
}
