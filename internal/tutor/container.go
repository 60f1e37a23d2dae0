package tutor

import (
	"github.com/sharc777/allam-lambda/internal/llm"
	"github.com/sharc777/allam-lambda/internal/ratelimit"
	"github.com/sharc777/allam-lambda/internal/settings"
)

type TutorContainer struct {
	Handler *Handler
}

func NewTutorContainer(provider llm.Provider, limiter ratelimit.Limiter, loader settings.Loader) *TutorContainer {
	return &TutorContainer{
		Handler: NewHandler(NewService(provider, limiter, loader)),
	}
}
