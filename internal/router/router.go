package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sharc777/allam-lambda/internal/auth"
	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/middlewares"
	"github.com/sharc777/allam-lambda/internal/quizgen"
	"github.com/sharc777/allam-lambda/internal/tutor"
)

type RouterConfig struct {
	QuizGenHandler    *quizgen.Handler
	TutorHandler      *tutor.Handler
	CorsAllowedOrigin string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CorsAllowedOrigin))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/generate-quiz", quizgen.Routes(cfg.QuizGenHandler))
		r.Mount("/tutor", tutor.Routes(cfg.TutorHandler))
	})
	return r
}
