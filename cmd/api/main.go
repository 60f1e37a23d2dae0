package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/container"
	"github.com/sharc777/allam-lambda/internal/router"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := config.Load()
	c, err := container.New(ctx, env)
	if err != nil {
		config.Log.WithError(err).Fatal("failed to start")
	}

	handler := router.New(router.RouterConfig{
		QuizGenHandler:    c.QuizGenContainer.Handler,
		TutorHandler:      c.TutorContainer.Handler,
		CorsAllowedOrigin: env.CorsAllowedOrigin,
	})

	if env.InLambda() {
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	srv := &http.Server{
		Addr:              ":" + env.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		config.Log.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Log.WithError(err).Error("graceful shutdown failed")
	}
}
