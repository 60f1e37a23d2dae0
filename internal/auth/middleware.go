package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sharc777/allam-lambda/internal/config"
)

type contextKey struct{}

var ErrNoClaims = errors.New("no user claims in context")

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			log.Warn("Missing bearer token")
			config.Error(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}

		claims, err := ValidateJWT(strings.TrimSpace(token))
		if err != nil {
			log.WithError(err).Warn("Invalid bearer token")
			config.Error(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}
