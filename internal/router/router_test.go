package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sharc777/allam-lambda/internal/quizgen"
	"github.com/sharc777/allam-lambda/internal/router"
	"github.com/sharc777/allam-lambda/internal/tutor"
)

func newRouter() http.Handler {
	return router.New(router.RouterConfig{
		QuizGenHandler:    quizgen.NewHandler(nil),
		TutorHandler:      tutor.NewHandler(nil),
		CorsAllowedOrigin: "*",
	})
}

func TestRouter(t *testing.T) {
	h := newRouter()

	t.Run("Healthz", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"ok"`) {
			t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("Preflight", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/generate-quiz", nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("status = %d", rr.Code)
		}
	})

	for _, path := range []string{"/generate-quiz", "/tutor"} {
		t.Run("RequiresAuth"+path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`)))
			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d", rr.Code)
			}
		})
	}
}
