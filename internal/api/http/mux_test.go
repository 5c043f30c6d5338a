package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"gitwrapped/internal/app"
	"gitwrapped/internal/mock"
)

func newTestMux(service Service, sessions Sessions) http.Handler {
	return NewMux(MuxConfig{
		Service:        service,
		Sessions:       sessions,
		FallbackToken:  "fallback-token",
		Timeout:        time.Second,
		AllowedOrigins: []string{"*"},
		Registry:       prometheus.NewRegistry(),
		Logger:         newTestLogger(),
	})
}

func TestNewMuxRoutes(t *testing.T) {
	t.Parallel()

	service := &mock.Service{
		YearInReviewFunc: func(ctx context.Context, login, token string, ownProfile bool) (app.Stats, error) {
			return testStats(), nil
		},
	}
	mux := newTestMux(service, stubSessions{sess: Session{Token: "tok", Login: "octocat"}, ok: true})

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{
			name:       "health check",
			target:     "/healthz",
			wantStatus: http.StatusOK,
		},
		{
			name:       "metrics",
			target:     "/metrics",
			wantStatus: http.StatusOK,
		},
		{
			name:       "stats",
			target:     "/api/github/stats?username=octocat",
			wantStatus: http.StatusOK,
		},
		{
			name:       "slide image",
			target:     "/api/og/octocat/1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown path",
			target:     "/nope",
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestNewMuxTimeout(t *testing.T) {
	t.Parallel()

	service := &mock.Service{
		YearInReviewFunc: func(ctx context.Context, login, token string, ownProfile bool) (app.Stats, error) {
			<-ctx.Done()
			return app.Stats{}, ctx.Err()
		},
	}
	mux := NewMux(MuxConfig{
		Service:        service,
		Sessions:       stubSessions{sess: Session{Token: "tok", Login: "octocat"}, ok: true},
		Timeout:        10 * time.Millisecond,
		AllowedOrigins: []string{"*"},
		Registry:       prometheus.NewRegistry(),
		Logger:         newTestLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/github/stats", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNewMuxCORS(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&mock.Service{}, stubSessions{})

	req := httptest.NewRequest(http.MethodOptions, "/api/github/stats", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
