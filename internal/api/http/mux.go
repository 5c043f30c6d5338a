package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// MuxConfig carries NewMux dependencies and settings.
type MuxConfig struct {
	Service        Service
	Sessions       Sessions
	FallbackToken  string
	Timeout        time.Duration
	AllowedOrigins []string
	Registry       *prometheus.Registry
	Logger         logrus.FieldLogger
}

// NewMux creates router for app's http server.
func NewMux(conf MuxConfig) *chi.Mux {
	validate := newValidator()
	metrics := NewMetrics(conf.Registry)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: conf.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Authorization", "X-Github-Login", "Content-Type"},
	}))
	r.Use(NewLoggingMiddleware(conf.Logger))
	r.Use(NewMetricsMiddleware(metrics))
	r.Use(NewTimeoutMiddleware(conf.Timeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(conf.Registry, promhttp.HandlerOpts{}))

	r.Get("/api/github/stats", NewStatsHandler(conf.Sessions, conf.Service, validate, conf.Logger))
	r.Get("/api/og/{username}/{slide}", NewSlideImageHandler(conf.Sessions, conf.Service, conf.FallbackToken, validate, conf.Logger))

	return r
}
