package main

import (
	netHttp "net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"gitwrapped/internal/adapter/github"
	"gitwrapped/internal/api/http"
	"gitwrapped/internal/app"
	"gitwrapped/internal/limiter"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	// .env is optional, envconfig reads the environment either way.
	_ = godotenv.Load()

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	clientCaches, err := github.NewClientCaches(conf.GithubClientCacheSize)
	if err != nil {
		l.Fatalf("couldn't create github client caches: %v", err)
	}

	newClient := func(login string, token string, ownProfile bool) app.GithubClient {
		client := github.NewClient(
			limitedHTTPClient,
			conf.GithubAPIAddress,
			login,
			token,
			ownProfile,
			conf.GithubTimeout,
		)

		return github.NewCachedClient(client, clientCaches, conf.GithubClientCacheTTL, login, ownProfile)
	}

	service := app.NewService(
		newClient,
		l.WithField("component", "service"),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mux := http.NewMux(http.MuxConfig{
		Service:        service,
		Sessions:       http.HeaderSessions{},
		FallbackToken:  conf.GithubAPIToken,
		Timeout:        conf.HTTPRequestTimeout,
		AllowedOrigins: conf.CORSAllowedOrigins,
		Registry:       registry,
		Logger:         l.WithField("component", "mux"),
	})
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	server.Run()
}
