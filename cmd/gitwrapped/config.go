package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// HTTPRequestTimeout - timeout for serving one http request
	HTTPRequestTimeout time.Duration `default:"60s"`

	// CORSAllowedOrigins - origins allowed to call the api from a browser
	CORSAllowedOrigins []string `default:"*"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - fallback auth token used when a request carries no
	// session, e.g. preview images fetched by social crawlers (optional,
	// rate limit is lower without this token)
	GithubAPIToken string `default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls per second
	GithubAPIRateLimit float64 `default:"5"`

	// GithubTimeout - timeout for single github api call
	GithubTimeout time.Duration `default:"10s"`

	// GithubClientCacheSize - maximum number of elements in cache for each github client method
	GithubClientCacheSize int `default:"10000"`

	// GithubClientCacheTTL - maximum lifetime for github client cache entries
	GithubClientCacheTTL time.Duration `default:"10m"`
}
