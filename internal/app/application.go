package app

import (
	"log/slog"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: for now the configuration and a structured logger.
type Application struct {
	Config Config
	Logger *slog.Logger
}

// Config holds all the configuration settings for our Application: the
// network port the server listens on, the name of the current operating
// environment (development, staging, production, etc.), the accepted
// API keys, the per-key rate limit, the bounds of the standard-value
// grid the ranker searches, and the default number of ranked candidates
// returned. These are read from command-line flags when the Application
// starts.
type Config struct {
	Port        int
	Env         string
	ApiKeys     []string
	RateLimit   int
	GridMinKOhm float64
	GridMaxKOhm float64
	DefaultTopN int
}
