// Package restapi exposes the divider solver, the standard-value grid,
// and the part-number encoder over a JSON REST API.
package restapi

import (
	"net/http"
	"time"

	"resistcalc.circuitbench.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}
