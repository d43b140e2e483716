package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers every API endpoint on the router. The ".json"
// suffix rides along inside the path parameter and is stripped by the
// handlers.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/calc/solve.json", validateAPIKey(api, api.solveHandler))
	router.Handler(http.MethodGet, "/api/calc/series/:id", validateAPIKey(api, api.seriesHandler))
	router.Handler(http.MethodGet, "/api/calc/value-code/:value", validateAPIKey(api, api.valueCodeHandler))
}

// Router builds the API router with the full middleware chain applied,
// outermost first: security headers, compression, request logging, and
// per-key rate limiting.
func (api *RestAPI) Router() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	if api.rateLimiter != nil {
		handler = api.rateLimiter(handler)
	}
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = CompressionMiddleware(handler)
	handler = securityHeaders(handler)
	return handler
}
