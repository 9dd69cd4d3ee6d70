package main

import (
	"net/http"

	"github.com/layerbylayersg/slicer-estimate-api/internal/config"
	"github.com/layerbylayersg/slicer-estimate-api/internal/middleware"
)

// buildHandler wraps the route handler with the middleware stack. Recover
// runs outermost so panics in any later layer are caught.
func buildHandler(runtime *Runtime, cfg *config.Config, handler http.Handler) http.Handler {
	handler = middleware.TrimSlash()(handler)
	handler = middleware.CORS(&cfg.CORS)(handler)
	handler = middleware.Logger(runtime.Logger)(handler)
	handler = middleware.Metrics()(handler)
	handler = middleware.Recover(runtime.Logger)(handler)
	return handler
}
