package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/layerbylayersg/slicer-estimate-api/internal/estimates"
	"github.com/layerbylayersg/slicer-estimate-api/internal/lifecycle"
	"github.com/layerbylayersg/slicer-estimate-api/internal/profiles"
	pkgroutes "github.com/layerbylayersg/slicer-estimate-api/pkg/routes"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r pkgroutes.System, runtime *Runtime, domain *Domain) {
	estimateHandler := estimates.NewHandler(domain.Estimates, runtime.Logger, runtime.Pagination)
	profileHandler := profiles.NewHandler(domain.Profiles, runtime.Logger)

	r.RegisterGroup(pkgroutes.Group{
		Prefix:      "/api",
		Description: "Service API",
		Children: []pkgroutes.Group{
			estimateHandler.Routes(),
			profileHandler.Routes(),
		},
	})

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, req *http.Request) {
			handleReadinessCheck(w, runtime.Lifecycle)
		},
	})

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/metrics",
		Handler: promhttp.Handler().ServeHTTP,
	})
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
