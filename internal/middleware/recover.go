package middleware

import (
	"log/slog"
	"net/http"

	"github.com/layerbylayersg/slicer-estimate-api/internal/metrics"
)

// Recover returns middleware that converts handler panics into 500 responses
// and records them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					metrics.PanicRecoveries.Inc()
					logger.Error("panic recovered", "panic", rec, "path", r.URL.Path)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
