package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/layerbylayersg/slicer-estimate-api/internal/metrics"
)

// Metrics returns middleware that instruments requests with RED metrics:
// request counts and latency by method, path, and status, plus a gauge of
// in-flight requests.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			wrapped := newResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			metrics.HTTPRequestsTotal.
				WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(wrapped.Status())).
				Inc()
			metrics.HTTPRequestDuration.
				WithLabelValues(r.Method, r.URL.Path).
				Observe(time.Since(start).Seconds())
		})
	}
}
