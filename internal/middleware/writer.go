// Package middleware provides HTTP middleware for request logging, CORS,
// panic recovery, metrics instrumentation, and path normalization.
package middleware

import "net/http"

// responseWriter wraps http.ResponseWriter to capture the status code
// and bytes written for logging and metrics.
type responseWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// Status returns the captured response status code.
func (w *responseWriter) Status() int {
	return w.status
}
