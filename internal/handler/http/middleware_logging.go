package http

import (
	"net/http"
	"time"

	"github.com/eco-conscious/backend/internal/logger"
)

// withLogging emits one access-log line per request through the trace-aware
// request logger. The method and URI are captured before the handler runs:
// downstream code may rewrite the request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		method := r.Method
		uri := r.RequestURI
		remote := r.RemoteAddr
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", method).
			Str("uri", uri).
			Str("remote", remote).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
