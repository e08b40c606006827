package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request once the handler
// returns.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}

		logger.FromRequest(r).WithLevel(accessLogLevel(r, status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

// accessLogLevel keeps metric scrapes out of the info stream and raises
// server errors to warn.
func accessLogLevel(r *http.Request, status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.WarnLevel
	case r.URL.Path == "/metrics":
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}
