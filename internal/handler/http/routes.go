package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/languages", h.languages)
		r.Get("/api/version", h.serverVersion)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	})

	// routes bound to an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)
		r.Post("/api/user/logout", h.logout)

		r.Post("/api/captions/url", h.captionFromURL)
		r.Post("/api/captions/upload", h.captionFromUpload)
		r.Get("/api/captions/active", h.activeCaption)
		r.Put("/api/captions/active", h.editCaption)
		r.Post("/api/captions/select", h.selectCandidate)
		r.Post("/api/captions/commit", h.commitCaption)
		r.Get("/api/captions/history", h.captionHistory)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
