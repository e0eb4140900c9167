package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// credential endpoints, throttled per client IP
	router.Group(func(r chi.Router) {
		r.Use(h.withAuthRateLimit)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Get("/version", h.getServerVersion)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/events", h.createEvent)
		r.Get("/events", h.listEvents)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
