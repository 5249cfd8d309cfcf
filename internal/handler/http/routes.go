package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// views
	router.Group(func(r chi.Router) {
		r.Get("/", h.showRoot)
		r.Get("/confirm/{token}", h.showConfirmation)
		r.Post("/confirm/{token}", h.confirm)
	})

	// api
	router.Route("/api", func(r chi.Router) {
		r.Post("/confirm/{token}", h.confirmAPI)
		r.Get("/version/", h.getServerVersion)
	})

	router.Get("/health", h.health)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
