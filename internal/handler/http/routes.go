package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/health/ready", h.ready)
	})

	router.Route("/api/reservations", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.listReservations)
		r.Post("/", h.createReservation)
		r.Get("/client/{clientId}", h.listReservationsByClient)
		r.Get("/host/{hostId}", h.listReservationsByHost)
		r.Get("/{reservationId}", h.getReservation)
		r.Delete("/{reservationId}", h.deleteReservation)
	})

	return router
}
