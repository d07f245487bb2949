package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"clinic-booking-api/internal/middleware"
)

// Routes builds the full HTTP surface. ws serves the real-time
// channel; static, when set, serves everything not matched above.
func (h *Handler) Routes(ws, static http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestLog(h.log))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", h.Health)
	if ws != nil {
		r.Handle("/ws", ws)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/doctors", h.ListDoctors)
		r.Post("/appointments", h.CreateAppointment)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Admin(h.gate, h.log))
				r.Get("/appointments", h.ListAppointments)
				r.Delete("/appointments", h.ClearAppointments)
				r.Delete("/appointments/{id}", h.DeleteAppointment)
				r.Patch("/appointments/{id}/status", h.UpdateAppointmentStatus)
			})
		})
	})

	if static != nil {
		r.Handle("/*", static)
	}
	return r
}
