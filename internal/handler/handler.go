package handler

import (
	"context"
	"errors"
	"net/http"

	"clinic-booking-api/internal/auth"
	"clinic-booking-api/internal/logging"
	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/render"
	"clinic-booking-api/internal/store"
)

type Appointments interface {
	CreateAppointment(ctx context.Context, fields map[string]any) (int64, error)
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
	ClearAppointments(ctx context.Context) (int, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, status string) error
	Len() int
}

type Doctors interface {
	Doctors() []model.Provider
}

type Gate interface {
	Login(password string) (string, error)
	Check(raw string) (*auth.Claims, error)
}

// Listeners reports how many real-time clients are connected.
type Listeners interface {
	Count() int
}

type Handler struct {
	store     Appointments
	catalog   Doctors
	gate      Gate
	listeners Listeners
	log       logging.Logger
}

func New(st Appointments, catalog Doctors, gate Gate, listeners Listeners, log logging.Logger) *Handler {
	if log == nil {
		log = logging.Nop{}
	}
	return &Handler{store: st, catalog: catalog, gate: gate, listeners: listeners, log: log}
}

type badRequest string

func (e badRequest) Error() string { return string(e) }

// fail maps an error onto its HTTP status and writes it.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var (
		vErr *store.ValidationError
		bad  badRequest
	)
	switch {
	case errors.As(err, &vErr):
		render.Error(w, http.StatusBadRequest, vErr.Error())
	case errors.As(err, &bad):
		render.Error(w, http.StatusBadRequest, bad.Error())
	case errors.Is(err, auth.ErrMissingPassword):
		render.Error(w, http.StatusBadRequest, "Password required")
	case errors.Is(err, auth.ErrUnauthorized):
		render.Error(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, auth.ErrForbidden):
		render.Error(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, store.ErrNotFound):
		render.Error(w, http.StatusNotFound, "Appointment not found")
	default:
		h.log.Error(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		render.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	n := 0
	if h.listeners != nil {
		n = h.listeners.Count()
	}
	render.JSON(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"appointments": h.store.Len(),
		"listeners":    n,
	})
}
