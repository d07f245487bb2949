package handler

import (
	"net/http"

	"clinic-booking-api/internal/render"
)

func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, h.catalog.Doctors())
}
