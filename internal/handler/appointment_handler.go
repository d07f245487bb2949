package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"clinic-booking-api/internal/render"
)

const maxBody = 1 << 20

// decodeObject reads a JSON object, keeping numbers as json.Number so
// they are echoed back unchanged.
func decodeObject(r *http.Request) (map[string]any, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		return nil, badRequest("could not read body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, badRequest("invalid JSON body")
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

func appointmentID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, badRequest("invalid appointment id")
	}
	return id, nil
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeObject(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	id, err := h.store.CreateAppointment(r.Context(), fields)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, map[string]any{"success": true, "appointmentId": id})
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	apts, err := h.store.ListAppointments(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, apts)
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := appointmentID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.store.DeleteAppointment(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) ClearAppointments(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.ClearAppointments(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   n,
		"message": "All appointments cleared",
	})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := appointmentID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&req); err != nil && err != io.EOF {
		h.fail(w, r, badRequest("invalid JSON body"))
		return
	}
	if req.Status == "" {
		h.fail(w, r, badRequest("status required"))
		return
	}

	if err := h.store.UpdateAppointmentStatus(r.Context(), id, req.Status); err != nil {
		h.fail(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, map[string]any{"success": true})
}
