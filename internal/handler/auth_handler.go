package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"clinic-booking-api/internal/render"
)

type loginRequest struct {
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&req); err != nil && err != io.EOF {
		h.fail(w, r, badRequest("invalid JSON body"))
		return
	}

	tok, err := h.gate.Login(req.Password)
	if err != nil {
		h.log.Warn(r.Context(), "admin login failed", "remote", r.RemoteAddr)
		h.fail(w, r, err)
		return
	}

	h.log.Info(r.Context(), "admin logged in", "remote", r.RemoteAddr)
	render.JSON(w, http.StatusOK, map[string]any{"success": true, "token": tok})
}
