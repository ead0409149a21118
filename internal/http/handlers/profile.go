package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/kanizsa-users/internal/auth"
	"github.com/hongminglow/kanizsa-users/internal/http/respond"
	"github.com/hongminglow/kanizsa-users/internal/middleware"
	"github.com/hongminglow/kanizsa-users/internal/models/dto"
)

// ProfileHandler serves the bearer-protected profile endpoints.
type ProfileHandler struct {
	svc *auth.Service
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(svc *auth.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Register attaches profile routes behind the bearer gate.
func (h *ProfileHandler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.svc))
		r.Get("/users/profile", h.handleGet)
		r.Put("/users/profile", h.handleUpdate)
	})
}

func (h *ProfileHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, auth.ErrUnauthorized.Error())
		return
	}
	respond.JSON(w, http.StatusOK, "ok", dto.ProfileResponse{User: user.Profile()})
}

func (h *ProfileHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, auth.ErrUnauthorized.Error())
		return
	}
	var req dto.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.UpdateProfile(r.Context(), user.ID, req.Name); err != nil {
		respond.ServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, "profile updated successfully", nil)
}
