package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hai-backend/application/ports"
	"hai-backend/domain/entities"
	"hai-backend/pkg/utils"
)

// GuestHandler handles guest-related HTTP requests
type GuestHandler struct {
	repo   ports.GuestRepository
	logger *zap.Logger
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(repo ports.GuestRepository, logger *zap.Logger) *GuestHandler {
	return &GuestHandler{repo: repo, logger: logger}
}

// Create handles POST /guests
func (h *GuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entities.CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	guest, err := h.repo.Create(r.Context(), req)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, guest)
}

// Get handles GET /guests/{id}
func (h *GuestHandler) Get(w http.ResponseWriter, r *http.Request) {
	guest, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, guest)
}

// Update handles PUT /guests/{id}
func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req entities.UpdateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	guest, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, guest)
}

// Delete handles DELETE /guests/{id}
func (h *GuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /guests, optionally filtered by ?reservationId=.
func (h *GuestHandler) List(w http.ResponseWriter, r *http.Request) {
	if reservationID := r.URL.Query().Get("reservationId"); reservationID != "" {
		guests, err := h.repo.ListByReservation(r.Context(), reservationID)
		if err != nil {
			respondAppError(w, h.logger, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, guests)
		return
	}

	guests, err := h.repo.List(r.Context())
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, guests)
}
