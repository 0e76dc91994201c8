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

// StaffHandler handles staff-related HTTP requests
type StaffHandler struct {
	repo   ports.StaffRepository
	logger *zap.Logger
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(repo ports.StaffRepository, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{repo: repo, logger: logger}
}

// Create handles POST /staff
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entities.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	staff, err := h.repo.Create(r.Context(), req)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, staff)
}

// Get handles GET /staff/{id}
func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	staff, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, staff)
}

// Update handles PUT /staff/{id}
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req entities.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	staff, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, staff)
}

// Delete handles DELETE /staff/{id}
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /staff
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	staff, err := h.repo.List(r.Context())
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, staff)
}
