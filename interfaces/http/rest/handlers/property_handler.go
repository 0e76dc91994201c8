package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hai-backend/application/ports"
	"hai-backend/domain/entities"
	"hai-backend/pkg/dates"
	"hai-backend/pkg/utils"
)

// PropertyHandler handles property-related HTTP requests
type PropertyHandler struct {
	repo       ports.PropertyRepository
	wireFormat dates.Format
	logger     *zap.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(repo ports.PropertyRepository, wireFormat dates.Format, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{repo: repo, wireFormat: wireFormat, logger: logger}
}

// Create handles POST /properties
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entities.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	property, err := h.repo.Create(r.Context(), req)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, property)
}

// Get handles GET /properties/{id}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	property, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, property)
}

// Update handles PUT /properties/{id}
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req entities.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	property, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, property)
}

// Delete handles DELETE /properties/{id}
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /properties. With ?from= and ?to= it returns only
// the properties available for that stay window.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if from != "" || to != "" {
		if !h.wireFormat.IsValid(from) || !h.wireFormat.IsValid(to) {
			respondError(w, h.logger, http.StatusBadRequest, "from and to must be valid dates")
			return
		}
		properties, err := h.repo.SearchByDateRange(r.Context(), from, to)
		if err != nil {
			respondAppError(w, h.logger, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, properties)
		return
	}

	properties, err := h.repo.List(r.Context())
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, properties)
}
