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

// MessageHandler handles guest-communication HTTP requests
type MessageHandler struct {
	repo       ports.MessageRepository
	wireFormat dates.Format
	logger     *zap.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(repo ports.MessageRepository, wireFormat dates.Format, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{repo: repo, wireFormat: wireFormat, logger: logger}
}

// Create handles POST /messages
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entities.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if !h.wireFormat.IsValid(req.Date) {
		respondError(w, h.logger, http.StatusBadRequest, "date must be a valid date")
		return
	}

	message, err := h.repo.Create(r.Context(), req)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, message)
}

// Get handles GET /messages/{id}
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	message, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, message)
}

// Update handles PUT /messages/{id}
func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req entities.UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.Date != nil && !h.wireFormat.IsValid(*req.Date) {
		respondError(w, h.logger, http.StatusBadRequest, "date must be a valid date")
		return
	}

	message, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, message)
}

// Delete handles DELETE /messages/{id}
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /messages, optionally filtered by ?reservationId=
// or ?date=.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if reservationID := query.Get("reservationId"); reservationID != "" {
		messages, err := h.repo.ListByReservation(r.Context(), reservationID)
		if err != nil {
			respondAppError(w, h.logger, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, messages)
		return
	}

	if date := query.Get("date"); date != "" {
		if !h.wireFormat.IsValid(date) {
			respondError(w, h.logger, http.StatusBadRequest, "date must be a valid date")
			return
		}
		messages, err := h.repo.ListByDate(r.Context(), date)
		if err != nil {
			respondAppError(w, h.logger, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, messages)
		return
	}

	messages, err := h.repo.List(r.Context())
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, messages)
}
