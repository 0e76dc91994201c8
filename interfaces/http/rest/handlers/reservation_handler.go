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

// ReservationHandler handles reservation-related HTTP requests
type ReservationHandler struct {
	repo       ports.ReservationRepository
	wireFormat dates.Format
	logger     *zap.Logger
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(repo ports.ReservationRepository, wireFormat dates.Format, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{repo: repo, wireFormat: wireFormat, logger: logger}
}

// Create handles POST /reservations
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entities.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if !h.wireFormat.IsValid(req.CheckinDate) || !h.wireFormat.IsValid(req.CheckoutDate) {
		respondError(w, h.logger, http.StatusBadRequest, "checkin_date and checkout_date must be valid dates")
		return
	}

	reservation, err := h.repo.Create(r.Context(), req)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, reservation)
}

// Get handles GET /reservations/{id}
func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, reservation)
}

// Update handles PUT /reservations/{id}
func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req entities.UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.CheckinDate != nil && !h.wireFormat.IsValid(*req.CheckinDate) {
		respondError(w, h.logger, http.StatusBadRequest, "checkin_date must be a valid date")
		return
	}
	if req.CheckoutDate != nil && !h.wireFormat.IsValid(*req.CheckoutDate) {
		respondError(w, h.logger, http.StatusBadRequest, "checkout_date must be a valid date")
		return
	}

	reservation, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, reservation)
}

// Delete handles DELETE /reservations/{id}
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /reservations with optional filters:
// ?property_id= lists a property's reservations,
// ?property_id=&check_in=&check_out= looks up one stay,
// ?guestId= lists a guest's reservations,
// ?from=&to= lists reservations checking in inside the window.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if propertyID := query.Get("property_id"); propertyID != "" {
		checkin := query.Get("check_in")
		checkout := query.Get("check_out")
		if checkin == "" && checkout == "" {
			reservations, err := h.repo.ListByProperty(r.Context(), propertyID)
			if err != nil {
				respondAppError(w, h.logger, err)
				return
			}
			respondJSON(w, h.logger, http.StatusOK, reservations)
			return
		}
		if !h.wireFormat.IsValid(checkin) || !h.wireFormat.IsValid(checkout) {
			respondError(w, h.logger, http.StatusBadRequest, "check_in and check_out must be valid dates")
			return
		}
		reservation, err := h.repo.GetByPropertyAndDates(r.Context(), propertyID, checkin, checkout)
		if err != nil {
			respondAppError(w, h.logger, err)
			return
		}
		if reservation == nil {
			respondError(w, h.logger, http.StatusNotFound, "reservation not found")
			return
		}
		respondJSON(w, h.logger, http.StatusOK, reservation)
		return
	}

	if guestID := query.Get("guestId"); guestID != "" {
		reservations, err := h.repo.ListByGuest(r.Context(), guestID)
		if err != nil {
			respondAppError(w, h.logger, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, reservations)
		return
	}

	if from, to := query.Get("from"), query.Get("to"); from != "" || to != "" {
		if !h.wireFormat.IsValid(from) || !h.wireFormat.IsValid(to) {
			respondError(w, h.logger, http.StatusBadRequest, "from and to must be valid dates")
			return
		}
		reservations, err := h.repo.ListByDateRange(r.Context(), from, to)
		if err != nil {
			respondAppError(w, h.logger, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, reservations)
		return
	}

	reservations, err := h.repo.List(r.Context())
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, reservations)
}
