// Package handlers implements the REST endpoints for the entity
// collections.
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	appErrors "hai-backend/pkg/errors"
)

func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}

// respondAppError maps an error from the application layer to its HTTP
// status. Internal causes are logged but not leaked to the client.
func respondAppError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := appErrors.HTTPStatus(err)
	message := err.Error()
	if appErr := appErrors.GetAppError(err); appErr != nil {
		message = appErr.Message
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", zap.Error(err))
		message = "Internal server error"
		if appErrors.IsStoreUnavailable(err) {
			message = "Service temporarily unavailable"
		}
	}
	respondError(w, logger, status, message)
}
