// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/balades/internal/logging"
	"github.com/tomtom215/balades/internal/models"
)

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeInvalidID          = "INVALID_ID"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeDatabaseError      = "DATABASE_ERROR"
)

// User-facing messages.
const (
	msgInvalidID        = "ID invalide"
	msgNotFound         = "Balade not found"
	msgDuplicateKeyword = "Mot clé déjà présent"
	msgServerError      = "Server error"

	msgKeywordAdded = "Mot clé ajouté avec succès"
	msgRenamed      = "Mise à jour réussie"
	msgDeleted      = "Balade deleted successfully"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// respondJSON writes v as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes an ErrorResponse carrying the request id.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	respondJSON(w, status, &ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
}

// writeServiceError maps an error from the service or the request decoder
// to a response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var bodyErr *bodyError

	switch {
	case errors.As(err, &bodyErr):
		respondError(w, r, bodyErr.status, ErrCodeBadRequest, bodyErr.Error())
	case errors.Is(err, models.ErrInvalidID):
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidID, msgInvalidID)
	case errors.Is(err, models.ErrValidation):
		respondError(w, r, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
	case errors.Is(err, models.ErrNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, msgNotFound)
	case errors.Is(err, models.ErrDuplicateKeyword):
		respondError(w, r, http.StatusConflict, ErrCodeConflict, msgDuplicateKeyword)
	default:
		logging.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabaseError, msgServerError)
	}
}
