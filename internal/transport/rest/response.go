package rest

import (
	"encoding/json"
	"net/http"

	"github.com/campusshare/roommate-backend/internal/domain"
)

// Error reason codes returned in the "error" field.
const (
	codeUnauthorized          = "unauthorized"
	codeValidation            = "validation_error"
	codeNoActiveProfile       = "no_active_profile"
	codeInvalidProfile        = "invalid_profile"
	codeRepositoryUnavailable = "repository_unavailable"
	codeInternal              = "internal_error"
)

type errorResponse struct {
	Error   string          `json:"error"`
	Message string          `json:"message,omitempty"`
	Fields  []fieldErrorDTO `json:"fields,omitempty"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func writeValidationError(w http.ResponseWriter, ve *domain.ValidationError) {
	fields := make([]fieldErrorDTO, len(ve.Errors))
	for i, fe := range ve.Errors {
		fields[i] = fieldErrorDTO{Field: fe.Field, Message: fe.Message}
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: codeValidation, Fields: fields})
}
