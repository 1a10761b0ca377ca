package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/middlewares"
	"github.com/sbilibin2017/gw-bookshelf/internal/password"
	"github.com/sbilibin2017/gw-bookshelf/internal/repositories"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
	"github.com/sbilibin2017/gw-bookshelf/internal/validation"
)

var validate = validation.New()

// ErrorResponse is the body of every non-2xx answer.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
	// Per-field validation messages
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse is a plain acknowledgement.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps service and storage errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: verr.Fields})
		return
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrBookNotFound),
		errors.Is(err, services.ErrReviewNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicateISBN),
		errors.Is(err, services.ErrAlreadyReviewed):
		writeErrorMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrPasswordUnchanged),
		errors.Is(err, services.ErrInvalidReference),
		errors.Is(err, password.ErrTooShort),
		errors.Is(err, password.ErrTooLong):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrConstraintViolation):
		writeErrorMessage(w, http.StatusBadRequest, "request violates a data constraint")
	case errors.Is(err, repositories.ErrTransient):
		logger.Log.Errorw("storage unavailable", "err", err)
		writeErrorMessage(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeErrorMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON decodes and validates a request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Validate(dst); err != nil {
		writeError(w, err)
		return false
	}
	return true
}

func principal(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.PrincipalFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "unauthorized")
	}
	return userID, ok
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
