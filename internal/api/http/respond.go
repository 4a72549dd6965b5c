package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/logger"
	"arenahub-backend/internal/security"
	"arenahub-backend/internal/service"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// errorKind maps a domain error to its HTTP status and a stable
// machine-readable code. Each failure kind stays distinct so the client can
// render precise feedback.
func errorKind(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid_amount"
	case errors.Is(err, domain.ErrUnknownMember):
		return http.StatusBadRequest, "unknown_member"
	case errors.Is(err, domain.ErrSelfRequest):
		return http.StatusBadRequest, "self_request"
	case errors.Is(err, domain.ErrEmptyContent):
		return http.StatusBadRequest, "empty_content"
	case errors.Is(err, domain.ErrUnauthorizedActor):
		return http.StatusForbidden, "unauthorized_actor"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrAlreadyResolved):
		return http.StatusConflict, "already_resolved"
	case errors.Is(err, domain.ErrDuplicateRequest):
		return http.StatusConflict, "duplicate_request"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict, "insufficient_funds"
	case errors.Is(err, domain.ErrNegativeBalance):
		return http.StatusConflict, "negative_balance"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		return http.StatusUnauthorized, "invalid_token"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, code := errorKind(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		msg = "internal server error"
	}
	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}
