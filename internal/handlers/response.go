package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// retryAfterSeconds подсказка клиенту при временном сбое
const retryAfterSeconds = "1"

// statusFor сопоставляет доменную ошибку с HTTP статусом
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrTransient):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidVerificationCode), errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrExpired):
		return http.StatusGone
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrUnsupportedOperation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDuplicateEvent):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError отвечает статусом по категории ошибки.
// Внутренние ошибки логируются, детали клиенту не отдаются.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, msg string, err error) {
	status := statusFor(err)
	requestID, _ := r.Context().Value(RequestIDKey).(string)

	switch status {
	case http.StatusInternalServerError:
		logger.Error(msg, zap.String("request_id", requestID), zap.Error(err))
	case http.StatusServiceUnavailable:
		logger.Warn(msg, zap.String("request_id", requestID), zap.Error(err))
		w.Header().Set("Retry-After", retryAfterSeconds)
	default:
		logger.Debug(msg, zap.String("request_id", requestID), zap.Error(err))
	}

	http.Error(w, http.StatusText(status), status)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// decodeJSON читает тело запроса, неизвестные поля отклоняются
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// pathID разбирает uuid из параметра маршрута
func pathID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
