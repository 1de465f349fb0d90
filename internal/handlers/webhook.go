package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/avc/marketplace-escrow/internal/domain"
	"go.uber.org/zap"
)

const (
	signatureHeader = "X-Signature"
	eventIDHeader   = "X-Event-ID"
	signaturePrefix = "sha256="
	maxWebhookBody  = 1 << 20
)

// WebhookHandler принимает события провайдера платежей
type WebhookHandler struct {
	intake domain.WebhookIntake
	secret []byte
	logger *zap.Logger
}

// NewWebhookHandler создает новый WebhookHandler
func NewWebhookHandler(intake domain.WebhookIntake, secret string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		intake: intake,
		secret: []byte(secret),
		logger: logger,
	}
}

// Sign вычисляет значение заголовка подписи для тела
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

func (h *WebhookHandler) verify(header string, body []byte) error {
	if !strings.HasPrefix(header, signaturePrefix) {
		return domain.ErrInvalidSignature
	}
	got, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return domain.ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return domain.ErrInvalidSignature
	}
	return nil
}

// Payments принимает событие об оплате.
// 202 событие принято, 200 дубликат, 400 некорректное тело, 401 неверная подпись.
func (h *WebhookHandler) Payments(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.verify(r.Header.Get(signatureHeader), body); err != nil {
		h.logger.Warn("webhook rejected", zap.Error(err), zap.String("remote_addr", r.RemoteAddr))
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	providerEventID := r.Header.Get(eventIDHeader)
	result, err := h.intake.Ingest(r.Context(), providerEventID, body)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedPayload) {
			h.logger.Warn("malformed webhook payload", zap.String("provider_event_id", providerEventID), zap.Error(err))
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		writeError(w, r, h.logger, "failed to ingest webhook", err)
		return
	}

	switch result {
	case domain.IngestAccepted:
		w.WriteHeader(http.StatusAccepted)
	case domain.IngestDuplicate:
		w.WriteHeader(http.StatusOK)
	default:
		http.Error(w, "Bad Request", http.StatusBadRequest)
	}
}
