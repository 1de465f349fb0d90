package handlers

import (
	"net/http"

	"github.com/avc/marketplace-escrow/internal/domain"
	"go.uber.org/zap"
)

type PayoutsHandler struct {
	payouts domain.PayoutService
	logger  *zap.Logger
}

func NewPayoutsHandler(payouts domain.PayoutService, logger *zap.Logger) *PayoutsHandler {
	return &PayoutsHandler{
		payouts: payouts,
		logger:  logger,
	}
}

type payoutRequest struct {
	AmountCents     int64  `json:"amount_cents"`
	PixKey          string `json:"pix_key"`
	BeneficiaryName string `json:"beneficiary_name"`
}

// RequestPayout создает черновик и отправляет коды на почту и телефон
func (h *PayoutsHandler) RequestPayout(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req payoutRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	draft, err := h.payouts.RequestPayout(r.Context(), userID, req.AmountCents, domain.PayoutDestination{
		PixKey:          req.PixKey,
		BeneficiaryName: req.BeneficiaryName,
	})
	if err != nil {
		writeError(w, r, h.logger, "failed to request payout", err)
		return
	}

	writeJSON(w, h.logger, http.StatusAccepted, draft)
}

type confirmPayoutRequest struct {
	EmailCode string `json:"email_code"`
	SMSCode   string `json:"sms_code"`
}

// ConfirmPayout проверяет оба кода и ставит выплату в очередь
func (h *PayoutsHandler) ConfirmPayout(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	draftID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req confirmPayoutRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	payout, err := h.payouts.ConfirmPayout(r.Context(), userID, draftID, req.EmailCode, req.SMSCode)
	if err != nil {
		writeError(w, r, h.logger, "failed to confirm payout", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, payout)
}

func (h *PayoutsHandler) ListPayouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	payouts, err := h.payouts.ListPayouts(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, "failed to list payouts", err)
		return
	}

	if len(payouts) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, payouts)
}
