package handlers

import (
	"net/http"

	"github.com/avc/marketplace-escrow/internal/domain"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	balanceService domain.BalanceService
	logger         *zap.Logger
}

func NewBalanceHandler(balanceService domain.BalanceService, logger *zap.Logger) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		logger:         logger,
	}
}

func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, "failed to get balance", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, balance)
}

// ListEntries отдает историю проводок пользователя
func (h *BalanceHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.balanceService.ListEntries(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, "failed to list ledger entries", err)
		return
	}

	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, entries)
}
