package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/avc/marketplace-escrow/internal/domain"
	"go.uber.org/zap"
)

// AdminHandler операции администратора: споры и ручные расчеты
type AdminHandler struct {
	settlement domain.SettlementService
	disputes   domain.DisputeService
	logger     *zap.Logger
}

func NewAdminHandler(settlement domain.SettlementService, disputes domain.DisputeService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		settlement: settlement,
		disputes:   disputes,
		logger:     logger,
	}
}

type resolveRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

// decodeReason читает необязательное тело с причиной
func decodeReason(r *http.Request) (string, error) {
	var req reasonRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return req.Reason, nil
}

func (h *AdminHandler) StartReview(w http.ResponseWriter, r *http.Request) {
	adminID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	disputeID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	dispute, err := h.disputes.StartReview(r.Context(), disputeID, adminID)
	if err != nil {
		writeError(w, r, h.logger, "failed to start dispute review", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dispute)
}

func (h *AdminHandler) ResolveDispute(w http.ResponseWriter, r *http.Request) {
	adminID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	disputeID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req resolveRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	action, err := domain.ParseResolveAction(req.Action)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	dispute, err := h.disputes.Resolve(r.Context(), disputeID, adminID, action, req.Reason)
	if err != nil {
		writeError(w, r, h.logger, "failed to resolve dispute", err)
		return
	}

	h.logger.Info("dispute resolved",
		zap.String("dispute_id", disputeID.String()),
		zap.String("user_id", adminID.String()),
		zap.String("action", string(action)),
	)
	writeJSON(w, h.logger, http.StatusOK, dispute)
}

// ReleaseOrder выплачивает продавцу до подтверждения доставки
func (h *AdminHandler) ReleaseOrder(w http.ResponseWriter, r *http.Request) {
	adminID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	orderID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	reason, err := decodeReason(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.settlement.ReleaseOrder(r.Context(), orderID, adminID, reason, domain.ReleaseOptions{
		AdminOverride: true,
		Trigger:       domain.EventAdminRelease,
	})
	if err != nil {
		writeError(w, r, h.logger, "failed to release order", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

func (h *AdminHandler) RefundOrder(w http.ResponseWriter, r *http.Request) {
	adminID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	orderID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	reason, err := decodeReason(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.settlement.RefundOrder(r.Context(), orderID, adminID, reason)
	if err != nil {
		writeError(w, r, h.logger, "failed to refund order", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}
