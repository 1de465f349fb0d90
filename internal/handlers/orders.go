package handlers

import (
	"context"
	"net/http"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrdersHandler struct {
	orders   domain.OrderService
	disputes domain.DisputeService
	logger   *zap.Logger
}

func NewOrdersHandler(orders domain.OrderService, disputes domain.DisputeService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orders:   orders,
		disputes: disputes,
		logger:   logger,
	}
}

type checkoutItem struct {
	ListingID      uuid.UUID `json:"listing_id"`
	Title          string    `json:"title"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type checkoutRequest struct {
	SellerID uuid.UUID      `json:"seller_id"`
	Currency string         `json:"currency"`
	Items    []checkoutItem `json:"items"`
}

func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	input := domain.CheckoutInput{
		BuyerID:  userID,
		SellerID: req.SellerID,
		Currency: req.Currency,
		Items:    make([]domain.OrderItem, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		input.Items = append(input.Items, domain.OrderItem{
			ListingID:      it.ListingID,
			Title:          it.Title,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
		})
	}

	order, err := h.orders.CreateOrder(r.Context(), input)
	if err != nil {
		writeError(w, r, h.logger, "failed to create order", err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, order)
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	orderID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.orders.GetOrder(r.Context(), orderID, userID)
	if err != nil {
		writeError(w, r, h.logger, "failed to get order", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

type orderAction func(ctx context.Context, orderID, userID uuid.UUID) (*domain.Order, error)

// action общий обработчик переходов заказа, инициированных участником
func (h *OrdersHandler) action(name string, fn orderAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r.Context())
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		orderID, ok := pathID(r, "id")
		if !ok {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		order, err := fn(r.Context(), orderID, userID)
		if err != nil {
			writeError(w, r, h.logger, "failed to "+name+" order", err)
			return
		}

		writeJSON(w, h.logger, http.StatusOK, order)
	}
}

func (h *OrdersHandler) Ship() http.HandlerFunc    { return h.action("ship", h.orders.MarkShipped) }
func (h *OrdersHandler) Deliver() http.HandlerFunc { return h.action("deliver", h.orders.MarkDelivered) }
func (h *OrdersHandler) Confirm() http.HandlerFunc { return h.action("confirm", h.orders.ConfirmReceipt) }
func (h *OrdersHandler) Cancel() http.HandlerFunc  { return h.action("cancel", h.orders.CancelOrder) }

type disputeRequest struct {
	Reason string `json:"reason"`
}

func (h *OrdersHandler) OpenDispute(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	orderID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req disputeRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	dispute, err := h.disputes.OpenDispute(r.Context(), orderID, userID, req.Reason)
	if err != nil {
		writeError(w, r, h.logger, "failed to open dispute", err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, dispute)
}
