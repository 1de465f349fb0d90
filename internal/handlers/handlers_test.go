package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc/marketplace-escrow/internal/domain"
	domainmocks "github.com/avc/marketplace-escrow/internal/domain/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testUserID  = uuid.MustParse("0b7e4f3a-2c1d-4a5b-8e9f-1a2b3c4d5e6f")
	testOrderID = uuid.MustParse("9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a")
)

// authed добавляет пользователя и параметры маршрута в запрос
func authed(req *http.Request, params map[string]string) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, testUserID)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestWebhookHandler_Payments(t *testing.T) {
	secret := "whsec_test"
	body := []byte(`{"event_id":"evt_1","type":"payment.confirmed","order_id":"` + testOrderID.String() + `","transaction_ref":"pay_1","amount_cents":15900,"currency":"BRL"}`)

	newRequest := func(signature string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payments", bytes.NewReader(body))
		req.Header.Set(signatureHeader, signature)
		req.Header.Set(eventIDHeader, "evt_1")
		return req
	}

	tests := []struct {
		name       string
		signature  string
		result     domain.IngestResult
		err        error
		callIngest bool
		wantStatus int
	}{
		{name: "Accepted", signature: Sign([]byte(secret), body), result: domain.IngestAccepted, callIngest: true, wantStatus: http.StatusAccepted},
		{name: "Duplicate", signature: Sign([]byte(secret), body), result: domain.IngestDuplicate, callIngest: true, wantStatus: http.StatusOK},
		{name: "Malformed payload", signature: Sign([]byte(secret), body), result: domain.IngestRejected, err: domain.ErrMalformedPayload, callIngest: true, wantStatus: http.StatusBadRequest},
		{name: "Transient failure", signature: Sign([]byte(secret), body), err: fmt.Errorf("webhook service: %w", domain.ErrTransient), callIngest: true, wantStatus: http.StatusServiceUnavailable},
		{name: "Wrong secret", signature: Sign([]byte("other"), body), wantStatus: http.StatusUnauthorized},
		{name: "Missing signature", signature: "", wantStatus: http.StatusUnauthorized},
		{name: "Not hex", signature: "sha256=zz", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intake := domainmocks.NewWebhookIntakeMock(t)
			handler := NewWebhookHandler(intake, secret, zap.NewNop())
			if tt.callIngest {
				intake.EXPECT().Ingest(mock.Anything, "evt_1", body).Return(tt.result, tt.err).Once()
			}

			w := httptest.NewRecorder()
			handler.Payments(w, newRequest(tt.signature))
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusServiceUnavailable {
				assert.Equal(t, retryAfterSeconds, w.Header().Get("Retry-After"))
			}
		})
	}
}

func TestOrdersHandler_CreateOrder(t *testing.T) {
	orders := domainmocks.NewOrderServiceMock(t)
	handler := NewOrdersHandler(orders, domainmocks.NewDisputeServiceMock(t), zap.NewNop())
	sellerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		listingID := uuid.New()
		created := &domain.Order{ID: testOrderID, BuyerID: testUserID, SellerID: sellerID, Status: domain.OrderStatusAwaitingPayment, TotalAmountCents: 15900, Currency: "BRL"}
		orders.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(in domain.CheckoutInput) bool {
			return in.BuyerID == testUserID && in.SellerID == sellerID && len(in.Items) == 1 &&
				in.Items[0].ListingID == listingID && in.Items[0].UnitPriceCents == 15900
		})).Return(created, nil).Once()

		body := fmt.Sprintf(`{"seller_id":%q,"currency":"BRL","items":[{"listing_id":%q,"title":"Camera","quantity":1,"unit_price_cents":15900}]}`, sellerID, listingID)
		req := authed(httptest.NewRequest(http.MethodPost, "/api/user/orders", bytes.NewBufferString(body)), nil)
		w := httptest.NewRecorder()

		handler.CreateOrder(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var got domain.Order
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, testOrderID, got.ID)
		assert.Equal(t, domain.OrderStatusAwaitingPayment, got.Status)
	})

	t.Run("Validation error", func(t *testing.T) {
		orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("order service: %w", domain.ErrInvalidInput)).Once()

		req := authed(httptest.NewRequest(http.MethodPost, "/api/user/orders", bytes.NewBufferString(`{"items":[]}`)), nil)
		w := httptest.NewRecorder()

		handler.CreateOrder(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown field", func(t *testing.T) {
		req := authed(httptest.NewRequest(http.MethodPost, "/api/user/orders", bytes.NewBufferString(`{"buyer_id":"x"}`)), nil)
		w := httptest.NewRecorder()

		handler.CreateOrder(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unauthorized - no user ID in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/orders", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()

		handler.CreateOrder(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOrdersHandler_Actions(t *testing.T) {
	orders := domainmocks.NewOrderServiceMock(t)
	disputes := domainmocks.NewDisputeServiceMock(t)
	handler := NewOrdersHandler(orders, disputes, zap.NewNop())
	params := map[string]string{"id": testOrderID.String()}

	t.Run("Get not found", func(t *testing.T) {
		orders.EXPECT().GetOrder(mock.Anything, testOrderID, testUserID).Return(nil, domain.ErrOrderNotFound).Once()

		w := httptest.NewRecorder()
		handler.GetOrder(w, authed(httptest.NewRequest(http.MethodGet, "/", nil), params))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetOrder(w, authed(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Ship", func(t *testing.T) {
		orders.EXPECT().MarkShipped(mock.Anything, testOrderID, testUserID).
			Return(&domain.Order{ID: testOrderID, Status: domain.OrderStatusInDelivery}, nil).Once()

		w := httptest.NewRecorder()
		handler.Ship()(w, authed(httptest.NewRequest(http.MethodPost, "/", nil), params))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Confirm receipt on wrong status", func(t *testing.T) {
		orders.EXPECT().ConfirmReceipt(mock.Anything, testOrderID, testUserID).
			Return(nil, &domain.TransitionError{Entity: "order", From: "PAID", Event: "confirm_receipt"}).Once()

		w := httptest.NewRecorder()
		handler.Confirm()(w, authed(httptest.NewRequest(http.MethodPost, "/", nil), params))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Cancel by stranger", func(t *testing.T) {
		orders.EXPECT().CancelOrder(mock.Anything, testOrderID, testUserID).Return(nil, domain.ErrForbidden).Once()

		w := httptest.NewRecorder()
		handler.Cancel()(w, authed(httptest.NewRequest(http.MethodPost, "/", nil), params))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Deliver transient", func(t *testing.T) {
		orders.EXPECT().MarkDelivered(mock.Anything, testOrderID, testUserID).
			Return(nil, fmt.Errorf("repository: %w", domain.ErrTransient)).Once()

		w := httptest.NewRecorder()
		handler.Deliver()(w, authed(httptest.NewRequest(http.MethodPost, "/", nil), params))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("Open dispute", func(t *testing.T) {
		disputes.EXPECT().OpenDispute(mock.Anything, testOrderID, testUserID, "item damaged").
			Return(&domain.Dispute{ID: uuid.New(), OrderID: testOrderID, Status: domain.DisputeStatusOpen}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"reason":"item damaged"}`))
		w := httptest.NewRecorder()
		handler.OpenDispute(w, authed(req, params))
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestAdminHandler(t *testing.T) {
	settlement := domainmocks.NewSettlementServiceMock(t)
	disputes := domainmocks.NewDisputeServiceMock(t)
	handler := NewAdminHandler(settlement, disputes, zap.NewNop())
	disputeID := uuid.New()

	t.Run("Resolve refund", func(t *testing.T) {
		disputes.EXPECT().Resolve(mock.Anything, disputeID, testUserID, domain.ResolveActionRefund, "seller silent").
			Return(&domain.Dispute{ID: disputeID, Status: domain.DisputeStatusResolved}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"action":"REFUND","reason":"seller silent"}`))
		w := httptest.NewRecorder()
		handler.ResolveDispute(w, authed(req, map[string]string{"id": disputeID.String()}))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Resolve partial is unsupported", func(t *testing.T) {
		disputes.EXPECT().Resolve(mock.Anything, disputeID, testUserID, domain.ResolveActionPartial, "").
			Return(nil, domain.ErrPartialResolutionUnsupported).Once()

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"action":"partial"}`))
		w := httptest.NewRecorder()
		handler.ResolveDispute(w, authed(req, map[string]string{"id": disputeID.String()}))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Resolve twice", func(t *testing.T) {
		disputes.EXPECT().Resolve(mock.Anything, disputeID, testUserID, domain.ResolveActionRelease, "").
			Return(nil, domain.ErrDisputeNotResolvable).Once()

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"action":"release"}`))
		w := httptest.NewRecorder()
		handler.ResolveDispute(w, authed(req, map[string]string{"id": disputeID.String()}))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Resolve unknown action", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"action":"burn"}`))
		w := httptest.NewRecorder()
		handler.ResolveDispute(w, authed(req, map[string]string{"id": disputeID.String()}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Start review", func(t *testing.T) {
		disputes.EXPECT().StartReview(mock.Anything, disputeID, testUserID).
			Return(&domain.Dispute{ID: disputeID, Status: domain.DisputeStatusReview}, nil).Once()

		w := httptest.NewRecorder()
		handler.StartReview(w, authed(httptest.NewRequest(http.MethodPost, "/", nil), map[string]string{"id": disputeID.String()}))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Release with override and empty body", func(t *testing.T) {
		settlement.EXPECT().ReleaseOrder(mock.Anything, testOrderID, testUserID, "", domain.ReleaseOptions{
			AdminOverride: true,
			Trigger:       domain.EventAdminRelease,
		}).Return(&domain.Order{ID: testOrderID, Status: domain.OrderStatusCompleted}, nil).Once()

		w := httptest.NewRecorder()
		handler.ReleaseOrder(w, authed(httptest.NewRequest(http.MethodPost, "/", http.NoBody), map[string]string{"id": testOrderID.String()}))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Release disputed order", func(t *testing.T) {
		settlement.EXPECT().ReleaseOrder(mock.Anything, testOrderID, testUserID, "override", mock.Anything).
			Return(nil, domain.ErrOrderDisputed).Once()

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"reason":"override"}`))
		w := httptest.NewRecorder()
		handler.ReleaseOrder(w, authed(req, map[string]string{"id": testOrderID.String()}))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Refund", func(t *testing.T) {
		settlement.EXPECT().RefundOrder(mock.Anything, testOrderID, testUserID, "fraud").
			Return(&domain.Order{ID: testOrderID, Status: domain.OrderStatusRefunded}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"reason":"fraud"}`))
		w := httptest.NewRecorder()
		handler.RefundOrder(w, authed(req, map[string]string{"id": testOrderID.String()}))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPayoutsHandler(t *testing.T) {
	payouts := domainmocks.NewPayoutServiceMock(t)
	handler := NewPayoutsHandler(payouts, zap.NewNop())
	draftID := uuid.New()
	dest := domain.PayoutDestination{PixKey: "seller@example.com", BeneficiaryName: "Ana Souza"}

	t.Run("Request", func(t *testing.T) {
		payouts.EXPECT().RequestPayout(mock.Anything, testUserID, int64(10000), dest).
			Return(&domain.PayoutDraft{ID: draftID, Status: domain.DraftStatusPending}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"amount_cents":10000,"pix_key":"seller@example.com","beneficiary_name":"Ana Souza"}`))
		w := httptest.NewRecorder()
		handler.RequestPayout(w, authed(req, nil))
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("Request with insufficient balance", func(t *testing.T) {
		payouts.EXPECT().RequestPayout(mock.Anything, testUserID, int64(99999), dest).
			Return(nil, domain.ErrInsufficientBalance).Once()

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"amount_cents":99999,"pix_key":"seller@example.com","beneficiary_name":"Ana Souza"}`))
		w := httptest.NewRecorder()
		handler.RequestPayout(w, authed(req, nil))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	confirmTests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "Confirmed", wantStatus: http.StatusOK},
		{name: "Wrong code", err: domain.ErrInvalidVerificationCode, wantStatus: http.StatusForbidden},
		{name: "Expired", err: domain.ErrDraftExpired, wantStatus: http.StatusGone},
		{name: "Already confirmed", err: domain.ErrDraftNotPending, wantStatus: http.StatusConflict},
		{name: "Unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range confirmTests {
		t.Run("Confirm "+tt.name, func(t *testing.T) {
			var payout *domain.Payout
			if tt.err == nil {
				payout = &domain.Payout{ID: uuid.New(), DraftID: draftID, Status: domain.PayoutStatusQueued}
			}
			payouts.EXPECT().ConfirmPayout(mock.Anything, testUserID, draftID, "111111", "222222").Return(payout, tt.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"email_code":"111111","sms_code":"222222"}`))
			w := httptest.NewRecorder()
			handler.ConfirmPayout(w, authed(req, map[string]string{"id": draftID.String()}))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("List empty", func(t *testing.T) {
		payouts.EXPECT().ListPayouts(mock.Anything, testUserID).Return(nil, nil).Once()

		w := httptest.NewRecorder()
		handler.ListPayouts(w, authed(httptest.NewRequest(http.MethodGet, "/", nil), nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestBalanceHandler(t *testing.T) {
	balances := domainmocks.NewBalanceServiceMock(t)
	handler := NewBalanceHandler(balances, zap.NewNop())

	t.Run("Balance", func(t *testing.T) {
		balances.EXPECT().GetBalance(mock.Anything, testUserID).
			Return(&domain.Balance{Currency: "BRL", HeldCents: 100, AvailableCents: 200, ReversedCents: 50}, nil).Once()

		w := httptest.NewRecorder()
		handler.GetBalance(w, authed(httptest.NewRequest(http.MethodGet, "/api/user/balance", nil), nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"currency":"BRL","held":100,"available":200,"reversed":50}`, w.Body.String())
	})

	t.Run("Ledger", func(t *testing.T) {
		balances.EXPECT().ListEntries(mock.Anything, testUserID).
			Return([]*domain.LedgerEntry{{ID: uuid.New(), Type: domain.EntryTypeCredit, AmountCents: 100}}, nil).Once()

		w := httptest.NewRecorder()
		handler.ListEntries(w, authed(httptest.NewRequest(http.MethodGet, "/api/user/ledger", nil), nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetBalance(w, httptest.NewRequest(http.MethodGet, "/api/user/balance", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	ok := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("down") })

	t.Run("Healthy", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewHealthHandler(ok, ok, zap.NewNop()).Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","database":"ok","cache":"ok"}`, w.Body.String())
	})

	t.Run("Cache down", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewHealthHandler(ok, down, zap.NewNop()).Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Not ready", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewHealthHandler(down, nil, zap.NewNop()).Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
