package service

import (
	"context"
	"testing"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newEscrowFixture()

		order, err := f.orders.CreateOrder(ctx, domain.CheckoutInput{
			BuyerID:  f.buyer,
			SellerID: f.seller,
			Currency: "brl",
			Items: []domain.OrderItem{
				{ListingID: uuid.New(), Title: "lens", Quantity: 2, UnitPriceCents: 4500},
				{ListingID: uuid.New(), Title: "strap", Quantity: 1, UnitPriceCents: 6900},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, domain.OrderStatusAwaitingPayment, order.Status)
		assert.Equal(t, int64(15900), order.TotalAmountCents)
		assert.Equal(t, "BRL", order.Currency)
		require.NotNil(t, order.ExpiresAt)
		assert.Equal(t, f.clock.t.Add(30*time.Minute), *order.ExpiresAt)
		for _, item := range order.Items {
			assert.Equal(t, order.ID, item.OrderID)
			assert.NotEqual(t, uuid.Nil, item.ID)
		}

		require.Len(t, f.store.events, 1)
		assert.Equal(t, domain.OrderStatusCreated, f.store.events[0].FromStatus)
		assert.Equal(t, domain.OrderStatusAwaitingPayment, f.store.events[0].ToStatus)
		assert.Empty(t, f.store.entries)
	})

	tests := []struct {
		name  string
		input func(f *escrowFixture) domain.CheckoutInput
	}{
		{
			name: "No items",
			input: func(f *escrowFixture) domain.CheckoutInput {
				return domain.CheckoutInput{BuyerID: f.buyer, SellerID: f.seller}
			},
		},
		{
			name: "Buyer is seller",
			input: func(f *escrowFixture) domain.CheckoutInput {
				return domain.CheckoutInput{BuyerID: f.buyer, SellerID: f.buyer,
					Items: []domain.OrderItem{{Title: "x", Quantity: 1, UnitPriceCents: 100}}}
			},
		},
		{
			name: "Zero quantity",
			input: func(f *escrowFixture) domain.CheckoutInput {
				return domain.CheckoutInput{BuyerID: f.buyer, SellerID: f.seller,
					Items: []domain.OrderItem{{Title: "x", Quantity: 0, UnitPriceCents: 100}}}
			},
		},
		{
			name: "Negative price",
			input: func(f *escrowFixture) domain.CheckoutInput {
				return domain.CheckoutInput{BuyerID: f.buyer, SellerID: f.seller,
					Items: []domain.OrderItem{{Title: "x", Quantity: 1, UnitPriceCents: -100}}}
			},
		},
		{
			name: "Foreign currency",
			input: func(f *escrowFixture) domain.CheckoutInput {
				return domain.CheckoutInput{BuyerID: f.buyer, SellerID: f.seller, Currency: "USD",
					Items: []domain.OrderItem{{Title: "x", Quantity: 1, UnitPriceCents: 100}}}
			},
		},
		{
			name: "Missing seller",
			input: func(f *escrowFixture) domain.CheckoutInput {
				return domain.CheckoutInput{BuyerID: f.buyer,
					Items: []domain.OrderItem{{Title: "x", Quantity: 1, UnitPriceCents: 100}}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEscrowFixture()

			order, err := f.orders.CreateOrder(ctx, tt.input(f))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, order)
			assert.Empty(t, f.store.orders)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.Background()
	f := newEscrowFixture()
	order := f.checkout(15900)

	t.Run("Buyer and seller can read", func(t *testing.T) {
		for _, userID := range []uuid.UUID{f.buyer, f.seller} {
			result, err := f.orders.GetOrder(ctx, order.ID, userID)
			require.NoError(t, err)
			assert.Equal(t, order.ID, result.ID)
		}
	})

	t.Run("Stranger gets not found", func(t *testing.T) {
		_, err := f.orders.GetOrder(ctx, order.ID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("Missing order", func(t *testing.T) {
		_, err := f.orders.GetOrder(ctx, uuid.New(), f.buyer)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestOrderService_DeliveryActions(t *testing.T) {
	ctx := context.Background()

	t.Run("Ship and deliver", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.paid(15900, "pay_1")

		shipped, err := f.orders.MarkShipped(ctx, order.ID, f.seller)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusInDelivery, shipped.Status)

		delivered, err := f.orders.MarkDelivered(ctx, order.ID, f.seller)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusDelivered, delivered.Status)
		require.NotNil(t, delivered.DeliveredAt)
		assert.Equal(t, f.clock.t, *delivered.DeliveredAt)
	})

	t.Run("Buyer cannot ship", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.paid(15900, "pay_1")

		_, err := f.orders.MarkShipped(ctx, order.ID, f.buyer)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Equal(t, domain.OrderStatusPaid, f.order(order.ID).Status)
	})

	t.Run("Unpaid order cannot ship", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)

		_, err := f.orders.MarkShipped(ctx, order.ID, f.seller)
		assert.ErrorIs(t, err, domain.ErrInvalidOrderTransition)
	})

	t.Run("Seller cannot confirm receipt", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.delivered(15900, "pay_1")

		_, err := f.orders.ConfirmReceipt(ctx, order.ID, f.seller)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Equal(t, domain.OrderStatusDelivered, f.order(order.ID).Status)
	})

	t.Run("Receipt before delivery is rejected", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.paid(15900, "pay_1")

		_, err := f.orders.ConfirmReceipt(ctx, order.ID, f.buyer)
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assertReconciled(t, f, order.ID)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Buyer cancels unpaid order", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)

		result, err := f.orders.CancelOrder(ctx, order.ID, f.buyer)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, result.Status)
	})

	t.Run("Paid order cannot be cancelled", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.paid(15900, "pay_1")

		_, err := f.orders.CancelOrder(ctx, order.ID, f.buyer)
		assert.ErrorIs(t, err, domain.ErrInvalidOrderTransition)
		assertReconciled(t, f, order.ID)
	})

	t.Run("Seller cannot cancel", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)

		_, err := f.orders.CancelOrder(ctx, order.ID, f.seller)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestOrderService_ExpireUnpaidOrders(t *testing.T) {
	ctx := context.Background()
	f := newEscrowFixture()

	stale := f.checkout(15900)
	paid := f.paid(15900, "pay_1")
	f.clock.advance(31 * time.Minute)
	fresh := f.checkout(15900)

	n, err := f.orders.ExpireUnpaidOrders(ctx, f.clock.now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, domain.OrderStatusCancelled, f.order(stale.ID).Status)
	assert.Equal(t, domain.OrderStatusPaid, f.order(paid.ID).Status)
	assert.Equal(t, domain.OrderStatusAwaitingPayment, f.order(fresh.ID).Status)

	last := f.store.events[len(f.store.events)-1]
	assert.Equal(t, string(domain.EventExpire), last.Event)
	assert.Equal(t, domain.SystemActorID, last.ActorID)

	t.Run("Late payment after expiry is rejected", func(t *testing.T) {
		_, err := f.settlement.ConfirmPayment(ctx, stale.ID, "pay_late")
		assert.ErrorIs(t, err, domain.ErrInvalidOrderTransition)
		assertReconciled(t, f, stale.ID)
	})
}

func TestOrderService_AutoReleaseDelivered(t *testing.T) {
	ctx := context.Background()

	t.Run("Releases orders past the delay through settlement", func(t *testing.T) {
		f := newEscrowFixture()
		old := f.delivered(15900, "pay_old")
		f.clock.advance(48 * time.Hour)
		recent := f.delivered(10000, "pay_recent")
		f.clock.advance(25 * time.Hour)

		n, err := f.orders.AutoReleaseDelivered(ctx, f.clock.now())
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		assert.Equal(t, domain.OrderStatusCompleted, f.order(old.ID).Status)
		assert.Equal(t, domain.OrderStatusDelivered, f.order(recent.ID).Status)
		assertReconciled(t, f, old.ID)
		assertReconciled(t, f, recent.ID)

		assert.Equal(t, domain.Balance{Currency: "BRL", HeldCents: 10000, AvailableCents: 15900 - 1590}, f.balance(f.seller))
	})

	t.Run("Disputed order is left alone", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.delivered(15900, "pay_1")
		_, err := f.disputes.OpenDispute(ctx, order.ID, f.buyer, "broken")
		require.NoError(t, err)
		f.clock.advance(100 * time.Hour)

		n, err := f.orders.AutoReleaseDelivered(ctx, f.clock.now())
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, domain.OrderStatusDisputed, f.order(order.ID).Status)
	})

	t.Run("Failure of one order does not stop the sweep", func(t *testing.T) {
		f := newEscrowFixture()
		first := f.delivered(15900, "pay_1")
		second := f.delivered(15900, "pay_2")
		f.clock.advance(73 * time.Hour)
		f.store.failNext("Ledger.Transition", domain.ErrTransient)

		n, err := f.orders.AutoReleaseDelivered(ctx, f.clock.now())
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		completed := 0
		for _, id := range []uuid.UUID{first.ID, second.ID} {
			if f.order(id).Status == domain.OrderStatusCompleted {
				completed++
			}
			assertReconciled(t, f, id)
		}
		assert.Equal(t, 1, completed)
	})
}
