package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentPayload(t *testing.T, eventID string, order *domain.Order, ref string, amount int64) []byte {
	t.Helper()
	payload, err := json.Marshal(domain.PaymentEvent{
		EventID:        eventID,
		Type:           domain.PaymentEventConfirmed,
		TransactionRef: ref,
		OrderID:        order.ID,
		AmountCents:    amount,
		Currency:       order.Currency,
		OccurredAt:     time.Date(2024, 3, 1, 12, 5, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return payload
}

// ingestAndProcess принимает событие и обрабатывает его как воркер
func (f *escrowFixture) ingestAndProcess(t *testing.T, eventID string, payload []byte) domain.IngestResult {
	t.Helper()
	ctx := context.Background()
	before := len(f.dispatcher.ids)

	result, err := f.webhooks.Ingest(ctx, eventID, payload)
	require.NoError(t, err)

	for _, id := range f.dispatcher.ids[before:] {
		require.NoError(t, f.webhooks.ProcessEvent(ctx, id))
	}
	return result
}

func (f *escrowFixture) webhookByProviderID(providerEventID string) domain.WebhookEvent {
	for _, e := range f.store.webhooks {
		if e.ProviderEventID == providerEventID {
			return e
		}
	}
	return domain.WebhookEvent{}
}

func TestWebhookService_Ingest(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted event is stored and enqueued", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)

		result, err := f.webhooks.Ingest(ctx, "evt_1", paymentPayload(t, "evt_1", order, "tx_1", 15900))
		require.NoError(t, err)
		assert.Equal(t, domain.IngestAccepted, result)

		stored := f.webhookByProviderID("evt_1")
		assert.Equal(t, domain.WebhookStatusPending, stored.Status)
		assert.Equal(t, "tx_1", stored.PaymentRef)
		assert.Equal(t, []uuid.UUID{stored.ID}, f.dispatcher.ids)

		// До обработки воркером журнал не меняется
		assert.Empty(t, f.store.entries)
		assert.Equal(t, domain.OrderStatusAwaitingPayment, f.order(order.ID).Status)
	})

	t.Run("Provider id falls back to payload", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)

		result, err := f.webhooks.Ingest(ctx, "", paymentPayload(t, "evt_body", order, "tx_1", 15900))
		require.NoError(t, err)
		assert.Equal(t, domain.IngestAccepted, result)
		assert.Equal(t, "evt_body", f.webhookByProviderID("evt_body").ProviderEventID)
	})

	t.Run("Replay returns duplicate without ledger mutation", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)
		payload := paymentPayload(t, "evt_1", order, "tx_1", 15900)

		assert.Equal(t, domain.IngestAccepted, f.ingestAndProcess(t, "evt_1", payload))
		entries := len(f.store.entries)
		events := len(f.store.events)

		assert.Equal(t, domain.IngestDuplicate, f.ingestAndProcess(t, "evt_1", payload))
		assert.Len(t, f.store.entries, entries)
		assert.Len(t, f.store.events, events)
		assert.Len(t, f.store.webhooks, 1)
		assert.Len(t, f.dispatcher.ids, 1)
	})

	t.Run("Malformed payload is rejected", func(t *testing.T) {
		f := newEscrowFixture()

		result, err := f.webhooks.Ingest(ctx, "evt_1", []byte("{not json"))
		assert.ErrorIs(t, err, domain.ErrMalformedPayload)
		assert.Equal(t, domain.IngestRejected, result)
		assert.Empty(t, f.store.webhooks)
	})

	t.Run("Payment without order is rejected", func(t *testing.T) {
		f := newEscrowFixture()

		result, err := f.webhooks.Ingest(ctx, "evt_1", []byte(`{"type":"payment.confirmed","transaction_ref":"tx_1"}`))
		assert.ErrorIs(t, err, domain.ErrMalformedPayload)
		assert.Equal(t, domain.IngestRejected, result)
	})

	t.Run("Missing event id is rejected", func(t *testing.T) {
		f := newEscrowFixture()

		result, err := f.webhooks.Ingest(ctx, "", []byte(`{"type":"payment.refunded"}`))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, domain.IngestRejected, result)
	})

	t.Run("Other event types are recorded as skipped", func(t *testing.T) {
		f := newEscrowFixture()

		result, err := f.webhooks.Ingest(ctx, "evt_9", []byte(`{"event_id":"evt_9","type":"payment.created"}`))
		require.NoError(t, err)
		assert.Equal(t, domain.IngestAccepted, result)
		assert.Equal(t, domain.WebhookStatusSkipped, f.webhookByProviderID("evt_9").Status)
		assert.Empty(t, f.dispatcher.ids)
	})

	t.Run("Full queue leaves event for the scanner", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)
		f.dispatcher.full = true

		result, err := f.webhooks.Ingest(ctx, "evt_1", paymentPayload(t, "evt_1", order, "tx_1", 15900))
		require.NoError(t, err)
		assert.Equal(t, domain.IngestAccepted, result)

		due, err := f.webhooks.ListDueEvents(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{f.webhookByProviderID("evt_1").ID}, due)
	})

	t.Run("Store failure surfaces as transient", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)
		f.store.failNext("Webhooks.Insert", domain.ErrTransient)

		result, err := f.webhooks.Ingest(ctx, "evt_1", paymentPayload(t, "evt_1", order, "tx_1", 15900))
		assert.ErrorIs(t, err, domain.ErrTransient)
		assert.Equal(t, domain.IngestRejected, result)
	})
}

func TestWebhookService_ProcessEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirms payment", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)

		f.ingestAndProcess(t, "evt_1", paymentPayload(t, "evt_1", order, "tx_1", 15900))

		assert.Equal(t, domain.OrderStatusPaid, f.order(order.ID).Status)
		assert.Equal(t, domain.Balance{Currency: "BRL", HeldCents: 15900}, f.balance(f.seller))

		stored := f.webhookByProviderID("evt_1")
		assert.Equal(t, domain.WebhookStatusProcessed, stored.Status)
		assert.NotNil(t, stored.ProcessedAt)
		assertReconciled(t, f, order.ID)
	})

	t.Run("Stale event after progress is a no-op", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.delivered(15900, "tx_1")

		f.ingestAndProcess(t, "evt_late", paymentPayload(t, "evt_late", order, "tx_1", 15900))

		stored := f.webhookByProviderID("evt_late")
		assert.Equal(t, domain.WebhookStatusProcessed, stored.Status)
		require.NotNil(t, stored.LastError)
		assert.Contains(t, *stored.LastError, "stale event")
		assert.Equal(t, domain.OrderStatusDelivered, f.order(order.ID).Status)
		assertReconciled(t, f, order.ID)
	})

	t.Run("Unknown order fails for reconciliation", func(t *testing.T) {
		f := newEscrowFixture()
		ghost := &domain.Order{ID: uuid.New(), Currency: "BRL"}

		f.ingestAndProcess(t, "evt_1", paymentPayload(t, "evt_1", ghost, "tx_1", 15900))

		stored := f.webhookByProviderID("evt_1")
		assert.Equal(t, domain.WebhookStatusFailed, stored.Status)
		require.NotNil(t, stored.LastError)
		assert.Contains(t, *stored.LastError, "not found")
		assert.Empty(t, f.store.entries)
	})

	t.Run("Amount mismatch fails for reconciliation", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)

		f.ingestAndProcess(t, "evt_1", paymentPayload(t, "evt_1", order, "tx_1", 100))

		assert.Equal(t, domain.WebhookStatusFailed, f.webhookByProviderID("evt_1").Status)
		assert.Equal(t, domain.OrderStatusAwaitingPayment, f.order(order.ID).Status)
		assert.Empty(t, f.store.entries)
	})

	t.Run("Payment for cancelled order fails for reconciliation", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)
		_, err := f.orders.CancelOrder(ctx, order.ID, f.buyer)
		require.NoError(t, err)

		f.ingestAndProcess(t, "evt_1", paymentPayload(t, "evt_1", order, "tx_1", 15900))

		assert.Equal(t, domain.WebhookStatusFailed, f.webhookByProviderID("evt_1").Status)
		assert.Empty(t, f.store.entries)
	})

	t.Run("Transient failure is retried inline", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)
		f.store.failNext("Ledger.Credit", domain.ErrTransient)

		f.ingestAndProcess(t, "evt_1", paymentPayload(t, "evt_1", order, "tx_1", 15900))

		assert.Equal(t, domain.WebhookStatusProcessed, f.webhookByProviderID("evt_1").Status)
		assert.Equal(t, 2, f.store.calls["Ledger.Credit"])
		assertReconciled(t, f, order.ID)
	})

	t.Run("Persistent transient failure is deferred then failed", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)

		_, err := f.webhooks.Ingest(ctx, "evt_1", paymentPayload(t, "evt_1", order, "tx_1", 15900))
		require.NoError(t, err)
		id := f.webhookByProviderID("evt_1").ID

		// Три попытки на каждый вызов ProcessEvent
		f.store.failNext("Ledger.Credit", domain.ErrTransient, domain.ErrTransient, domain.ErrTransient)
		err = f.webhooks.ProcessEvent(ctx, id)
		assert.ErrorIs(t, err, domain.ErrTransient)

		stored := f.store.webhooks[id]
		assert.Equal(t, domain.WebhookStatusPending, stored.Status)
		assert.Equal(t, 1, stored.Attempts)
		assert.True(t, stored.NextAttemptAt.After(f.clock.now()))
		assert.Empty(t, f.store.entries)

		due, err := f.webhooks.ListDueEvents(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, due)

		f.clock.advance(time.Minute)
		due, err = f.webhooks.ListDueEvents(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{id}, due)

		f.store.failNext("Ledger.Credit", domain.ErrTransient, domain.ErrTransient, domain.ErrTransient)
		require.Error(t, f.webhooks.ProcessEvent(ctx, id))
		assert.Equal(t, 2, f.store.webhooks[id].Attempts)

		f.store.failNext("Ledger.Credit", domain.ErrTransient, domain.ErrTransient, domain.ErrTransient)
		err = f.webhooks.ProcessEvent(ctx, id)
		assert.ErrorIs(t, err, domain.ErrPermanentRejection)
		assert.Equal(t, domain.WebhookStatusFailed, f.store.webhooks[id].Status)
		assert.Equal(t, domain.OrderStatusAwaitingPayment, f.order(order.ID).Status)
	})

	t.Run("Already processed event is skipped", func(t *testing.T) {
		f := newEscrowFixture()
		order := f.checkout(15900)
		f.ingestAndProcess(t, "evt_1", paymentPayload(t, "evt_1", order, "tx_1", 15900))
		id := f.webhookByProviderID("evt_1").ID
		entries := len(f.store.entries)

		require.NoError(t, f.webhooks.ProcessEvent(ctx, id))
		assert.Len(t, f.store.entries, entries)
	})

	t.Run("Unknown webhook event", func(t *testing.T) {
		f := newEscrowFixture()

		err := f.webhooks.ProcessEvent(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrWebhookNotFound)
	})
}
