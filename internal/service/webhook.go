package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// Dispatcher ставит принятое событие в очередь обработки
type Dispatcher interface {
	Enqueue(webhookEventID uuid.UUID) bool
}

// WebhookSettings параметры обработки вебхуков
type WebhookSettings struct {
	// MaxAttempts число отложенных попыток до перевода события в FAILED
	MaxAttempts int
	// InlineRetries повторы внутри одной обработки при временных сбоях
	InlineRetries uint64
	// RetryBaseDelay база экспоненциальной задержки
	RetryBaseDelay time.Duration
	// MaxRetryDelay верхняя граница отложенной попытки
	MaxRetryDelay time.Duration
}

// WebhookService реализует domain.WebhookIntake и domain.WebhookProcessor
type WebhookService struct {
	tx         domain.Transactor
	events     domain.WebhookEventRepository
	settlement *SettlementService
	dispatcher Dispatcher
	settings   WebhookSettings
	logger     *zap.Logger
	now        func() time.Time
}

// NewWebhookService создает новый WebhookService
func NewWebhookService(tx domain.Transactor, events domain.WebhookEventRepository, settlement *SettlementService, settings WebhookSettings, logger *zap.Logger) *WebhookService {
	if settings.MaxAttempts <= 0 {
		settings.MaxAttempts = 10
	}
	if settings.RetryBaseDelay <= 0 {
		settings.RetryBaseDelay = 200 * time.Millisecond
	}
	if settings.MaxRetryDelay <= 0 {
		settings.MaxRetryDelay = time.Hour
	}
	return &WebhookService{
		tx:         tx,
		events:     events,
		settlement: settlement,
		settings:   settings,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SetDispatcher подключает очередь, пул воркеров создается после сервиса
func (s *WebhookService) SetDispatcher(d Dispatcher) {
	s.dispatcher = d
}

// Ingest сохраняет событие до любых побочных эффектов и ставит его в очередь.
// Повторная доставка того же события возвращает IngestDuplicate.
func (s *WebhookService) Ingest(ctx context.Context, providerEventID string, payload []byte) (domain.IngestResult, error) {
	var event domain.PaymentEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return domain.IngestRejected, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	eventID := strings.TrimSpace(providerEventID)
	if eventID == "" {
		eventID = strings.TrimSpace(event.EventID)
	}
	if eventID == "" || event.Type == "" {
		return domain.IngestRejected, fmt.Errorf("%w: event id and type are required", domain.ErrMalformedPayload)
	}

	status := domain.WebhookStatusPending
	if event.Type == domain.PaymentEventConfirmed {
		if event.OrderID == uuid.Nil || event.TransactionRef == "" {
			return domain.IngestRejected, fmt.Errorf("%w: order id and transaction reference are required", domain.ErrMalformedPayload)
		}
	} else {
		status = domain.WebhookStatusSkipped
	}

	record := &domain.WebhookEvent{
		ProviderEventID: eventID,
		EventType:       event.Type,
		PaymentRef:      event.TransactionRef,
		Payload:         payload,
		Status:          status,
		NextAttemptAt:   s.now(),
	}
	if err := s.events.Insert(ctx, record); err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			s.logger.Info("duplicate webhook event", zap.String("provider_event_id", eventID))
			return domain.IngestDuplicate, nil
		}
		return domain.IngestRejected, wrapf(err, "webhook service: failed to store event %q", eventID)
	}

	if status != domain.WebhookStatusPending {
		s.logger.Debug("webhook event skipped",
			zap.String("provider_event_id", eventID),
			zap.String("type", event.Type),
		)
		return domain.IngestAccepted, nil
	}

	// Если очередь переполнена, событие подберет сканер
	if s.dispatcher == nil || !s.dispatcher.Enqueue(record.ID) {
		s.logger.Warn("webhook event left for scanner",
			zap.String("webhook_event_id", record.ID.String()),
			zap.String("provider_event_id", eventID),
		)
	}

	return domain.IngestAccepted, nil
}

// ProcessEvent применяет событие к заказу. Временные сбои повторяются сразу,
// затем событие откладывается для сканера.
func (s *WebhookService) ProcessEvent(ctx context.Context, webhookEventID uuid.UUID) error {
	backoff := retry.WithMaxRetries(s.settings.InlineRetries, retry.NewExponential(s.settings.RetryBaseDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := s.processOnce(ctx, webhookEventID)
		if errors.Is(err, domain.ErrTransient) {
			return retry.RetryableError(err)
		}
		return err
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrWebhookNotFound) {
		return err
	}

	return s.deferRetry(ctx, webhookEventID, err)
}

func (s *WebhookService) processOnce(ctx context.Context, id uuid.UUID) error {
	var failure error
	err := s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		failure = nil

		event, err := repos.Webhooks.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		// Уже обработано другим воркером
		if event.Status != domain.WebhookStatusPending {
			return nil
		}

		now := s.now()
		if event.EventType != domain.PaymentEventConfirmed {
			return repos.Webhooks.Complete(ctx, id, domain.WebhookStatusSkipped, nil, now)
		}

		note, err := s.applyPayment(ctx, repos, event)
		if err != nil {
			if !permanentFailure(err) {
				return err
			}
			failure = err
			msg := err.Error()
			return repos.Webhooks.Complete(ctx, id, domain.WebhookStatusFailed, &msg, now)
		}

		return repos.Webhooks.Complete(ctx, id, domain.WebhookStatusProcessed, note, now)
	})
	if err != nil {
		return wrapf(err, "webhook service: failed to process event %s", id)
	}

	if failure != nil {
		s.logger.Error("webhook event rejected, manual reconciliation required",
			zap.String("webhook_event_id", id.String()),
			zap.Error(failure),
		)
	}

	return nil
}

// applyPayment сверяет событие с заказом и подтверждает оплату.
// Для устаревшего события возвращает пояснение без изменений журнала.
func (s *WebhookService) applyPayment(ctx context.Context, repos domain.Repositories, event *domain.WebhookEvent) (*string, error) {
	var payment domain.PaymentEvent
	if err := json.Unmarshal(event.Payload, &payment); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	order, err := repos.Orders.GetForUpdate(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}

	if payment.AmountCents != order.TotalAmountCents || !strings.EqualFold(payment.Currency, order.Currency) {
		return nil, fmt.Errorf("%w: order %s expects %d %s, event carries %d %s", domain.ErrPaymentMismatch,
			order.ID, order.TotalAmountCents, order.Currency, payment.AmountCents, payment.Currency)
	}

	applied, err := s.settlement.confirmPaymentTx(ctx, repos, order, event.PaymentRef)
	if err != nil {
		return nil, err
	}

	if !applied {
		note := fmt.Sprintf("stale event: order already %s", order.Status)
		s.logger.Info("stale payment event ignored",
			zap.String("webhook_event_id", event.ID.String()),
			zap.String("order_id", order.ID.String()),
			zap.String("status", string(order.Status)),
		)
		return &note, nil
	}

	s.logger.Info("payment confirmed",
		zap.String("webhook_event_id", event.ID.String()),
		zap.String("order_id", order.ID.String()),
		zap.Int64("amount_cents", order.TotalAmountCents),
	)

	return nil, nil
}

// deferRetry увеличивает счетчик попыток и переносит событие на сканер
func (s *WebhookService) deferRetry(ctx context.Context, id uuid.UUID, cause error) error {
	var (
		attempts int
		failed   bool
	)
	err := s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		event, err := repos.Webhooks.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if event.Status != domain.WebhookStatusPending {
			return nil
		}

		now := s.now()
		attempts = event.Attempts + 1
		if attempts >= s.settings.MaxAttempts {
			failed = true
			msg := cause.Error()
			return repos.Webhooks.Complete(ctx, id, domain.WebhookStatusFailed, &msg, now)
		}

		return repos.Webhooks.ScheduleRetry(ctx, id, attempts, now.Add(s.retryDelay(attempts)), cause.Error())
	})
	if err != nil {
		return fmt.Errorf("webhook service: failed to defer event %s after %v: %w", id, cause, err)
	}

	if failed {
		s.logger.Error("webhook event exhausted retries, manual reconciliation required",
			zap.String("webhook_event_id", id.String()),
			zap.Int("attempts", attempts),
			zap.Error(cause),
		)
		return fmt.Errorf("%w: event %s: %v", domain.ErrPermanentRejection, id, cause)
	}

	return fmt.Errorf("webhook service: event %s deferred (attempt %d): %w", id, attempts, cause)
}

func (s *WebhookService) retryDelay(attempts int) time.Duration {
	delay := s.settings.RetryBaseDelay << uint(attempts)
	if delay <= 0 || delay > s.settings.MaxRetryDelay {
		return s.settings.MaxRetryDelay
	}
	return delay
}

// ListDueEvents возвращает отложенные события, которым пора в обработку
func (s *WebhookService) ListDueEvents(ctx context.Context, limit int) ([]uuid.UUID, error) {
	ids, err := s.events.ListDue(ctx, s.now(), limit)
	if err != nil {
		return nil, wrapf(err, "webhook service: failed to list due events")
	}

	return ids, nil
}

func permanentFailure(err error) bool {
	return errors.Is(err, domain.ErrMalformedPayload) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrPaymentMismatch) ||
		errors.Is(err, domain.ErrInvalidStateTransition)
}
