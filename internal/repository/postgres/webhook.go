package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WebhookEventRepository реализует domain.WebhookEventRepository
type WebhookEventRepository struct {
	db DBTX
}

// NewWebhookEventRepository создает новый WebhookEventRepository
func NewWebhookEventRepository(db DBTX) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

// Insert сохраняет событие. Повтор provider_event_id возвращает domain.ErrDuplicateEvent.
func (r *WebhookEventRepository) Insert(ctx context.Context, event *domain.WebhookEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO webhook_events (id, provider_event_id, event_type, payment_ref, payload, status, next_attempt_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (provider_event_id) DO NOTHING
		 RETURNING received_at`,
		event.ID, event.ProviderEventID, event.EventType, event.PaymentRef, event.Payload, event.Status, event.NextAttemptAt,
	).Scan(&event.ReceivedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDuplicateEvent
		}
		return fmt.Errorf("repository: failed to insert webhook event %q: %w", event.ProviderEventID, classify(err))
	}

	return nil
}

// GetForUpdate получает событие и блокирует строку от параллельной обработки
func (r *WebhookEventRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.WebhookEvent, error) {
	e := &domain.WebhookEvent{}

	err := r.db.QueryRow(ctx,
		`SELECT id, provider_event_id, event_type, payment_ref, payload, status, attempts, last_error,
		        next_attempt_at, received_at, processed_at
		 FROM webhook_events
		 WHERE id = $1
		 FOR UPDATE`,
		id,
	).Scan(&e.ID, &e.ProviderEventID, &e.EventType, &e.PaymentRef, &e.Payload, &e.Status, &e.Attempts, &e.LastError,
		&e.NextAttemptAt, &e.ReceivedAt, &e.ProcessedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWebhookNotFound
		}
		return nil, fmt.Errorf("repository: failed to get webhook event %s: %w", id, classify(err))
	}

	return e, nil
}

// Complete фиксирует финальный статус обработки
func (r *WebhookEventRepository) Complete(ctx context.Context, id uuid.UUID, status domain.WebhookStatus, note *string, at time.Time) error {
	result, err := r.db.Exec(ctx,
		`UPDATE webhook_events
		 SET status = $1, last_error = COALESCE($2, last_error), processed_at = $3
		 WHERE id = $4`,
		status, note, at, id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to complete webhook event %s: %w", id, classify(err))
	}

	if result.RowsAffected() == 0 {
		return domain.ErrWebhookNotFound
	}

	return nil
}

// ScheduleRetry откладывает событие до следующей попытки
func (r *WebhookEventRepository) ScheduleRetry(ctx context.Context, id uuid.UUID, attempts int, nextAttemptAt time.Time, lastErr string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE webhook_events
		 SET attempts = $1, next_attempt_at = $2, last_error = $3
		 WHERE id = $4 AND status = $5`,
		attempts, nextAttemptAt, lastErr, id, domain.WebhookStatusPending,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to schedule retry for webhook event %s: %w", id, classify(err))
	}

	if result.RowsAffected() == 0 {
		return domain.ErrWebhookNotFound
	}

	return nil
}

// ListDue возвращает события, готовые к обработке
func (r *WebhookEventRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM webhook_events
		 WHERE status = $1 AND next_attempt_at <= $2
		 ORDER BY next_attempt_at ASC
		 LIMIT $3`,
		domain.WebhookStatusPending, now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list due webhook events: %w", classify(err))
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan webhook event id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating webhook events: %w", err)
	}

	return ids, nil
}
