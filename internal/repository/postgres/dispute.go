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

const disputeColumns = `id, order_id, ticket_id, opened_by, status, reason, resolution, created_at, resolved_at`

// DisputeRepository реализует domain.DisputeRepository
type DisputeRepository struct {
	db DBTX
}

// NewDisputeRepository создает новый DisputeRepository
func NewDisputeRepository(db DBTX) *DisputeRepository {
	return &DisputeRepository{db: db}
}

// Create открывает спор. Второй спор по тому же заказу невозможен.
func (r *DisputeRepository) Create(ctx context.Context, dispute *domain.Dispute) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO disputes (id, order_id, ticket_id, opened_by, status, reason)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		dispute.ID, dispute.OrderID, dispute.TicketID, dispute.OpenedBy, dispute.Status, dispute.Reason,
	).Scan(&dispute.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDisputeExists
		}
		return fmt.Errorf("repository: failed to create dispute for order %s: %w", dispute.OrderID, classify(err))
	}

	return nil
}

// GetForUpdate получает спор и блокирует строку
func (r *DisputeRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Dispute, error) {
	return r.get(ctx, `SELECT `+disputeColumns+` FROM disputes WHERE id = $1 FOR UPDATE`, id)
}

// GetByOrderID получает спор по заказу
func (r *DisputeRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Dispute, error) {
	return r.get(ctx, `SELECT `+disputeColumns+` FROM disputes WHERE order_id = $1`, orderID)
}

func (r *DisputeRepository) get(ctx context.Context, query string, arg uuid.UUID) (*domain.Dispute, error) {
	d := &domain.Dispute{}

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&d.ID, &d.OrderID, &d.TicketID, &d.OpenedBy, &d.Status, &d.Reason, &d.Resolution, &d.CreatedAt, &d.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, fmt.Errorf("repository: failed to get dispute %s: %w", arg, classify(err))
	}

	return d, nil
}

// UpdateStatus меняет статус спора с проверкой текущего
func (r *DisputeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.DisputeStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE disputes SET status = $1 WHERE id = $2 AND status = $3`,
		to, id, from,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update dispute %s: %w", id, classify(err))
	}

	if result.RowsAffected() == 0 {
		return domain.ErrDisputeNotResolvable
	}

	return nil
}

// Finalize записывает итог спора
func (r *DisputeRepository) Finalize(ctx context.Context, id uuid.UUID, status domain.DisputeStatus, resolution string, resolvedAt time.Time) error {
	result, err := r.db.Exec(ctx,
		`UPDATE disputes
		 SET status = $1, resolution = $2, resolved_at = $3
		 WHERE id = $4 AND status IN ($5, $6)`,
		status, resolution, resolvedAt, id, domain.DisputeStatusOpen, domain.DisputeStatusReview,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to finalize dispute %s: %w", id, classify(err))
	}

	if result.RowsAffected() == 0 {
		return domain.ErrDisputeNotResolvable
	}

	return nil
}

// TicketRepository реализует domain.TicketRepository
type TicketRepository struct {
	db DBTX
}

// NewTicketRepository создает новый TicketRepository
func NewTicketRepository(db DBTX) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create создает тикет поддержки
func (r *TicketRepository) Create(ctx context.Context, ticket *domain.SupportTicket) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO support_tickets (id, order_id, subject, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		ticket.ID, ticket.OrderID, ticket.Subject, ticket.Status,
	).Scan(&ticket.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to create ticket for order %s: %w", ticket.OrderID, classify(err))
	}

	return nil
}

// Close закрывает тикет. Повторное закрытие не является ошибкой.
func (r *TicketRepository) Close(ctx context.Context, id uuid.UUID, at time.Time) error {
	result, err := r.db.Exec(ctx,
		`UPDATE support_tickets
		 SET status = $1, resolved_at = COALESCE(resolved_at, $2)
		 WHERE id = $3`,
		domain.TicketStatusResolved, at, id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to close ticket %s: %w", id, classify(err))
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}
