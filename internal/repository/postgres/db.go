package postgres

import (
	"context"
	"fmt"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX общий интерфейс пула, соединения и транзакции pgx
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// NewRepositories создает набор репозиториев поверх db
func NewRepositories(db DBTX) domain.Repositories {
	return domain.Repositories{
		Ledger:   NewLedgerRepository(db),
		Orders:   NewOrderRepository(db),
		Disputes: NewDisputeRepository(db),
		Tickets:  NewTicketRepository(db),
		Audit:    NewAuditRepository(db),
		Payouts:  NewPayoutRepository(db),
		Webhooks: NewWebhookEventRepository(db),
	}
}

// Transactor реализует domain.Transactor поверх pgx транзакций
type Transactor struct {
	db DBTX
}

// NewTransactor создает новый Transactor
func NewTransactor(db DBTX) *Transactor {
	return &Transactor{db: db}
}

// WithinTx выполняет fn в одной транзакции: запись в журнал никогда
// не фиксируется без соответствующей смены статуса и наоборот.
func (t *Transactor) WithinTx(ctx context.Context, fn func(repos domain.Repositories) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", classify(err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if err := fn(NewRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", classify(err))
	}

	return nil
}
