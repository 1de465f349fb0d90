package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const ledgerColumns = `id, user_id, type, state, source, amount_cents, currency, order_id, payment_id, description, created_at`

// LedgerRepository реализует domain.LedgerRepository
type LedgerRepository struct {
	db DBTX
}

// NewLedgerRepository создает новый LedgerRepository
func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Credit добавляет кредитовую проводку
func (r *LedgerRepository) Credit(ctx context.Context, userID uuid.UUID, amountCents int64, source domain.EntrySource, state domain.EntryState, refs domain.EntryRefs) (*domain.LedgerEntry, error) {
	return r.insert(ctx, domain.EntryTypeCredit, userID, amountCents, source, state, refs)
}

// Debit добавляет дебетовую проводку
func (r *LedgerRepository) Debit(ctx context.Context, userID uuid.UUID, amountCents int64, source domain.EntrySource, state domain.EntryState, refs domain.EntryRefs) (*domain.LedgerEntry, error) {
	return r.insert(ctx, domain.EntryTypeDebit, userID, amountCents, source, state, refs)
}

func (r *LedgerRepository) insert(ctx context.Context, entryType domain.EntryType, userID uuid.UUID, amountCents int64, source domain.EntrySource, state domain.EntryState, refs domain.EntryRefs) (*domain.LedgerEntry, error) {
	if amountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if refs.Currency == "" {
		return nil, fmt.Errorf("repository: currency is required: %w", domain.ErrInvalidInput)
	}

	entry := &domain.LedgerEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        entryType,
		State:       state,
		Source:      source,
		AmountCents: amountCents,
		Currency:    refs.Currency,
		OrderID:     refs.OrderID,
		PaymentID:   refs.PaymentID,
		Description: refs.Description,
	}

	// Конфликт по uq_ledger_order_payment не прерывает транзакцию: строка просто не вставляется
	err := r.db.QueryRow(ctx,
		`INSERT INTO ledger_entries (id, user_id, type, state, source, amount_cents, currency, order_id, payment_id, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (order_id, payment_id) WHERE source = 'ORDER_PAYMENT' AND type = 'CREDIT' DO NOTHING
		 RETURNING created_at`,
		entry.ID, entry.UserID, entry.Type, entry.State, entry.Source, entry.AmountCents,
		entry.Currency, entry.OrderID, entry.PaymentID, entry.Description,
	).Scan(&entry.CreatedAt)

	if err != nil {
		// Повторный кредит оплаты для той же пары (заказ, платеж)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDuplicatePaymentCredit
		}
		return nil, fmt.Errorf("repository: failed to insert %s %s entry for user %s: %w", entryType, source, userID, classify(err))
	}

	return entry, nil
}

// Transition переводит проводку между состояниями по схеме compare-and-set
func (r *LedgerRepository) Transition(ctx context.Context, entryID uuid.UUID, from, to domain.EntryState) error {
	if err := domain.CheckEntryTransition(from, to); err != nil {
		return err
	}

	result, err := r.db.Exec(ctx,
		`UPDATE ledger_entries
		 SET state = $1
		 WHERE id = $2 AND state = $3`,
		to, entryID, from,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to transition entry %s: %w", entryID, classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s is not %s", domain.ErrInvalidLedgerTransition, entryID, from)
	}

	return nil
}

// FindHeldPaymentCredit находит открытый HELD кредит оплаты заказа и блокирует его
func (r *LedgerRepository) FindHeldPaymentCredit(ctx context.Context, orderID uuid.UUID) (*domain.LedgerEntry, error) {
	entry, err := scanEntry(r.db.QueryRow(ctx,
		`SELECT `+ledgerColumns+`
		 FROM ledger_entries
		 WHERE order_id = $1 AND source = $2 AND type = $3 AND state = $4
		 FOR UPDATE`,
		orderID, domain.EntrySourceOrderPayment, domain.EntryTypeCredit, domain.EntryStateHeld,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLedgerEntryNotFound
		}
		return nil, fmt.Errorf("repository: failed to find held credit for order %s: %w", orderID, classify(err))
	}

	return entry, nil
}

// Balances вычисляет балансы пользователя группировкой проводок
func (r *LedgerRepository) Balances(ctx context.Context, userID uuid.UUID, currency string) (*domain.Balance, error) {
	balance := &domain.Balance{Currency: currency}

	err := r.db.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN type = 'CREDIT' AND state = 'HELD' THEN amount_cents ELSE 0 END), 0)::BIGINT AS held,
			COALESCE(SUM(CASE WHEN state = 'AVAILABLE' AND type = 'CREDIT' THEN amount_cents
			                  WHEN state = 'AVAILABLE' AND type = 'DEBIT' THEN -amount_cents
			                  ELSE 0 END), 0)::BIGINT AS available,
			COALESCE(SUM(CASE WHEN state = 'REVERSED' THEN amount_cents ELSE 0 END), 0)::BIGINT AS reversed
		 FROM ledger_entries
		 WHERE user_id = $1 AND currency = $2`,
		userID, currency,
	).Scan(&balance.HeldCents, &balance.AvailableCents, &balance.ReversedCents)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get balance for user %s: %w", userID, classify(err))
	}

	return balance, nil
}

// ListEntries возвращает последние проводки пользователя
func (r *LedgerRepository) ListEntries(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+ledgerColumns+`
		 FROM ledger_entries
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list entries for user %s: %w", userID, classify(err))
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating ledger entries: %w", err)
	}

	return entries, nil
}

// LockAccount берет advisory lock на счет пользователя до конца транзакции
func (r *LedgerRepository) LockAccount(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, userID.String())
	if err != nil {
		return fmt.Errorf("repository: failed to acquire lock for user %s: %w", userID, classify(err))
	}
	return nil
}

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	entry := &domain.LedgerEntry{}
	err := row.Scan(&entry.ID, &entry.UserID, &entry.Type, &entry.State, &entry.Source, &entry.AmountCents,
		&entry.Currency, &entry.OrderID, &entry.PaymentID, &entry.Description, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}
	return entry, nil
}
