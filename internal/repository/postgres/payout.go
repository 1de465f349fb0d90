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

const draftColumns = `id, user_id, amount_cents, currency, pix_key, beneficiary_name, status, created_at, expires_at`

// PayoutRepository реализует domain.PayoutRepository
type PayoutRepository struct {
	db DBTX
}

// NewPayoutRepository создает новый PayoutRepository
func NewPayoutRepository(db DBTX) *PayoutRepository {
	return &PayoutRepository{db: db}
}

// CreateDraft сохраняет черновик вывода
func (r *PayoutRepository) CreateDraft(ctx context.Context, draft *domain.PayoutDraft) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO payout_drafts (id, user_id, amount_cents, currency, pix_key, beneficiary_name, status, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		draft.ID, draft.UserID, draft.AmountCents, draft.Currency,
		draft.Destination.PixKey, draft.Destination.BeneficiaryName, draft.Status, draft.ExpiresAt,
	).Scan(&draft.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDraftAlreadyPending
		}
		return fmt.Errorf("repository: failed to create payout draft for user %s: %w", draft.UserID, classify(err))
	}

	return nil
}

// GetDraft получает черновик по идентификатору
func (r *PayoutRepository) GetDraft(ctx context.Context, id uuid.UUID) (*domain.PayoutDraft, error) {
	return r.getDraft(ctx, `SELECT `+draftColumns+` FROM payout_drafts WHERE id = $1`, id)
}

// GetDraftForUpdate получает черновик и блокирует строку
func (r *PayoutRepository) GetDraftForUpdate(ctx context.Context, id uuid.UUID) (*domain.PayoutDraft, error) {
	return r.getDraft(ctx, `SELECT `+draftColumns+` FROM payout_drafts WHERE id = $1 FOR UPDATE`, id)
}

// GetPendingDraft получает активный черновик пользователя
func (r *PayoutRepository) GetPendingDraft(ctx context.Context, userID uuid.UUID) (*domain.PayoutDraft, error) {
	return r.getDraft(ctx,
		`SELECT `+draftColumns+` FROM payout_drafts WHERE user_id = $1 AND status = 'PENDING'`,
		userID,
	)
}

func (r *PayoutRepository) getDraft(ctx context.Context, query string, arg uuid.UUID) (*domain.PayoutDraft, error) {
	d := &domain.PayoutDraft{}

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&d.ID, &d.UserID, &d.AmountCents, &d.Currency, &d.Destination.PixKey, &d.Destination.BeneficiaryName,
		&d.Status, &d.CreatedAt, &d.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, fmt.Errorf("repository: failed to get payout draft %s: %w", arg, classify(err))
	}

	return d, nil
}

// UpdateDraftStatus переводит черновик из from в to
func (r *PayoutRepository) UpdateDraftStatus(ctx context.Context, id uuid.UUID, from, to domain.DraftStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE payout_drafts SET status = $1 WHERE id = $2 AND status = $3`,
		to, id, from,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update payout draft %s: %w", id, classify(err))
	}

	if result.RowsAffected() == 0 {
		return domain.ErrDraftNotPending
	}

	return nil
}

// ExpireDrafts помечает истекшие черновики. userID == nil означает всех пользователей.
func (r *PayoutRepository) ExpireDrafts(ctx context.Context, userID *uuid.UUID, now time.Time) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE payout_drafts
		 SET status = $1
		 WHERE status = $2 AND expires_at < $3 AND ($4::uuid IS NULL OR user_id = $4)`,
		domain.DraftStatusExpired, domain.DraftStatusPending, now, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to expire payout drafts: %w", classify(err))
	}

	return result.RowsAffected(), nil
}

// CreatePayout сохраняет подтвержденную выплату
func (r *PayoutRepository) CreatePayout(ctx context.Context, payout *domain.Payout) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO payouts (id, draft_id, user_id, ledger_entry_id, reference, amount_cents, currency,
		                      pix_key, beneficiary_name, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at`,
		payout.ID, payout.DraftID, payout.UserID, payout.LedgerEntryID, payout.Reference, payout.AmountCents,
		payout.Currency, payout.Destination.PixKey, payout.Destination.BeneficiaryName, payout.Status,
	).Scan(&payout.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDraftNotPending
		}
		return fmt.Errorf("repository: failed to create payout for draft %s: %w", payout.DraftID, classify(err))
	}

	return nil
}

// ListPayouts возвращает выплаты пользователя, новые первыми
func (r *PayoutRepository) ListPayouts(ctx context.Context, userID uuid.UUID) ([]*domain.Payout, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, draft_id, user_id, ledger_entry_id, reference, amount_cents, currency,
		        pix_key, beneficiary_name, status, created_at
		 FROM payouts
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list payouts for user %s: %w", userID, classify(err))
	}
	defer rows.Close()

	var payouts []*domain.Payout
	for rows.Next() {
		p := &domain.Payout{}
		err := rows.Scan(&p.ID, &p.DraftID, &p.UserID, &p.LedgerEntryID, &p.Reference, &p.AmountCents, &p.Currency,
			&p.Destination.PixKey, &p.Destination.BeneficiaryName, &p.Status, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan payout: %w", err)
		}
		payouts = append(payouts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating payouts: %w", err)
	}

	return payouts, nil
}
