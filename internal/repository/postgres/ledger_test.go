package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ledgerRowColumns = []string{"id", "user_id", "type", "state", "source", "amount_cents", "currency",
	"order_id", "payment_id", "description", "created_at"}

func TestLedgerRepository_Credit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	sellerID := uuid.New()
	orderID := uuid.New()
	paymentRef := "txn_1"
	refs := domain.EntryRefs{Currency: "BRL", OrderID: &orderID, PaymentID: &paymentRef}

	t.Run("Success", func(t *testing.T) {
		createdAt := time.Now()

		mock.ExpectQuery(`INSERT INTO ledger_entries .+ ON CONFLICT \(order_id, payment_id\) WHERE source = 'ORDER_PAYMENT' AND type = 'CREDIT' DO NOTHING`).
			WithArgs(pgxmock.AnyArg(), sellerID, domain.EntryTypeCredit, domain.EntryStateHeld, domain.EntrySourceOrderPayment,
				int64(10000), "BRL", &orderID, &paymentRef, "").
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

		entry, err := repo.Credit(ctx, sellerID, 10000, domain.EntrySourceOrderPayment, domain.EntryStateHeld, refs)
		require.NoError(t, err)
		assert.Equal(t, domain.EntryTypeCredit, entry.Type)
		assert.Equal(t, domain.EntryStateHeld, entry.State)
		assert.Equal(t, int64(10000), entry.AmountCents)
		assert.Equal(t, createdAt, entry.CreatedAt)
		assert.NotEqual(t, uuid.Nil, entry.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate payment credit", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO ledger_entries`).
			WithArgs(pgxmock.AnyArg(), sellerID, domain.EntryTypeCredit, domain.EntryStateHeld, domain.EntrySourceOrderPayment,
				int64(10000), "BRL", &orderID, &paymentRef, "").
			WillReturnError(pgx.ErrNoRows)

		entry, err := repo.Credit(ctx, sellerID, 10000, domain.EntrySourceOrderPayment, domain.EntryStateHeld, refs)
		assert.ErrorIs(t, err, domain.ErrDuplicatePaymentCredit)
		assert.Nil(t, entry)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		_, err := repo.Credit(ctx, sellerID, 0, domain.EntrySourceRefund, domain.EntryStateAvailable, refs)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = repo.Debit(ctx, sellerID, -5, domain.EntrySourceFee, domain.EntryStateAvailable, refs)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Serialization failure is transient", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO ledger_entries`).
			WillReturnError(&pgconn.PgError{Code: pgSerializationFailure})

		_, err := repo.Debit(ctx, sellerID, 100, domain.EntrySourceFee, domain.EntryStateAvailable, refs)
		assert.ErrorIs(t, err, domain.ErrTransient)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_Transition(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()
	entryID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE ledger_entries SET state`).
			WithArgs(domain.EntryStateAvailable, entryID, domain.EntryStateHeld).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Transition(ctx, entryID, domain.EntryStateHeld, domain.EntryStateAvailable)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Entry already moved", func(t *testing.T) {
		mock.ExpectExec(`UPDATE ledger_entries SET state`).
			WithArgs(domain.EntryStateReversed, entryID, domain.EntryStateHeld).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Transition(ctx, entryID, domain.EntryStateHeld, domain.EntryStateReversed)
		assert.ErrorIs(t, err, domain.ErrInvalidLedgerTransition)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Forbidden edge never reaches database", func(t *testing.T) {
		err := repo.Transition(ctx, entryID, domain.EntryStateReversed, domain.EntryStateAvailable)
		assert.ErrorIs(t, err, domain.ErrInvalidLedgerTransition)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_FindHeldPaymentCredit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		entryID := uuid.New()
		paymentRef := "txn_1"
		rows := pgxmock.NewRows(ledgerRowColumns).
			AddRow(entryID, uuid.New(), domain.EntryTypeCredit, domain.EntryStateHeld, domain.EntrySourceOrderPayment,
				int64(10000), "BRL", &orderID, &paymentRef, "", time.Now())

		mock.ExpectQuery(`SELECT .+ FROM ledger_entries WHERE order_id = \$1 .+ FOR UPDATE`).
			WithArgs(orderID, domain.EntrySourceOrderPayment, domain.EntryTypeCredit, domain.EntryStateHeld).
			WillReturnRows(rows)

		entry, err := repo.FindHeldPaymentCredit(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, entryID, entry.ID)
		assert.Equal(t, "txn_1", *entry.PaymentID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM ledger_entries`).
			WithArgs(orderID, domain.EntrySourceOrderPayment, domain.EntryTypeCredit, domain.EntryStateHeld).
			WillReturnError(pgx.ErrNoRows)

		entry, err := repo.FindHeldPaymentCredit(ctx, orderID)
		assert.ErrorIs(t, err, domain.ErrLedgerEntryNotFound)
		assert.Nil(t, entry)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_Balances(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"held", "available", "reversed"}).
			AddRow(int64(5000), int64(9000), int64(0))

		mock.ExpectQuery(`SELECT`).
			WithArgs(userID, "BRL").
			WillReturnRows(rows)

		balance, err := repo.Balances(ctx, userID, "BRL")
		require.NoError(t, err)
		assert.Equal(t, int64(5000), balance.HeldCents)
		assert.Equal(t, int64(9000), balance.AvailableCents)
		assert.Equal(t, "BRL", balance.Currency)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT`).
			WithArgs(userID, "BRL").
			WillReturnError(errors.New("database error"))

		balance, err := repo.Balances(ctx, userID, "BRL")
		assert.Error(t, err)
		assert.Nil(t, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_ListEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	rows := pgxmock.NewRows(ledgerRowColumns).
		AddRow(uuid.New(), userID, domain.EntryTypeDebit, domain.EntryStateAvailable, domain.EntrySourceFee,
			int64(1000), "BRL", &orderID, (*string)(nil), "platform fee", time.Now()).
		AddRow(uuid.New(), userID, domain.EntryTypeCredit, domain.EntryStateAvailable, domain.EntrySourceOrderPayment,
			int64(10000), "BRL", &orderID, (*string)(nil), "", time.Now())

	mock.ExpectQuery(`SELECT .+ FROM ledger_entries WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(userID, 50).
		WillReturnRows(rows)

	entries, err := repo.ListEntries(ctx, userID, 50)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, domain.EntrySourceFee, entries[0].Source)
	assert.Nil(t, entries[0].PaymentID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_LockAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	userID := uuid.New()

	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
		WithArgs(userID.String()).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))

	assert.NoError(t, repo.LockAccount(context.Background(), userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
