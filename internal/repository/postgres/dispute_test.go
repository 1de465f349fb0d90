package postgres

import (
	"context"
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

func TestDisputeRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDisputeRepository(mock)
	ctx := context.Background()
	ticketID := uuid.New()
	dispute := &domain.Dispute{
		ID:       uuid.New(),
		OrderID:  uuid.New(),
		TicketID: &ticketID,
		OpenedBy: uuid.New(),
		Status:   domain.DisputeStatusOpen,
		Reason:   "item not received",
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO disputes`).
			WithArgs(dispute.ID, dispute.OrderID, &ticketID, dispute.OpenedBy, domain.DisputeStatusOpen, "item not received").
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		assert.NoError(t, repo.Create(ctx, dispute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already exists", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO disputes`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		assert.ErrorIs(t, repo.Create(ctx, dispute), domain.ErrDisputeExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDisputeRepository_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDisputeRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		disputeID := uuid.New()
		ticketID := uuid.New()
		rows := pgxmock.NewRows([]string{"id", "order_id", "ticket_id", "opened_by", "status", "reason", "resolution",
			"created_at", "resolved_at"}).
			AddRow(disputeID, uuid.New(), &ticketID, uuid.New(), domain.DisputeStatusReview, "damaged",
				(*string)(nil), time.Now(), (*time.Time)(nil))

		mock.ExpectQuery(`SELECT .+ FROM disputes WHERE id = \$1 FOR UPDATE`).
			WithArgs(disputeID).
			WillReturnRows(rows)

		d, err := repo.GetForUpdate(ctx, disputeID)
		require.NoError(t, err)
		assert.Equal(t, domain.DisputeStatusReview, d.Status)
		assert.Equal(t, ticketID, *d.TicketID)
		assert.Nil(t, d.Resolution)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		disputeID := uuid.New()
		mock.ExpectQuery(`SELECT .+ FROM disputes`).
			WithArgs(disputeID).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetForUpdate(ctx, disputeID)
		assert.ErrorIs(t, err, domain.ErrDisputeNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDisputeRepository_Finalize(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDisputeRepository(mock)
	ctx := context.Background()
	disputeID := uuid.New()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE disputes SET status = \$1, resolution = \$2`).
			WithArgs(domain.DisputeStatusResolved, "refund: damaged", now, disputeID,
				domain.DisputeStatusOpen, domain.DisputeStatusReview).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.Finalize(ctx, disputeID, domain.DisputeStatusResolved, "refund: damaged", now))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already resolved", func(t *testing.T) {
		mock.ExpectExec(`UPDATE disputes`).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Finalize(ctx, disputeID, domain.DisputeStatusRejected, "release", now)
		assert.ErrorIs(t, err, domain.ErrDisputeNotResolvable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTicketRepository_Close(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepository(mock)
	ticketID := uuid.New()
	now := time.Now()

	mock.ExpectExec(`UPDATE support_tickets`).
		WithArgs(domain.TicketStatusResolved, now, ticketID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Close(context.Background(), ticketID, now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	entry := &domain.AuditEntry{
		ActorID:    uuid.New(),
		Action:     "dispute.resolve",
		EntityType: "dispute",
		EntityID:   uuid.New(),
		Before:     "REVIEW",
		After:      "RESOLVED",
		Metadata:   map[string]any{"action": "refund"},
	}

	mock.ExpectQuery(`INSERT INTO audit_logs`).
		WithArgs(pgxmock.AnyArg(), entry.ActorID, "dispute.resolve", "dispute", entry.EntityID, "REVIEW", "RESOLVED",
			[]byte(`{"action":"refund"}`)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	require.NoError(t, repo.Append(context.Background(), entry))
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
