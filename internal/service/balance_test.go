package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/marketplace-escrow/internal/domain"
	domainmocks "github.com/avc/marketplace-escrow/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBalanceService_GetBalance(t *testing.T) {
	mockLedger := domainmocks.NewLedgerRepositoryMock(t)
	svc := NewBalanceService(mockLedger, "BRL")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := uuid.New()
		balance := &domain.Balance{Currency: "BRL", HeldCents: 500, AvailableCents: 1200}

		mockLedger.EXPECT().Balances(mock.Anything, userID, "BRL").Return(balance, nil).Once()

		result, err := svc.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, balance, result)
	})

	t.Run("Database error", func(t *testing.T) {
		userID := uuid.New()

		mockLedger.EXPECT().Balances(mock.Anything, userID, "BRL").Return(nil, errors.New("db error")).Once()

		result, err := svc.GetBalance(ctx, userID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "balance service")
		assert.Nil(t, result)
	})

	t.Run("Transient error keeps its category", func(t *testing.T) {
		userID := uuid.New()

		mockLedger.EXPECT().Balances(mock.Anything, userID, "BRL").
			Return(nil, errors.Join(domain.ErrTransient, errors.New("connection reset"))).Once()

		_, err := svc.GetBalance(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrTransient)
	})
}

func TestBalanceService_ListEntries(t *testing.T) {
	mockLedger := domainmocks.NewLedgerRepositoryMock(t)
	svc := NewBalanceService(mockLedger, "BRL")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := uuid.New()
		entries := []*domain.LedgerEntry{
			{ID: uuid.New(), UserID: userID, Type: domain.EntryTypeCredit, State: domain.EntryStateHeld, AmountCents: 100},
		}

		mockLedger.EXPECT().ListEntries(mock.Anything, userID, ledgerHistoryLimit).Return(entries, nil).Once()

		result, err := svc.ListEntries(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("Database error", func(t *testing.T) {
		userID := uuid.New()

		mockLedger.EXPECT().ListEntries(mock.Anything, userID, ledgerHistoryLimit).Return(nil, errors.New("db error")).Once()

		result, err := svc.ListEntries(ctx, userID)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
