package service

import (
	"context"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
)

// ledgerHistoryLimit ограничивает выдачу истории проводок
const ledgerHistoryLimit = 100

// BalanceService предоставляет операции с балансом.
// Баланс не хранится, а вычисляется из журнала при каждом запросе.
type BalanceService struct {
	ledger   domain.LedgerRepository
	currency string
}

// NewBalanceService создает новый BalanceService
func NewBalanceService(ledger domain.LedgerRepository, currency string) *BalanceService {
	return &BalanceService{
		ledger:   ledger,
		currency: currency,
	}
}

// GetBalance получает баланс пользователя
func (s *BalanceService) GetBalance(ctx context.Context, userID uuid.UUID) (*domain.Balance, error) {
	balance, err := s.ledger.Balances(ctx, userID, s.currency)
	if err != nil {
		return nil, wrapf(err, "balance service: failed to get balance for user %s", userID)
	}

	return balance, nil
}

// ListEntries получает последние проводки пользователя
func (s *BalanceService) ListEntries(ctx context.Context, userID uuid.UUID) ([]*domain.LedgerEntry, error) {
	entries, err := s.ledger.ListEntries(ctx, userID, ledgerHistoryLimit)
	if err != nil {
		return nil, wrapf(err, "balance service: failed to list ledger entries for user %s", userID)
	}

	return entries, nil
}
