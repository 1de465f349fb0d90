package domain

import (
	"errors"
	"fmt"
)

// Корневые категории ошибок
var (
	ErrNotFound                = errors.New("not found")
	ErrInvalidStateTransition  = errors.New("invalid state transition")
	ErrUnsupportedOperation    = errors.New("unsupported operation")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrExpired                 = errors.New("expired")
	ErrDuplicateEvent          = errors.New("duplicate event")
	ErrTransient               = errors.New("transient infrastructure failure")
	ErrInvalidInput            = errors.New("invalid input")
	ErrForbidden               = errors.New("forbidden")
	ErrConflict                = errors.New("conflict")
)

// Ошибки поиска
var (
	ErrOrderNotFound       = fmt.Errorf("order %w", ErrNotFound)
	ErrDisputeNotFound     = fmt.Errorf("dispute %w", ErrNotFound)
	ErrTicketNotFound      = fmt.Errorf("ticket %w", ErrNotFound)
	ErrDraftNotFound       = fmt.Errorf("payout draft %w", ErrNotFound)
	ErrLedgerEntryNotFound = fmt.Errorf("ledger entry %w", ErrNotFound)
	ErrContactsNotFound    = fmt.Errorf("verified contacts %w", ErrNotFound)
	ErrWebhookNotFound     = fmt.Errorf("webhook event %w", ErrNotFound)
)

// Ошибки журнала и расчетов
var (
	ErrInvalidOrderTransition   = fmt.Errorf("order: %w", ErrInvalidStateTransition)
	ErrInvalidLedgerTransition  = fmt.Errorf("ledger entry: %w", ErrInvalidStateTransition)
	ErrOrderNotReleasable       = fmt.Errorf("order not releasable: %w", ErrInvalidStateTransition)
	ErrOrderAlreadyRefunded     = fmt.Errorf("order already refunded: %w", ErrInvalidStateTransition)
	ErrOrderDisputed            = fmt.Errorf("order under dispute: %w", ErrInvalidStateTransition)
	ErrDuplicatePaymentCredit   = fmt.Errorf("payment credit already exists: %w", ErrConflict)
	ErrInvalidAmount            = fmt.Errorf("amount must be positive: %w", ErrInvalidInput)
	ErrPartialAmountUnsupported = fmt.Errorf("partial amount: %w", ErrUnsupportedOperation)
)

// Ошибки споров
var (
	ErrDisputeNotResolvable         = fmt.Errorf("dispute not resolvable: %w", ErrInvalidStateTransition)
	ErrDisputeExists                = fmt.Errorf("dispute already exists: %w", ErrConflict)
	ErrPartialResolutionUnsupported = fmt.Errorf("partial resolution: %w", ErrUnsupportedOperation)
	ErrUnknownResolveAction         = fmt.Errorf("unknown resolve action: %w", ErrInvalidInput)
)

// Ошибки выплат
var (
	ErrDraftNotPending     = fmt.Errorf("payout draft not pending: %w", ErrInvalidStateTransition)
	ErrDraftExpired        = fmt.Errorf("payout draft %w", ErrExpired)
	ErrDraftAlreadyPending = fmt.Errorf("payout draft already pending: %w", ErrConflict)
	ErrInvalidDestination  = fmt.Errorf("payout destination: %w", ErrInvalidInput)
)

// Ошибки вебхуков
var (
	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrMalformedPayload   = fmt.Errorf("malformed webhook payload: %w", ErrInvalidInput)
	ErrPaymentMismatch    = errors.New("payment does not match order")
	ErrPermanentRejection = errors.New("permanent webhook failure")
)

// TransitionError представляет недопустимый переход машины состояний
type TransitionError struct {
	Entity string
	From   string
	Event  string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: event %q is not allowed in status %s", e.Entity, e.Event, e.From)
}

// Is позволяет сравнивать через errors.Is с категорией перехода
func (e *TransitionError) Is(target error) bool {
	switch target {
	case ErrInvalidStateTransition:
		return true
	case ErrInvalidOrderTransition:
		return e.Entity == "order"
	case ErrInvalidLedgerTransition:
		return e.Entity == "ledger entry"
	}
	return false
}
