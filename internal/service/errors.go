package service

import (
	"errors"
	"fmt"

	"github.com/avc/marketplace-escrow/internal/domain"
)

// Корневые доменные ошибки возвращаются вызывающему без обертки
var domainRoots = []error{
	domain.ErrNotFound,
	domain.ErrInvalidStateTransition,
	domain.ErrUnsupportedOperation,
	domain.ErrInsufficientBalance,
	domain.ErrInvalidVerificationCode,
	domain.ErrExpired,
	domain.ErrDuplicateEvent,
	domain.ErrInvalidInput,
	domain.ErrForbidden,
	domain.ErrConflict,
}

// wrapf не оборачивает sentinel errors, остальные ошибки получают контекст операции
func wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	for _, root := range domainRoots {
		if errors.Is(err, root) {
			return err
		}
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
