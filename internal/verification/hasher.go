package verification

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost стоимость хеширования кодов по умолчанию
const DefaultCost = bcrypt.DefaultCost

// ErrCodeMismatch код не совпадает с сохраненным хешем
var ErrCodeMismatch = errors.New("verification code does not match")

// CodeHasher хеширует коды подтверждения перед сохранением
type CodeHasher struct {
	cost int
}

// NewCodeHasher создает hasher с заданной стоимостью
func NewCodeHasher(cost int) *CodeHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &CodeHasher{cost: cost}
}

// Hash хеширует код
func (h *CodeHasher) Hash(code string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("code cannot be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}

	return string(hashed), nil
}

// Check сверяет код с хешем, несовпадение возвращает ErrCodeMismatch
func (h *CodeHasher) Check(hash, code string) error {
	if hash == "" || code == "" {
		return ErrCodeMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrCodeMismatch
		}
		return fmt.Errorf("failed to check code: %w", err)
	}

	return nil
}
