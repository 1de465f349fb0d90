package verification

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"go.uber.org/zap"
)

const codeDigits = 6

// Settings параметры выдачи и проверки кодов
type Settings struct {
	CodeTTL     time.Duration
	MaxAttempts int64
	Cooldown    time.Duration
	HashCost    int
}

// CodeVerifier выдает одноразовые коды и проверяет их.
// Реализует domain.VerificationProvider.
type CodeVerifier struct {
	store    CodeStore
	sender   Sender
	hasher   *CodeHasher
	settings Settings
	logger   *zap.Logger
	generate func() (string, error)
}

// NewCodeVerifier создает новый CodeVerifier
func NewCodeVerifier(store CodeStore, sender Sender, settings Settings, logger *zap.Logger) *CodeVerifier {
	if settings.CodeTTL <= 0 {
		settings.CodeTTL = 10 * time.Minute
	}
	if settings.MaxAttempts <= 0 {
		settings.MaxAttempts = 5
	}

	return &CodeVerifier{
		store:    store,
		sender:   sender,
		hasher:   NewCodeHasher(settings.HashCost),
		settings: settings,
		logger:   logger,
		generate: generateCode,
	}
}

func generateCode() (string, error) {
	limit := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	return fmt.Sprintf("%0*d", codeDigits, n.Int64()), nil
}

// subjectKey привязывает код к операции и адресу
func subjectKey(scope, destination string) string {
	return scope + ":" + destination
}

// SendVerification выдает новый код для операции scope и отправляет его на адрес.
// Пока действует интервал между отправками, прежний код операции остается в силе.
func (v *CodeVerifier) SendVerification(ctx context.Context, scope, destination string, channel domain.VerificationChannel) (domain.VerificationStatus, error) {
	scope = strings.TrimSpace(scope)
	destination = strings.TrimSpace(destination)
	if scope == "" || destination == "" {
		return "", fmt.Errorf("verification: %w: empty scope or destination", domain.ErrInvalidInput)
	}
	subject := subjectKey(scope, destination)

	acquired, err := v.store.AcquireCooldown(ctx, subject, v.settings.Cooldown)
	if err != nil {
		return "", fmt.Errorf("verification: %w", err)
	}
	if !acquired {
		existing, err := v.store.Get(ctx, subject)
		if err != nil {
			return "", fmt.Errorf("verification: %w", err)
		}
		if existing != nil {
			v.logger.Debug("verification resend suppressed by cooldown", zap.String("channel", string(channel)))
			return domain.VerificationPending, nil
		}
	}

	code, err := v.generate()
	if err != nil {
		return "", fmt.Errorf("verification: %w", err)
	}

	hash, err := v.hasher.Hash(code)
	if err != nil {
		return "", fmt.Errorf("verification: %w", err)
	}

	if err := v.store.Save(ctx, subject, hash, v.settings.CodeTTL); err != nil {
		return "", fmt.Errorf("verification: %w", err)
	}

	if err := v.sender.Send(ctx, Message{Destination: destination, Channel: channel, Code: code}); err != nil {
		if delErr := v.store.Delete(ctx, subject); delErr != nil {
			v.logger.Warn("failed to drop undelivered code", zap.Error(delErr))
		}
		return "", fmt.Errorf("verification: failed to deliver code: %w", err)
	}

	return domain.VerificationPending, nil
}

// CheckVerification сверяет код операции scope. Неверный, истекший, выданный
// для другой операции или исчерпавший попытки код дает статус pending без ошибки.
func (v *CodeVerifier) CheckVerification(ctx context.Context, scope, destination, code string) (domain.VerificationStatus, error) {
	subject := subjectKey(strings.TrimSpace(scope), strings.TrimSpace(destination))

	record, err := v.store.Get(ctx, subject)
	if err != nil {
		return "", fmt.Errorf("verification: %w", err)
	}
	if record == nil {
		return domain.VerificationPending, nil
	}

	if record.Attempts >= v.settings.MaxAttempts {
		v.burn(ctx, subject)
		return domain.VerificationPending, nil
	}

	err = v.hasher.Check(record.Hash, strings.TrimSpace(code))
	if err == nil {
		return domain.VerificationApproved, nil
	}
	if !errors.Is(err, ErrCodeMismatch) {
		return "", fmt.Errorf("verification: %w", err)
	}

	attempts, err := v.store.IncrAttempts(ctx, subject)
	if err != nil {
		return "", fmt.Errorf("verification: %w", err)
	}
	if attempts >= v.settings.MaxAttempts {
		v.burn(ctx, subject)
	}

	return domain.VerificationPending, nil
}

func (v *CodeVerifier) burn(ctx context.Context, subject string) {
	if err := v.store.Delete(ctx, subject); err != nil {
		v.logger.Warn("failed to burn verification code", zap.Error(err))
		return
	}
	v.logger.Info("verification code burned after too many attempts")
}
