package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// PayoutSettings параметры вывода средств
type PayoutSettings struct {
	Currency string
	DraftTTL time.Duration
}

// PayoutService реализует domain.PayoutService и domain.DraftSweeper
type PayoutService struct {
	tx       domain.Transactor
	payouts  domain.PayoutRepository
	contacts domain.ContactRepository
	verifier domain.VerificationProvider
	settings PayoutSettings
	logger   *zap.Logger
	now      func() time.Time
}

// NewPayoutService создает новый PayoutService
func NewPayoutService(
	tx domain.Transactor,
	payouts domain.PayoutRepository,
	contacts domain.ContactRepository,
	verifier domain.VerificationProvider,
	settings PayoutSettings,
	logger *zap.Logger,
) *PayoutService {
	return &PayoutService{
		tx:       tx,
		payouts:  payouts,
		contacts: contacts,
		verifier: verifier,
		settings: settings,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RequestPayout создает черновик вывода и отправляет коды по двум каналам.
// Пока у пользователя есть активный черновик, новый запрос отклоняется.
func (s *PayoutService) RequestPayout(ctx context.Context, userID uuid.UUID, amountCents int64, dest domain.PayoutDestination) (*domain.PayoutDraft, error) {
	if amountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	dest.PixKey = strings.TrimSpace(dest.PixKey)
	dest.BeneficiaryName = strings.TrimSpace(dest.BeneficiaryName)
	if dest.PixKey == "" || dest.BeneficiaryName == "" {
		return nil, domain.ErrInvalidDestination
	}

	contacts, err := s.contacts.GetContacts(ctx, userID)
	if err != nil {
		return nil, wrapf(err, "payout service: failed to get contacts for user %s", userID)
	}

	var draft *domain.PayoutDraft
	err = s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		if err := repos.Ledger.LockAccount(ctx, userID); err != nil {
			return err
		}

		now := s.now()
		if _, err := repos.Payouts.ExpireDrafts(ctx, &userID, now); err != nil {
			return err
		}

		pending, err := repos.Payouts.GetPendingDraft(ctx, userID)
		switch {
		case err == nil:
			return fmt.Errorf("%w: draft %s expires at %s", domain.ErrDraftAlreadyPending, pending.ID, pending.ExpiresAt.Format(time.RFC3339))
		case !errors.Is(err, domain.ErrDraftNotFound):
			return err
		}

		balance, err := repos.Ledger.Balances(ctx, userID, s.settings.Currency)
		if err != nil {
			return err
		}
		if balance.AvailableCents < amountCents {
			return domain.ErrInsufficientBalance
		}

		draft = &domain.PayoutDraft{
			ID:          uuid.New(),
			UserID:      userID,
			AmountCents: amountCents,
			Currency:    s.settings.Currency,
			Destination: dest,
			Status:      domain.DraftStatusPending,
			ExpiresAt:   now.Add(s.settings.DraftTTL),
		}
		if err := repos.Payouts.CreateDraft(ctx, draft); err != nil {
			return err
		}

		return recordAudit(ctx, repos, userID, "payout.request", "payout_draft", draft.ID, "", string(draft.Status),
			map[string]any{"amount_cents": amountCents})
	})
	if err != nil {
		return nil, wrapf(err, "payout service: failed to request payout for user %s", userID)
	}

	// Отправка кодов вне транзакции, черновик остается PENDING при любом исходе
	s.sendCode(ctx, draft, contacts.Email, domain.ChannelEmail)
	s.sendCode(ctx, draft, contacts.Phone, domain.ChannelSMS)

	s.logger.Info("payout requested",
		zap.String("draft_id", draft.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int64("amount_cents", amountCents),
	)

	return draft, nil
}

func (s *PayoutService) sendCode(ctx context.Context, draft *domain.PayoutDraft, destination string, channel domain.VerificationChannel) {
	status, err := s.verifier.SendVerification(ctx, draft.ID.String(), destination, channel)
	if err != nil {
		s.logger.Warn("failed to send verification code",
			zap.String("draft_id", draft.ID.String()),
			zap.String("channel", string(channel)),
			zap.Error(err),
		)
		return
	}

	s.logger.Debug("verification code sent",
		zap.String("draft_id", draft.ID.String()),
		zap.String("channel", string(channel)),
		zap.String("status", string(status)),
	)
}

// ConfirmPayout проверяет оба кода и атомарно списывает средства с созданием выплаты
func (s *PayoutService) ConfirmPayout(ctx context.Context, userID, draftID uuid.UUID, emailCode, smsCode string) (*domain.Payout, error) {
	draft, err := s.payouts.GetDraft(ctx, draftID)
	if err != nil {
		return nil, wrapf(err, "payout service: failed to get draft %s", draftID)
	}
	if draft.UserID != userID {
		return nil, domain.ErrDraftNotFound
	}
	if draft.Status != domain.DraftStatusPending {
		return nil, domain.ErrDraftNotPending
	}
	if draft.ExpiredAt(s.now()) {
		s.expireDraft(ctx, draft.ID)
		return nil, domain.ErrDraftExpired
	}

	if err := s.verifyCodes(ctx, draft, emailCode, smsCode); err != nil {
		return nil, err
	}

	var payout *domain.Payout
	err = s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		if err := repos.Ledger.LockAccount(ctx, userID); err != nil {
			return err
		}

		d, err := repos.Payouts.GetDraftForUpdate(ctx, draftID)
		if err != nil {
			return err
		}
		if d.Status != domain.DraftStatusPending {
			return domain.ErrDraftNotPending
		}
		// Проверка срока повторяется под блокировкой
		if d.ExpiredAt(s.now()) {
			return domain.ErrDraftExpired
		}

		balance, err := repos.Ledger.Balances(ctx, userID, d.Currency)
		if err != nil {
			return err
		}
		if balance.AvailableCents < d.AmountCents {
			return domain.ErrInsufficientBalance
		}

		reference := ulid.Make().String()
		entry, err := repos.Ledger.Debit(ctx, userID, d.AmountCents, domain.EntrySourcePayout, domain.EntryStateAvailable,
			domain.EntryRefs{Currency: d.Currency, Description: "payout " + reference},
		)
		if err != nil {
			return err
		}

		payout = &domain.Payout{
			ID:            uuid.New(),
			DraftID:       d.ID,
			UserID:        userID,
			LedgerEntryID: entry.ID,
			Reference:     reference,
			AmountCents:   d.AmountCents,
			Currency:      d.Currency,
			Destination:   d.Destination,
			Status:        domain.PayoutStatusQueued,
		}
		if err := repos.Payouts.CreatePayout(ctx, payout); err != nil {
			return err
		}

		if err := repos.Payouts.UpdateDraftStatus(ctx, d.ID, domain.DraftStatusPending, domain.DraftStatusConfirmed); err != nil {
			return err
		}

		return recordAudit(ctx, repos, userID, "payout.confirm", "payout_draft", d.ID,
			string(domain.DraftStatusPending), string(domain.DraftStatusConfirmed),
			map[string]any{"payout_id": payout.ID.String(), "reference": reference, "amount_cents": d.AmountCents})
	})
	if err != nil {
		if errors.Is(err, domain.ErrDraftExpired) {
			s.expireDraft(ctx, draftID)
		}
		return nil, wrapf(err, "payout service: failed to confirm draft %s", draftID)
	}

	s.logger.Info("payout confirmed",
		zap.String("draft_id", draftID.String()),
		zap.String("payout_id", payout.ID.String()),
		zap.String("reference", payout.Reference),
		zap.Int64("amount_cents", payout.AmountCents),
	)

	return payout, nil
}

// verifyCodes проверяет коды, выданные для этого черновика, и не раскрывает, какой код неверен
func (s *PayoutService) verifyCodes(ctx context.Context, draft *domain.PayoutDraft, emailCode, smsCode string) error {
	emailCode = strings.TrimSpace(emailCode)
	smsCode = strings.TrimSpace(smsCode)
	if emailCode == "" || smsCode == "" {
		return domain.ErrInvalidVerificationCode
	}

	contacts, err := s.contacts.GetContacts(ctx, draft.UserID)
	if err != nil {
		return wrapf(err, "payout service: failed to get contacts for user %s", draft.UserID)
	}

	scope := draft.ID.String()
	emailStatus, emailErr := s.verifier.CheckVerification(ctx, scope, contacts.Email, emailCode)
	smsStatus, smsErr := s.verifier.CheckVerification(ctx, scope, contacts.Phone, smsCode)
	if err := errors.Join(emailErr, smsErr); err != nil {
		// Отказ провайдера не означает неверный код, запрос можно повторить
		if !errors.Is(err, domain.ErrTransient) {
			err = fmt.Errorf("%w: %w", domain.ErrTransient, err)
		}
		return fmt.Errorf("payout service: verification check failed: %w", err)
	}

	if emailStatus != domain.VerificationApproved || smsStatus != domain.VerificationApproved {
		return domain.ErrInvalidVerificationCode
	}

	return nil
}

func (s *PayoutService) expireDraft(ctx context.Context, draftID uuid.UUID) {
	err := s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		return repos.Payouts.UpdateDraftStatus(ctx, draftID, domain.DraftStatusPending, domain.DraftStatusExpired)
	})
	if err != nil && !errors.Is(err, domain.ErrDraftNotPending) {
		s.logger.Warn("failed to mark draft expired", zap.String("draft_id", draftID.String()), zap.Error(err))
	}
}

// ListPayouts возвращает историю выплат пользователя
func (s *PayoutService) ListPayouts(ctx context.Context, userID uuid.UUID) ([]*domain.Payout, error) {
	payouts, err := s.payouts.ListPayouts(ctx, userID)
	if err != nil {
		return nil, wrapf(err, "payout service: failed to list payouts for user %s", userID)
	}

	return payouts, nil
}

// ExpireStaleDrafts помечает истекшие черновики всех пользователей
func (s *PayoutService) ExpireStaleDrafts(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.payouts.ExpireDrafts(ctx, nil, now)
	if err != nil {
		return 0, wrapf(err, "payout service: failed to expire drafts")
	}

	return n, nil
}
