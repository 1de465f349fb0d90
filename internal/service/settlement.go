package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SettlementService реализует domain.SettlementService.
// Только он переводит проводки, привязанные к заказам, между состояниями.
type SettlementService struct {
	tx     domain.Transactor
	fees   *FeePolicy
	logger *zap.Logger
	now    func() time.Time
}

// NewSettlementService создает новый SettlementService
func NewSettlementService(tx domain.Transactor, fees *FeePolicy, logger *zap.Logger) *SettlementService {
	return &SettlementService{
		tx:     tx,
		fees:   fees,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ConfirmPayment переводит заказ в PAID и удерживает полную сумму на счете продавца.
// Повторный вызов для уже оплаченного заказа ничего не меняет.
func (s *SettlementService) ConfirmPayment(ctx context.Context, orderID uuid.UUID, paymentRef string) (*domain.Order, error) {
	if paymentRef == "" {
		return nil, fmt.Errorf("%w: payment reference is required", domain.ErrInvalidInput)
	}

	var (
		order   *domain.Order
		applied bool
	)
	err := s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		locked, err := repos.Orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		applied, err = s.confirmPaymentTx(ctx, repos, locked, paymentRef)
		order = locked
		return err
	})
	if err != nil {
		return nil, wrapf(err, "settlement service: failed to confirm payment for order %s", orderID)
	}

	if applied {
		s.logger.Info("payment confirmed",
			zap.String("order_id", orderID.String()),
			zap.Int64("amount_cents", order.TotalAmountCents),
		)
	}

	return order, nil
}

// ReleaseOrder выплачивает удержанные средства продавцу за вычетом комиссии
func (s *SettlementService) ReleaseOrder(ctx context.Context, orderID, actorID uuid.UUID, reason string, opts domain.ReleaseOptions) (*domain.Order, error) {
	var order *domain.Order
	err := s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		locked, err := repos.Orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		order = locked
		return s.releaseTx(ctx, repos, locked, actorID, reason, opts)
	})
	if err != nil {
		return nil, wrapf(err, "settlement service: failed to release order %s", orderID)
	}

	return order, nil
}

// RefundOrder возвращает покупателю полную сумму заказа
func (s *SettlementService) RefundOrder(ctx context.Context, orderID, actorID uuid.UUID, reason string) (*domain.Order, error) {
	var order *domain.Order
	err := s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		locked, err := repos.Orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		order = locked
		// Заказ в споре возвращается только через разрешение спора
		if locked.Status == domain.OrderStatusDisputed {
			return domain.ErrOrderDisputed
		}
		return s.refundTx(ctx, repos, locked, actorID, reason)
	})
	if err != nil {
		return nil, wrapf(err, "settlement service: failed to refund order %s", orderID)
	}

	return order, nil
}

// confirmPaymentTx работает внутри транзакции вызывающего, order уже заблокирован.
// Возвращает false, если оплата уже была учтена ранее.
func (s *SettlementService) confirmPaymentTx(ctx context.Context, repos domain.Repositories, order *domain.Order, paymentRef string) (bool, error) {
	// Заказ уже прошел оплату
	if order.Status.HoldsFunds() || order.Status == domain.OrderStatusCompleted || order.Status == domain.OrderStatusRefunded {
		return false, nil
	}

	from := order.Status
	next, err := domain.Transition(from, domain.EventPaymentConfirmed)
	if err != nil {
		return false, err
	}

	ref := paymentRef
	_, err = repos.Ledger.Credit(ctx, order.SellerID, order.TotalAmountCents,
		domain.EntrySourceOrderPayment, domain.EntryStateHeld,
		domain.EntryRefs{Currency: order.Currency, OrderID: &order.ID, PaymentID: &ref, Description: "escrow hold"},
	)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePaymentCredit) {
			return false, nil
		}
		return false, err
	}

	if err := repos.Orders.SetPaymentRef(ctx, order.ID, paymentRef); err != nil {
		return false, err
	}

	now := s.now()
	if err := applyOrderTransition(ctx, repos, order, next, domain.EventPaymentConfirmed, domain.SystemActorID, "payment "+paymentRef, now); err != nil {
		return false, err
	}
	order.PaymentRef = &ref

	err = recordAudit(ctx, repos, domain.SystemActorID, "order.payment_confirmed", "order", order.ID,
		string(from), string(next), map[string]any{"payment_ref": paymentRef, "amount_cents": order.TotalAmountCents})
	return true, err
}

// releaseTx переводит HELD кредит продавца в AVAILABLE и списывает комиссию
func (s *SettlementService) releaseTx(ctx context.Context, repos domain.Repositories, order *domain.Order, actorID uuid.UUID, reason string, opts domain.ReleaseOptions) error {
	switch order.Status {
	case domain.OrderStatusCancelled:
		return domain.ErrOrderNotReleasable
	case domain.OrderStatusRefunded:
		return domain.ErrOrderAlreadyRefunded
	case domain.OrderStatusDisputed:
		if !opts.IgnoreDispute {
			return domain.ErrOrderDisputed
		}
	}

	if opts.AmountCents != nil && *opts.AmountCents != order.TotalAmountCents {
		return domain.ErrPartialAmountUnsupported
	}

	from := order.Status
	next := from
	event := releaseEvent(from, opts)
	// Разрешение спора может заранее перевести заказ в COMPLETED
	if !(from == domain.OrderStatusCompleted && opts.IgnoreDispute) {
		var err error
		if next, err = domain.Transition(from, event); err != nil {
			return err
		}
	}

	held, err := repos.Ledger.FindHeldPaymentCredit(ctx, order.ID)
	if err != nil {
		if errors.Is(err, domain.ErrLedgerEntryNotFound) {
			return fmt.Errorf("%w: no held payment for order %s", domain.ErrOrderNotReleasable, order.ID)
		}
		return err
	}

	if err := repos.Ledger.Transition(ctx, held.ID, domain.EntryStateHeld, domain.EntryStateAvailable); err != nil {
		return err
	}

	fee := s.fees.Fee(held.AmountCents)
	if fee > 0 {
		_, err := repos.Ledger.Debit(ctx, order.SellerID, fee, domain.EntrySourceFee, domain.EntryStateAvailable,
			domain.EntryRefs{Currency: held.Currency, OrderID: &order.ID, PaymentID: held.PaymentID, Description: "platform fee"},
		)
		if err != nil {
			return err
		}
	}

	now := s.now()
	if next != from {
		if err := applyOrderTransition(ctx, repos, order, next, event, actorID, reason, now); err != nil {
			return err
		}
	}

	err = recordAudit(ctx, repos, actorID, "order.release", "order", order.ID, string(from), string(order.Status),
		map[string]any{
			"amount_cents": held.AmountCents,
			"fee_cents":    fee,
			"net_cents":    held.AmountCents - fee,
			"trigger":      string(event),
			"reason":       reason,
		})
	if err != nil {
		return err
	}

	s.logger.Info("order released",
		zap.String("order_id", order.ID.String()),
		zap.String("seller_id", order.SellerID.String()),
		zap.Int64("amount_cents", held.AmountCents),
		zap.Int64("fee_cents", fee),
	)

	return nil
}

// refundTx сторнирует HELD кредит продавца и зачисляет сумму покупателю
func (s *SettlementService) refundTx(ctx context.Context, repos domain.Repositories, order *domain.Order, actorID uuid.UUID, reason string) error {
	switch order.Status {
	case domain.OrderStatusRefunded:
		return domain.ErrOrderAlreadyRefunded
	case domain.OrderStatusCancelled:
		return domain.ErrOrderNotReleasable
	}

	from := order.Status
	next, err := domain.Transition(from, domain.EventRefund)
	if err != nil {
		return err
	}

	held, err := repos.Ledger.FindHeldPaymentCredit(ctx, order.ID)
	if err != nil {
		if errors.Is(err, domain.ErrLedgerEntryNotFound) {
			return fmt.Errorf("%w: no held payment for order %s", domain.ErrOrderNotReleasable, order.ID)
		}
		return err
	}

	if err := repos.Ledger.Transition(ctx, held.ID, domain.EntryStateHeld, domain.EntryStateReversed); err != nil {
		return err
	}

	_, err = repos.Ledger.Credit(ctx, order.BuyerID, held.AmountCents, domain.EntrySourceRefund, domain.EntryStateAvailable,
		domain.EntryRefs{Currency: held.Currency, OrderID: &order.ID, PaymentID: held.PaymentID, Description: "order refund"},
	)
	if err != nil {
		return err
	}

	if err := applyOrderTransition(ctx, repos, order, next, domain.EventRefund, actorID, reason, s.now()); err != nil {
		return err
	}

	err = recordAudit(ctx, repos, actorID, "order.refund", "order", order.ID, string(from), string(next),
		map[string]any{"amount_cents": held.AmountCents, "reason": reason})
	if err != nil {
		return err
	}

	s.logger.Info("order refunded",
		zap.String("order_id", order.ID.String()),
		zap.String("buyer_id", order.BuyerID.String()),
		zap.Int64("amount_cents", held.AmountCents),
	)

	return nil
}

func releaseEvent(from domain.OrderStatus, opts domain.ReleaseOptions) domain.OrderEvent {
	switch {
	case from == domain.OrderStatusDisputed:
		return domain.EventDisputeRelease
	case opts.AdminOverride:
		return domain.EventAdminRelease
	case opts.Trigger != "":
		return opts.Trigger
	default:
		return domain.EventConfirmReceipt
	}
}

// applyOrderTransition обновляет статус с проверкой предыдущего и пишет историю
func applyOrderTransition(ctx context.Context, repos domain.Repositories, order *domain.Order, next domain.OrderStatus, event domain.OrderEvent, actorID uuid.UUID, reason string, now time.Time) error {
	from := order.Status
	if err := repos.Orders.UpdateStatus(ctx, order.ID, from, next, now); err != nil {
		return err
	}

	err := repos.Orders.AppendEvent(ctx, &domain.OrderEventRecord{
		OrderID:    order.ID,
		Event:      string(event),
		FromStatus: from,
		ToStatus:   next,
		ActorID:    actorID,
		Reason:     reason,
	})
	if err != nil {
		return err
	}

	order.Status = next
	switch next {
	case domain.OrderStatusDelivered:
		order.DeliveredAt = &now
	case domain.OrderStatusCompleted:
		order.CompletedAt = &now
	}

	return nil
}

func recordAudit(ctx context.Context, repos domain.Repositories, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, before, after string, metadata map[string]any) error {
	return repos.Audit.Append(ctx, &domain.AuditEntry{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Before:     before,
		After:      after,
		Metadata:   metadata,
	})
}
