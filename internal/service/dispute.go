package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DisputeResolver реализует domain.DisputeService
type DisputeResolver struct {
	tx         domain.Transactor
	settlement *SettlementService
	logger     *zap.Logger
	now        func() time.Time
}

// NewDisputeResolver создает новый DisputeResolver
func NewDisputeResolver(tx domain.Transactor, settlement *SettlementService, logger *zap.Logger) *DisputeResolver {
	return &DisputeResolver{
		tx:         tx,
		settlement: settlement,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// OpenDispute открывает спор и тикет поддержки, заказ переходит в DISPUTED
func (r *DisputeResolver) OpenDispute(ctx context.Context, orderID, buyerID uuid.UUID, reason string) (*domain.Dispute, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: dispute reason is required", domain.ErrInvalidInput)
	}

	var dispute *domain.Dispute
	err := r.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		order, err := repos.Orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if !isBuyer(order, buyerID) {
			return fmt.Errorf("%w: only the buyer can open a dispute", domain.ErrForbidden)
		}

		next, err := domain.Transition(order.Status, domain.EventOpenDispute)
		if err != nil {
			return err
		}

		ticket := &domain.SupportTicket{
			ID:      uuid.New(),
			OrderID: order.ID,
			Subject: fmt.Sprintf("Dispute on order %s", order.ID),
			Status:  domain.TicketStatusOpen,
		}
		if err := repos.Tickets.Create(ctx, ticket); err != nil {
			return err
		}

		dispute = &domain.Dispute{
			ID:       uuid.New(),
			OrderID:  order.ID,
			TicketID: &ticket.ID,
			OpenedBy: buyerID,
			Status:   domain.DisputeStatusOpen,
			Reason:   reason,
		}
		if err := repos.Disputes.Create(ctx, dispute); err != nil {
			return err
		}

		from := order.Status
		if err := applyOrderTransition(ctx, repos, order, next, domain.EventOpenDispute, buyerID, reason, r.now()); err != nil {
			return err
		}

		return recordAudit(ctx, repos, buyerID, "dispute.open", "dispute", dispute.ID, string(from), string(next),
			map[string]any{"order_id": order.ID.String(), "ticket_id": ticket.ID.String(), "reason": reason})
	})
	if err != nil {
		return nil, wrapf(err, "dispute service: failed to open dispute for order %s", orderID)
	}

	r.logger.Info("dispute opened",
		zap.String("dispute_id", dispute.ID.String()),
		zap.String("order_id", orderID.String()),
	)

	return dispute, nil
}

// StartReview берет спор в работу администратором
func (r *DisputeResolver) StartReview(ctx context.Context, disputeID, adminID uuid.UUID) (*domain.Dispute, error) {
	var dispute *domain.Dispute
	err := r.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		d, err := repos.Disputes.GetForUpdate(ctx, disputeID)
		if err != nil {
			return err
		}
		if d.Status != domain.DisputeStatusOpen {
			return &domain.TransitionError{Entity: "dispute", From: string(d.Status), Event: "review"}
		}

		if err := repos.Disputes.UpdateStatus(ctx, d.ID, domain.DisputeStatusOpen, domain.DisputeStatusReview); err != nil {
			return err
		}
		d.Status = domain.DisputeStatusReview
		dispute = d

		return recordAudit(ctx, repos, adminID, "dispute.review", "dispute", d.ID,
			string(domain.DisputeStatusOpen), string(domain.DisputeStatusReview),
			map[string]any{"order_id": d.OrderID.String()})
	})
	if err != nil {
		return nil, wrapf(err, "dispute service: failed to start review of dispute %s", disputeID)
	}

	return dispute, nil
}

// Resolve применяет решение администратора. Изменения заказа, журнала, спора,
// тикета и аудита фиксируются одной транзакцией.
func (r *DisputeResolver) Resolve(ctx context.Context, disputeID, adminID uuid.UUID, action domain.ResolveAction, reason string) (*domain.Dispute, error) {
	if err := action.Validate(); err != nil {
		return nil, err
	}

	var dispute *domain.Dispute
	err := r.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		d, err := repos.Disputes.GetForUpdate(ctx, disputeID)
		if err != nil {
			return err
		}
		if !d.Status.Resolvable() {
			return fmt.Errorf("%w: dispute %s is %s", domain.ErrDisputeNotResolvable, d.ID, d.Status)
		}

		order, err := repos.Orders.GetForUpdate(ctx, d.OrderID)
		if err != nil {
			return err
		}

		switch action {
		case domain.ResolveActionRelease:
			err = r.release(ctx, repos, order, adminID, reason)
		case domain.ResolveActionRefund:
			err = r.settlement.refundTx(ctx, repos, order, adminID, reason)
		}
		if err != nil {
			return err
		}

		now := r.now()
		outcome := action.DisputeOutcome()
		resolution := domain.ResolutionTag(action, reason)
		if err := repos.Disputes.Finalize(ctx, d.ID, outcome, resolution, now); err != nil {
			return err
		}

		before := d.Status
		d.Status = outcome
		d.Resolution = &resolution
		d.ResolvedAt = &now
		dispute = d

		metadata := map[string]any{
			"action":   string(action),
			"order_id": order.ID.String(),
			"reason":   reason,
		}
		if d.TicketID != nil {
			if err := repos.Tickets.Close(ctx, *d.TicketID, now); err != nil {
				return err
			}
			metadata["ticket_id"] = d.TicketID.String()
		}

		return recordAudit(ctx, repos, adminID, "dispute.resolve", "dispute", d.ID, string(before), string(outcome), metadata)
	})
	if err != nil {
		return nil, wrapf(err, "dispute service: failed to resolve dispute %s", disputeID)
	}

	r.logger.Info("dispute resolved",
		zap.String("dispute_id", disputeID.String()),
		zap.String("action", string(action)),
		zap.String("status", string(dispute.Status)),
	)

	return dispute, nil
}

// release завершает заказ в пользу продавца
func (r *DisputeResolver) release(ctx context.Context, repos domain.Repositories, order *domain.Order, adminID uuid.UUID, reason string) error {
	switch order.Status {
	case domain.OrderStatusCancelled:
		return domain.ErrOrderNotReleasable
	case domain.OrderStatusRefunded:
		return domain.ErrOrderAlreadyRefunded
	}

	if order.Status != domain.OrderStatusCompleted {
		next, err := domain.Transition(order.Status, domain.EventDisputeRelease)
		if err != nil {
			return err
		}
		if err := applyOrderTransition(ctx, repos, order, next, domain.EventDisputeRelease, adminID, reason, r.now()); err != nil {
			return err
		}
	}

	return r.settlement.releaseTx(ctx, repos, order, adminID, reason, domain.ReleaseOptions{
		IgnoreDispute: true,
		Trigger:       domain.EventDisputeRelease,
	})
}
