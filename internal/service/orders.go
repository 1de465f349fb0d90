package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderSettings параметры жизненного цикла заказа
type OrderSettings struct {
	Currency         string
	PaymentTTL       time.Duration
	AutoReleaseDelay time.Duration
	SweepBatchSize   int
}

// OrderService реализует domain.OrderService и domain.OrderSweeper
type OrderService struct {
	tx         domain.Transactor
	orders     domain.OrderRepository
	settlement *SettlementService
	settings   OrderSettings
	logger     *zap.Logger
	now        func() time.Time
}

// NewOrderService создает новый OrderService
func NewOrderService(tx domain.Transactor, orders domain.OrderRepository, settlement *SettlementService, settings OrderSettings, logger *zap.Logger) *OrderService {
	if settings.SweepBatchSize <= 0 {
		settings.SweepBatchSize = 100
	}
	return &OrderService{
		tx:         tx,
		orders:     orders,
		settlement: settlement,
		settings:   settings,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder оформляет заказ и открывает окно оплаты
func (s *OrderService) CreateOrder(ctx context.Context, input domain.CheckoutInput) (*domain.Order, error) {
	order, err := s.buildOrder(input)
	if err != nil {
		return nil, err
	}

	next, err := domain.Transition(order.Status, domain.EventCheckout)
	if err != nil {
		return nil, err
	}

	now := s.now()
	expiresAt := now.Add(s.settings.PaymentTTL)
	order.Status = next
	order.ExpiresAt = &expiresAt

	err = s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		if err := repos.Orders.Create(ctx, order); err != nil {
			return err
		}
		return repos.Orders.AppendEvent(ctx, &domain.OrderEventRecord{
			OrderID:    order.ID,
			Event:      string(domain.EventCheckout),
			FromStatus: domain.OrderStatusCreated,
			ToStatus:   next,
			ActorID:    order.BuyerID,
		})
	})
	if err != nil {
		return nil, wrapf(err, "order service: failed to create order for buyer %s", input.BuyerID)
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.Int64("amount_cents", order.TotalAmountCents),
	)

	return order, nil
}

func (s *OrderService) buildOrder(input domain.CheckoutInput) (*domain.Order, error) {
	if input.BuyerID == uuid.Nil || input.SellerID == uuid.Nil {
		return nil, fmt.Errorf("%w: buyer and seller are required", domain.ErrInvalidInput)
	}
	if input.BuyerID == input.SellerID {
		return nil, fmt.Errorf("%w: buyer cannot purchase from themselves", domain.ErrInvalidInput)
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", domain.ErrInvalidInput)
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = s.settings.Currency
	}
	if currency != s.settings.Currency {
		return nil, fmt.Errorf("%w: unsupported currency %q", domain.ErrInvalidInput, input.Currency)
	}

	order := &domain.Order{
		ID:       uuid.New(),
		BuyerID:  input.BuyerID,
		SellerID: input.SellerID,
		Status:   domain.OrderStatusCreated,
		Currency: currency,
		Items:    make([]domain.OrderItem, 0, len(input.Items)),
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 || item.UnitPriceCents <= 0 {
			return nil, fmt.Errorf("%w: item %q must have positive quantity and price", domain.ErrInvalidInput, item.Title)
		}
		item.ID = uuid.New()
		item.OrderID = order.ID
		order.TotalAmountCents += int64(item.Quantity) * item.UnitPriceCents
		order.Items = append(order.Items, item)
	}

	return order, nil
}

// GetOrder возвращает заказ его участнику
func (s *OrderService) GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, wrapf(err, "order service: failed to get order %s", orderID)
	}

	// Чужой заказ неотличим от несуществующего
	if !order.IsParticipant(userID) {
		return nil, domain.ErrOrderNotFound
	}

	return order, nil
}

// MarkShipped продавец отправил заказ
func (s *OrderService) MarkShipped(ctx context.Context, orderID, sellerID uuid.UUID) (*domain.Order, error) {
	return s.move(ctx, orderID, sellerID, domain.EventShip, isSeller)
}

// MarkDelivered продавец подтвердил доставку
func (s *OrderService) MarkDelivered(ctx context.Context, orderID, sellerID uuid.UUID) (*domain.Order, error) {
	return s.move(ctx, orderID, sellerID, domain.EventDeliver, isSeller)
}

// CancelOrder покупатель отменяет неоплаченный заказ
func (s *OrderService) CancelOrder(ctx context.Context, orderID, buyerID uuid.UUID) (*domain.Order, error) {
	return s.move(ctx, orderID, buyerID, domain.EventCancel, isBuyer)
}

// ConfirmReceipt покупатель подтверждает получение, средства уходят продавцу
func (s *OrderService) ConfirmReceipt(ctx context.Context, orderID, buyerID uuid.UUID) (*domain.Order, error) {
	var order *domain.Order
	err := s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		locked, err := repos.Orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if !isBuyer(locked, buyerID) {
			return fmt.Errorf("%w: only the buyer can confirm receipt", domain.ErrForbidden)
		}
		order = locked
		return s.settlement.releaseTx(ctx, repos, locked, buyerID, "buyer confirmed receipt",
			domain.ReleaseOptions{Trigger: domain.EventConfirmReceipt})
	})
	if err != nil {
		return nil, wrapf(err, "order service: failed to confirm receipt of order %s", orderID)
	}

	return order, nil
}

func (s *OrderService) move(ctx context.Context, orderID, actorID uuid.UUID, event domain.OrderEvent, allowed func(*domain.Order, uuid.UUID) bool) (*domain.Order, error) {
	var order *domain.Order
	err := s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
		locked, err := repos.Orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if !allowed(locked, actorID) {
			return fmt.Errorf("%w: user %s cannot %s order", domain.ErrForbidden, actorID, event)
		}

		next, err := domain.Transition(locked.Status, event)
		if err != nil {
			return err
		}

		order = locked
		return applyOrderTransition(ctx, repos, locked, next, event, actorID, "", s.now())
	})
	if err != nil {
		return nil, wrapf(err, "order service: failed to %s order %s", event, orderID)
	}

	return order, nil
}

// ExpireUnpaidOrders отменяет заказы, не оплаченные до expiresAt
func (s *OrderService) ExpireUnpaidOrders(ctx context.Context, now time.Time) (int, error) {
	ids, err := s.orders.ListExpiredAwaitingPayment(ctx, now, s.settings.SweepBatchSize)
	if err != nil {
		return 0, wrapf(err, "order service: failed to list expired orders")
	}

	expired := 0
	for _, id := range ids {
		err := s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
			order, err := repos.Orders.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			// Оплата могла прийти между выборкой и блокировкой
			if order.Status != domain.OrderStatusAwaitingPayment || order.ExpiresAt == nil || !now.After(*order.ExpiresAt) {
				return errSkipped
			}

			next, err := domain.Transition(order.Status, domain.EventExpire)
			if err != nil {
				return err
			}
			return applyOrderTransition(ctx, repos, order, next, domain.EventExpire, domain.SystemActorID, "payment window expired", now)
		})

		switch {
		case err == nil:
			expired++
		case errors.Is(err, errSkipped):
		default:
			s.logger.Error("failed to expire order", zap.String("order_id", id.String()), zap.Error(err))
		}
	}

	return expired, nil
}

// AutoReleaseDelivered завершает доставленные заказы без реакции покупателя
func (s *OrderService) AutoReleaseDelivered(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-s.settings.AutoReleaseDelay)
	ids, err := s.orders.ListDeliveredBefore(ctx, cutoff, s.settings.SweepBatchSize)
	if err != nil {
		return 0, wrapf(err, "order service: failed to list delivered orders")
	}

	released := 0
	for _, id := range ids {
		err := s.tx.WithinTx(ctx, func(repos domain.Repositories) error {
			order, err := repos.Orders.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if order.Status != domain.OrderStatusDelivered || order.DeliveredAt == nil || order.DeliveredAt.After(cutoff) {
				return errSkipped
			}
			return s.settlement.releaseTx(ctx, repos, order, domain.SystemActorID, "auto release after delivery window",
				domain.ReleaseOptions{Trigger: domain.EventAutoRelease})
		})

		switch {
		case err == nil:
			released++
		case errors.Is(err, errSkipped):
		default:
			s.logger.Error("failed to auto release order", zap.String("order_id", id.String()), zap.Error(err))
		}
	}

	return released, nil
}

// errSkipped откатывает транзакцию свипа, когда заказ уже не подходит
var errSkipped = errors.New("skipped")

func isBuyer(order *domain.Order, userID uuid.UUID) bool {
	return order.BuyerID == userID
}

func isSeller(order *domain.Order, userID uuid.UUID) bool {
	return order.SellerID == userID
}
