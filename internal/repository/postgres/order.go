package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, buyer_id, seller_id, status, total_amount_cents, currency, payment_ref,
	created_at, delivered_at, completed_at, expires_at`

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create сохраняет заказ вместе с позициями.
// Атомарность обеспечивает вызывающий через Transactor.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO orders (id, buyer_id, seller_id, status, total_amount_cents, currency, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		order.ID, order.BuyerID, order.SellerID, order.Status, order.TotalAmountCents, order.Currency, order.ExpiresAt,
	).Scan(&order.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to create order %s: %w", order.ID, classify(err))
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		_, err := r.db.Exec(ctx,
			`INSERT INTO order_items (id, order_id, listing_id, title, quantity, unit_price_cents)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.OrderID, item.ListingID, item.Title, item.Quantity, item.UnitPriceCents,
		)
		if err != nil {
			return fmt.Errorf("repository: failed to create item for order %s: %w", order.ID, classify(err))
		}
	}

	return nil
}

// GetByID получает заказ с позициями
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// GetForUpdate получает заказ и блокирует строку до конца транзакции
func (r *OrderRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *OrderRepository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Order, error) {
	order := &domain.Order{}

	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.BuyerID, &order.SellerID, &order.Status, &order.TotalAmountCents, &order.Currency,
		&order.PaymentRef, &order.CreatedAt, &order.DeliveredAt, &order.CompletedAt, &order.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %s: %w", id, classify(err))
	}

	return order, nil
}

func (r *OrderRepository) listItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, listing_id, title, quantity, unit_price_cents
		 FROM order_items
		 WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get items for order %s: %w", orderID, classify(err))
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ListingID, &item.Title, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating order items: %w", err)
	}

	return items, nil
}

// UpdateStatus переводит заказ из from в to, только если статус не изменился конкурентно
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus, at time.Time) error {
	var deliveredAt, completedAt *time.Time
	switch to {
	case domain.OrderStatusDelivered:
		deliveredAt = &at
	case domain.OrderStatusCompleted:
		completedAt = &at
	}

	result, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET status = $1, delivered_at = COALESCE($2, delivered_at), completed_at = COALESCE($3, completed_at), updated_at = $4
		 WHERE id = $5 AND status = $6`,
		to, deliveredAt, completedAt, at, id, from,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update order %s status: %w", id, classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: order %s is not %s", domain.ErrInvalidOrderTransition, id, from)
	}

	return nil
}

// SetPaymentRef сохраняет ссылку на платеж провайдера
func (r *OrderRepository) SetPaymentRef(ctx context.Context, id uuid.UUID, paymentRef string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders SET payment_ref = $1 WHERE id = $2`,
		paymentRef, id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set payment ref for order %s: %w", id, classify(err))
	}

	if result.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

// AppendEvent добавляет запись в историю переходов заказа
func (r *OrderRepository) AppendEvent(ctx context.Context, rec *domain.OrderEventRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO order_events (id, order_id, event, from_status, to_status, actor_id, reason)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		rec.ID, rec.OrderID, rec.Event, rec.FromStatus, rec.ToStatus, rec.ActorID, rec.Reason,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to append event %q for order %s: %w", rec.Event, rec.OrderID, classify(err))
	}

	return nil
}

// ListExpiredAwaitingPayment возвращает неоплаченные заказы с истекшим сроком
func (r *OrderRepository) ListExpiredAwaitingPayment(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	return r.listIDs(ctx,
		`SELECT id FROM orders
		 WHERE status = $1 AND expires_at < $2
		 ORDER BY expires_at ASC
		 LIMIT $3`,
		domain.OrderStatusAwaitingPayment, now, limit,
	)
}

// ListDeliveredBefore возвращает доставленные заказы без подтверждения до cutoff
func (r *OrderRepository) ListDeliveredBefore(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error) {
	return r.listIDs(ctx,
		`SELECT id FROM orders
		 WHERE status = $1 AND delivered_at < $2
		 ORDER BY delivered_at ASC
		 LIMIT $3`,
		domain.OrderStatusDelivered, cutoff, limit,
	)
}

func (r *OrderRepository) listIDs(ctx context.Context, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list orders: %w", classify(err))
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return ids, nil
}
