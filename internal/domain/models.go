package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryType направление проводки
type EntryType string

const (
	EntryTypeCredit EntryType = "CREDIT"
	EntryTypeDebit  EntryType = "DEBIT"
)

// EntryState состояние проводки в жизненном цикле эскроу
type EntryState string

const (
	EntryStateHeld      EntryState = "HELD"
	EntryStateAvailable EntryState = "AVAILABLE"
	EntryStateReversed  EntryState = "REVERSED"
)

// EntrySource источник проводки
type EntrySource string

const (
	EntrySourceOrderPayment EntrySource = "ORDER_PAYMENT"
	EntrySourceRefund       EntrySource = "REFUND"
	EntrySourceFee          EntrySource = "FEE"
	EntrySourcePayout       EntrySource = "PAYOUT"
)

// LedgerEntry представляет проводку в журнале.
// Сумма всегда положительная, направление задается Type.
type LedgerEntry struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"-"`
	Type        EntryType   `json:"type"`
	State       EntryState  `json:"state"`
	Source      EntrySource `json:"source"`
	AmountCents int64       `json:"amount_cents"`
	Currency    string      `json:"currency"`
	OrderID     *uuid.UUID  `json:"order_id,omitempty"`
	PaymentID   *string     `json:"payment_id,omitempty"`
	Description string      `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// EntryRefs ссылки, с которыми создается проводка
type EntryRefs struct {
	Currency    string
	OrderID     *uuid.UUID
	PaymentID   *string
	Description string
}

// Balance производный баланс пользователя, всегда вычисляется из журнала
type Balance struct {
	Currency       string `json:"currency"`
	HeldCents      int64  `json:"held"`
	AvailableCents int64  `json:"available"`
	ReversedCents  int64  `json:"reversed"`
}

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusCreated         OrderStatus = "CREATED"
	OrderStatusAwaitingPayment OrderStatus = "AWAITING_PAYMENT"
	OrderStatusPaid            OrderStatus = "PAID"
	OrderStatusInDelivery      OrderStatus = "IN_DELIVERY"
	OrderStatusDelivered       OrderStatus = "DELIVERED"
	OrderStatusCompleted       OrderStatus = "COMPLETED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
	OrderStatusDisputed        OrderStatus = "DISPUTED"
	OrderStatusRefunded        OrderStatus = "REFUNDED"
)

// Order представляет покупку
type Order struct {
	ID               uuid.UUID   `json:"id"`
	BuyerID          uuid.UUID   `json:"buyer_id"`
	SellerID         uuid.UUID   `json:"seller_id"`
	Status           OrderStatus `json:"status"`
	TotalAmountCents int64       `json:"total_amount_cents"`
	Currency         string      `json:"currency"`
	PaymentRef       *string     `json:"payment_ref,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	DeliveredAt      *time.Time  `json:"delivered_at,omitempty"`
	CompletedAt      *time.Time  `json:"completed_at,omitempty"`
	ExpiresAt        *time.Time  `json:"expires_at,omitempty"`
	Items            []OrderItem `json:"items,omitempty"`
}

// IsParticipant проверяет, что пользователь покупатель или продавец
func (o *Order) IsParticipant(userID uuid.UUID) bool {
	return o.BuyerID == userID || o.SellerID == userID
}

// OrderItem позиция заказа
type OrderItem struct {
	ID             uuid.UUID `json:"id"`
	OrderID        uuid.UUID `json:"-"`
	ListingID      uuid.UUID `json:"listing_id"`
	Title          string    `json:"title"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

// OrderEventRecord запись аудита переходов заказа
type OrderEventRecord struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Event      string
	FromStatus OrderStatus
	ToStatus   OrderStatus
	ActorID    uuid.UUID
	Reason     string
	CreatedAt  time.Time
}

// DisputeStatus статус спора
type DisputeStatus string

const (
	DisputeStatusOpen     DisputeStatus = "OPEN"
	DisputeStatusReview   DisputeStatus = "REVIEW"
	DisputeStatusResolved DisputeStatus = "RESOLVED"
	DisputeStatusRejected DisputeStatus = "REJECTED"
)

// Resolvable спор можно разрешить только из OPEN и REVIEW
func (s DisputeStatus) Resolvable() bool {
	return s == DisputeStatusOpen || s == DisputeStatusReview
}

// Dispute спор по заказу
type Dispute struct {
	ID         uuid.UUID     `json:"id"`
	OrderID    uuid.UUID     `json:"order_id"`
	TicketID   *uuid.UUID    `json:"ticket_id,omitempty"`
	OpenedBy   uuid.UUID     `json:"opened_by"`
	Status     DisputeStatus `json:"status"`
	Reason     string        `json:"reason"`
	Resolution *string       `json:"resolution,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty"`
}

// TicketStatus статус тикета поддержки
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "OPEN"
	TicketStatusResolved TicketStatus = "RESOLVED"
)

// SupportTicket тикет поддержки, связанный со спором
type SupportTicket struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Subject    string
	Status     TicketStatus
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// AuditEntry неизменяемая запись журнала действий
type AuditEntry struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	Action     string
	EntityType string
	EntityID   uuid.UUID
	Before     string
	After      string
	Metadata   map[string]any
	CreatedAt  time.Time
}

// DraftStatus статус черновика вывода
type DraftStatus string

const (
	DraftStatusPending   DraftStatus = "PENDING"
	DraftStatusConfirmed DraftStatus = "CONFIRMED"
	DraftStatusExpired   DraftStatus = "EXPIRED"
	DraftStatusRejected  DraftStatus = "REJECTED"
)

// PayoutDestination реквизиты получателя
type PayoutDestination struct {
	PixKey          string `json:"pix_key"`
	BeneficiaryName string `json:"beneficiary_name"`
}

// PayoutDraft неподтвержденный запрос на вывод
type PayoutDraft struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"-"`
	AmountCents int64             `json:"amount_cents"`
	Currency    string            `json:"currency"`
	Destination PayoutDestination `json:"destination"`
	Status      DraftStatus       `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	ExpiresAt   time.Time         `json:"expires_at"`
}

// ExpiredAt проверяет истечение черновика на момент now
func (d *PayoutDraft) ExpiredAt(now time.Time) bool {
	return now.After(d.ExpiresAt)
}

// PayoutStatus статус выплаты
type PayoutStatus string

const (
	PayoutStatusQueued PayoutStatus = "QUEUED"
)

// Payout подтвержденная необратимая выплата
type Payout struct {
	ID            uuid.UUID         `json:"id"`
	DraftID       uuid.UUID         `json:"draft_id"`
	UserID        uuid.UUID         `json:"-"`
	LedgerEntryID uuid.UUID         `json:"-"`
	Reference     string            `json:"reference"`
	AmountCents   int64             `json:"amount_cents"`
	Currency      string            `json:"currency"`
	Destination   PayoutDestination `json:"destination"`
	Status        PayoutStatus      `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Contacts подтвержденные каналы пользователя для кодов
type Contacts struct {
	UserID uuid.UUID
	Email  string
	Phone  string
}

// WebhookStatus статус обработки входящего события
type WebhookStatus string

const (
	WebhookStatusPending   WebhookStatus = "PENDING"
	WebhookStatusProcessed WebhookStatus = "PROCESSED"
	WebhookStatusSkipped   WebhookStatus = "SKIPPED"
	WebhookStatusFailed    WebhookStatus = "FAILED"
)

// WebhookEvent запись об обработанном событии провайдера
type WebhookEvent struct {
	ID              uuid.UUID
	ProviderEventID string
	EventType       string
	PaymentRef      string
	Payload         []byte
	Status          WebhookStatus
	Attempts        int
	LastError       *string
	NextAttemptAt   time.Time
	ReceivedAt      time.Time
	ProcessedAt     *time.Time
}

// PaymentEventConfirmed тип события подтверждения оплаты
const PaymentEventConfirmed = "payment.confirmed"

// PaymentEvent полезная нагрузка вебхука провайдера
type PaymentEvent struct {
	EventID        string    `json:"event_id"`
	Type           string    `json:"type"`
	TransactionRef string    `json:"transaction_ref"`
	OrderID        uuid.UUID `json:"order_id"`
	AmountCents    int64     `json:"amount_cents"`
	Currency       string    `json:"currency"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// IngestResult результат приема вебхука
type IngestResult string

const (
	IngestAccepted  IngestResult = "accepted"
	IngestDuplicate IngestResult = "duplicate"
	IngestRejected  IngestResult = "rejected"
)
