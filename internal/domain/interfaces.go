package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LedgerRepository определяет методы журнала проводок
type LedgerRepository interface {
	Credit(ctx context.Context, userID uuid.UUID, amountCents int64, source EntrySource, state EntryState, refs EntryRefs) (*LedgerEntry, error)
	Debit(ctx context.Context, userID uuid.UUID, amountCents int64, source EntrySource, state EntryState, refs EntryRefs) (*LedgerEntry, error)
	Transition(ctx context.Context, entryID uuid.UUID, from, to EntryState) error
	FindHeldPaymentCredit(ctx context.Context, orderID uuid.UUID) (*LedgerEntry, error)
	Balances(ctx context.Context, userID uuid.UUID, currency string) (*Balance, error)
	ListEntries(ctx context.Context, userID uuid.UUID, limit int) ([]*LedgerEntry, error)
	LockAccount(ctx context.Context, userID uuid.UUID) error
}

// OrderRepository определяет методы работы с заказами
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to OrderStatus, at time.Time) error
	SetPaymentRef(ctx context.Context, id uuid.UUID, paymentRef string) error
	AppendEvent(ctx context.Context, rec *OrderEventRecord) error
	ListExpiredAwaitingPayment(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	ListDeliveredBefore(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error)
}

// DisputeRepository определяет методы работы со спорами
type DisputeRepository interface {
	Create(ctx context.Context, dispute *Dispute) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*Dispute, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*Dispute, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to DisputeStatus) error
	Finalize(ctx context.Context, id uuid.UUID, status DisputeStatus, resolution string, resolvedAt time.Time) error
}

// TicketRepository определяет методы работы с тикетами поддержки
type TicketRepository interface {
	Create(ctx context.Context, ticket *SupportTicket) error
	Close(ctx context.Context, id uuid.UUID, at time.Time) error
}

// AuditRepository журнал действий только на добавление
type AuditRepository interface {
	Append(ctx context.Context, entry *AuditEntry) error
}

// PayoutRepository определяет методы работы с черновиками и выплатами
type PayoutRepository interface {
	CreateDraft(ctx context.Context, draft *PayoutDraft) error
	GetDraft(ctx context.Context, id uuid.UUID) (*PayoutDraft, error)
	GetDraftForUpdate(ctx context.Context, id uuid.UUID) (*PayoutDraft, error)
	GetPendingDraft(ctx context.Context, userID uuid.UUID) (*PayoutDraft, error)
	UpdateDraftStatus(ctx context.Context, id uuid.UUID, from, to DraftStatus) error
	ExpireDrafts(ctx context.Context, userID *uuid.UUID, now time.Time) (int64, error)
	CreatePayout(ctx context.Context, payout *Payout) error
	ListPayouts(ctx context.Context, userID uuid.UUID) ([]*Payout, error)
}

// WebhookEventRepository хранит записи об обработанных событиях провайдера
type WebhookEventRepository interface {
	Insert(ctx context.Context, event *WebhookEvent) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*WebhookEvent, error)
	Complete(ctx context.Context, id uuid.UUID, status WebhookStatus, note *string, at time.Time) error
	ScheduleRetry(ctx context.Context, id uuid.UUID, attempts int, nextAttemptAt time.Time, lastErr string) error
	ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

// ContactRepository отдает подтвержденные каналы пользователя
type ContactRepository interface {
	GetContacts(ctx context.Context, userID uuid.UUID) (*Contacts, error)
}

// Repositories набор репозиториев, привязанных к одной транзакции
type Repositories struct {
	Ledger   LedgerRepository
	Orders   OrderRepository
	Disputes DisputeRepository
	Tickets  TicketRepository
	Audit    AuditRepository
	Payouts  PayoutRepository
	Webhooks WebhookEventRepository
}

// Transactor выполняет fn в одной атомарной транзакции.
// Ошибка fn откатывает все изменения.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}

// VerificationChannel канал доставки кода
type VerificationChannel string

const (
	ChannelEmail VerificationChannel = "email"
	ChannelSMS   VerificationChannel = "sms"
)

// VerificationStatus статус проверки у провайдера
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
)

// VerificationProvider внешний провайдер кодов подтверждения.
// Код привязан к операции scope: код одной операции не подтверждает другую.
type VerificationProvider interface {
	SendVerification(ctx context.Context, scope, destination string, channel VerificationChannel) (VerificationStatus, error)
	CheckVerification(ctx context.Context, scope, destination, code string) (VerificationStatus, error)
}

// ReleaseOptions параметры выплаты продавцу
type ReleaseOptions struct {
	// IgnoreDispute разрешает выплату по заказу в споре (только из разрешения спора)
	IgnoreDispute bool
	// AdminOverride разрешает выплату до подтверждения доставки
	AdminOverride bool
	// AmountCents подсказка суммы; частичная выплата не поддерживается
	AmountCents *int64
	Trigger     OrderEvent
}

// CheckoutInput данные для создания заказа
type CheckoutInput struct {
	BuyerID  uuid.UUID
	SellerID uuid.UUID
	Currency string
	Items    []OrderItem
}

// SettlementService единственный источник переходов проводок по заказам
type SettlementService interface {
	ConfirmPayment(ctx context.Context, orderID uuid.UUID, paymentRef string) (*Order, error)
	ReleaseOrder(ctx context.Context, orderID, actorID uuid.UUID, reason string, opts ReleaseOptions) (*Order, error)
	RefundOrder(ctx context.Context, orderID, actorID uuid.UUID, reason string) (*Order, error)
}

// OrderService определяет методы жизненного цикла заказа
type OrderService interface {
	CreateOrder(ctx context.Context, input CheckoutInput) (*Order, error)
	GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*Order, error)
	MarkShipped(ctx context.Context, orderID, sellerID uuid.UUID) (*Order, error)
	MarkDelivered(ctx context.Context, orderID, sellerID uuid.UUID) (*Order, error)
	ConfirmReceipt(ctx context.Context, orderID, buyerID uuid.UUID) (*Order, error)
	CancelOrder(ctx context.Context, orderID, buyerID uuid.UUID) (*Order, error)
}

// OrderSweeper фоновые переходы заказов по времени
type OrderSweeper interface {
	ExpireUnpaidOrders(ctx context.Context, now time.Time) (int, error)
	AutoReleaseDelivered(ctx context.Context, now time.Time) (int, error)
}

// DisputeService определяет методы работы со спорами
type DisputeService interface {
	OpenDispute(ctx context.Context, orderID, buyerID uuid.UUID, reason string) (*Dispute, error)
	StartReview(ctx context.Context, disputeID, adminID uuid.UUID) (*Dispute, error)
	Resolve(ctx context.Context, disputeID, adminID uuid.UUID, action ResolveAction, reason string) (*Dispute, error)
}

// PayoutService определяет методы вывода средств
type PayoutService interface {
	RequestPayout(ctx context.Context, userID uuid.UUID, amountCents int64, dest PayoutDestination) (*PayoutDraft, error)
	ConfirmPayout(ctx context.Context, userID, draftID uuid.UUID, emailCode, smsCode string) (*Payout, error)
	ListPayouts(ctx context.Context, userID uuid.UUID) ([]*Payout, error)
}

// DraftSweeper проактивно истекает черновики
type DraftSweeper interface {
	ExpireStaleDrafts(ctx context.Context, now time.Time) (int64, error)
}

// BalanceService определяет методы работы с балансом
type BalanceService interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*Balance, error)
	ListEntries(ctx context.Context, userID uuid.UUID) ([]*LedgerEntry, error)
}

// WebhookIntake прием событий провайдера платежей
type WebhookIntake interface {
	Ingest(ctx context.Context, providerEventID string, payload []byte) (IngestResult, error)
}

// WebhookProcessor асинхронная обработка принятых событий
type WebhookProcessor interface {
	ProcessEvent(ctx context.Context, webhookEventID uuid.UUID) error
	ListDueEvents(ctx context.Context, limit int) ([]uuid.UUID, error)
}
