package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// memStore хранилище в памяти с откатом транзакций.
// Тесты последовательные, поэтому без блокировок.
type memStore struct {
	orders   map[uuid.UUID]domain.Order
	events   []domain.OrderEventRecord
	entries  []domain.LedgerEntry
	disputes map[uuid.UUID]domain.Dispute
	tickets  map[uuid.UUID]domain.SupportTicket
	audit    []domain.AuditEntry
	drafts   map[uuid.UUID]domain.PayoutDraft
	payouts  []domain.Payout
	webhooks map[uuid.UUID]domain.WebhookEvent
	contacts map[uuid.UUID]domain.Contacts

	// faults ошибки, которые вернет метод при следующих вызовах
	faults map[string][]error
	calls  map[string]int
}

func newMemStore() *memStore {
	return &memStore{
		orders:   map[uuid.UUID]domain.Order{},
		disputes: map[uuid.UUID]domain.Dispute{},
		tickets:  map[uuid.UUID]domain.SupportTicket{},
		drafts:   map[uuid.UUID]domain.PayoutDraft{},
		webhooks: map[uuid.UUID]domain.WebhookEvent{},
		contacts: map[uuid.UUID]domain.Contacts{},
		faults:   map[string][]error{},
		calls:    map[string]int{},
	}
}

func (s *memStore) failNext(method string, errs ...error) {
	s.faults[method] = append(s.faults[method], errs...)
}

func (s *memStore) hit(method string) error {
	s.calls[method]++
	queue := s.faults[method]
	if len(queue) == 0 {
		return nil
	}
	s.faults[method] = queue[1:]
	return queue[0]
}

type memSnapshot struct {
	orders   map[uuid.UUID]domain.Order
	events   []domain.OrderEventRecord
	entries  []domain.LedgerEntry
	disputes map[uuid.UUID]domain.Dispute
	tickets  map[uuid.UUID]domain.SupportTicket
	audit    []domain.AuditEntry
	drafts   map[uuid.UUID]domain.PayoutDraft
	payouts  []domain.Payout
	webhooks map[uuid.UUID]domain.WebhookEvent
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		orders:   cloneMap(s.orders),
		events:   append([]domain.OrderEventRecord(nil), s.events...),
		entries:  append([]domain.LedgerEntry(nil), s.entries...),
		disputes: cloneMap(s.disputes),
		tickets:  cloneMap(s.tickets),
		audit:    append([]domain.AuditEntry(nil), s.audit...),
		drafts:   cloneMap(s.drafts),
		payouts:  append([]domain.Payout(nil), s.payouts...),
		webhooks: cloneMap(s.webhooks),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.orders = snap.orders
	s.events = snap.events
	s.entries = snap.entries
	s.disputes = snap.disputes
	s.tickets = snap.tickets
	s.audit = snap.audit
	s.drafts = snap.drafts
	s.payouts = snap.payouts
	s.webhooks = snap.webhooks
}

func (s *memStore) repos() domain.Repositories {
	return domain.Repositories{
		Ledger:   memLedger{s},
		Orders:   memOrders{s},
		Disputes: memDisputes{s},
		Tickets:  memTickets{s},
		Audit:    memAudit{s},
		Payouts:  memPayouts{s},
		Webhooks: memWebhooks{s},
	}
}

// WithinTx откатывает все изменения, если fn вернула ошибку
func (s *memStore) WithinTx(ctx context.Context, fn func(repos domain.Repositories) error) error {
	if err := s.hit("Tx.Begin"); err != nil {
		return err
	}
	snap := s.snapshot()
	if err := fn(s.repos()); err != nil {
		s.restore(snap)
		return err
	}
	if err := s.hit("Tx.Commit"); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// auditActions возвращает действия аудита по сущности
func (s *memStore) auditActions(entityID uuid.UUID) []string {
	var actions []string
	for _, a := range s.audit {
		if a.EntityID == entityID {
			actions = append(actions, a.Action)
		}
	}
	return actions
}

func (s *memStore) entriesFor(userID uuid.UUID) []domain.LedgerEntry {
	var out []domain.LedgerEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// --- ledger ---

type memLedger struct{ s *memStore }

func (l memLedger) insert(userID uuid.UUID, typ domain.EntryType, amount int64, source domain.EntrySource, state domain.EntryState, refs domain.EntryRefs) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if refs.Currency == "" {
		return nil, fmt.Errorf("%w: currency is required", domain.ErrInvalidInput)
	}
	if source == domain.EntrySourceOrderPayment && typ == domain.EntryTypeCredit && refs.OrderID != nil && refs.PaymentID != nil {
		for _, e := range l.s.entries {
			if e.Source == source && e.Type == typ && e.OrderID != nil && *e.OrderID == *refs.OrderID &&
				e.PaymentID != nil && *e.PaymentID == *refs.PaymentID {
				return nil, domain.ErrDuplicatePaymentCredit
			}
		}
	}

	entry := domain.LedgerEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        typ,
		State:       state,
		Source:      source,
		AmountCents: amount,
		Currency:    refs.Currency,
		OrderID:     refs.OrderID,
		PaymentID:   refs.PaymentID,
		Description: refs.Description,
		CreatedAt:   time.Now().UTC(),
	}
	l.s.entries = append(l.s.entries, entry)
	return &entry, nil
}

func (l memLedger) Credit(_ context.Context, userID uuid.UUID, amount int64, source domain.EntrySource, state domain.EntryState, refs domain.EntryRefs) (*domain.LedgerEntry, error) {
	if err := l.s.hit("Ledger.Credit"); err != nil {
		return nil, err
	}
	return l.insert(userID, domain.EntryTypeCredit, amount, source, state, refs)
}

func (l memLedger) Debit(_ context.Context, userID uuid.UUID, amount int64, source domain.EntrySource, state domain.EntryState, refs domain.EntryRefs) (*domain.LedgerEntry, error) {
	if err := l.s.hit("Ledger.Debit"); err != nil {
		return nil, err
	}
	return l.insert(userID, domain.EntryTypeDebit, amount, source, state, refs)
}

func (l memLedger) Transition(_ context.Context, entryID uuid.UUID, from, to domain.EntryState) error {
	if err := l.s.hit("Ledger.Transition"); err != nil {
		return err
	}
	if err := domain.CheckEntryTransition(from, to); err != nil {
		return err
	}
	for i := range l.s.entries {
		if l.s.entries[i].ID == entryID && l.s.entries[i].State == from {
			l.s.entries[i].State = to
			return nil
		}
	}
	return fmt.Errorf("%w: entry %s is not %s", domain.ErrInvalidLedgerTransition, entryID, from)
}

func (l memLedger) FindHeldPaymentCredit(_ context.Context, orderID uuid.UUID) (*domain.LedgerEntry, error) {
	for _, e := range l.s.entries {
		if e.OrderID != nil && *e.OrderID == orderID && e.Source == domain.EntrySourceOrderPayment &&
			e.Type == domain.EntryTypeCredit && e.State == domain.EntryStateHeld {
			entry := e
			return &entry, nil
		}
	}
	return nil, domain.ErrLedgerEntryNotFound
}

func (l memLedger) Balances(_ context.Context, userID uuid.UUID, currency string) (*domain.Balance, error) {
	if err := l.s.hit("Ledger.Balances"); err != nil {
		return nil, err
	}
	b := &domain.Balance{Currency: currency}
	for _, e := range l.s.entries {
		if e.UserID != userID || e.Currency != currency {
			continue
		}
		switch {
		case e.Type == domain.EntryTypeCredit && e.State == domain.EntryStateHeld:
			b.HeldCents += e.AmountCents
		case e.State == domain.EntryStateAvailable && e.Type == domain.EntryTypeCredit:
			b.AvailableCents += e.AmountCents
		case e.State == domain.EntryStateAvailable && e.Type == domain.EntryTypeDebit:
			b.AvailableCents -= e.AmountCents
		case e.State == domain.EntryStateReversed:
			b.ReversedCents += e.AmountCents
		}
	}
	return b, nil
}

func (l memLedger) ListEntries(_ context.Context, userID uuid.UUID, limit int) ([]*domain.LedgerEntry, error) {
	var out []*domain.LedgerEntry
	for i := len(l.s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if l.s.entries[i].UserID == userID {
			e := l.s.entries[i]
			out = append(out, &e)
		}
	}
	return out, nil
}

func (l memLedger) LockAccount(context.Context, uuid.UUID) error {
	return l.s.hit("Ledger.LockAccount")
}

// --- orders ---

type memOrders struct{ s *memStore }

func (o memOrders) Create(_ context.Context, order *domain.Order) error {
	if err := o.s.hit("Orders.Create"); err != nil {
		return err
	}
	order.CreatedAt = time.Now().UTC()
	o.s.orders[order.ID] = *order
	return nil
}

func (o memOrders) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	order, ok := o.s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &order, nil
}

func (o memOrders) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if err := o.s.hit("Orders.GetForUpdate"); err != nil {
		return nil, err
	}
	return o.GetByID(ctx, id)
}

func (o memOrders) UpdateStatus(_ context.Context, id uuid.UUID, from, to domain.OrderStatus, at time.Time) error {
	if err := o.s.hit("Orders.UpdateStatus"); err != nil {
		return err
	}
	order, ok := o.s.orders[id]
	if !ok || order.Status != from {
		return domain.ErrInvalidOrderTransition
	}
	order.Status = to
	switch to {
	case domain.OrderStatusDelivered:
		order.DeliveredAt = &at
	case domain.OrderStatusCompleted:
		order.CompletedAt = &at
	}
	o.s.orders[id] = order
	return nil
}

func (o memOrders) SetPaymentRef(_ context.Context, id uuid.UUID, paymentRef string) error {
	order, ok := o.s.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.PaymentRef = &paymentRef
	o.s.orders[id] = order
	return nil
}

func (o memOrders) AppendEvent(_ context.Context, rec *domain.OrderEventRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now().UTC()
	o.s.events = append(o.s.events, *rec)
	return nil
}

func (o memOrders) ListExpiredAwaitingPayment(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	return o.list(limit, func(order domain.Order) bool {
		return order.Status == domain.OrderStatusAwaitingPayment && order.ExpiresAt != nil && order.ExpiresAt.Before(now)
	}), nil
}

func (o memOrders) ListDeliveredBefore(_ context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error) {
	return o.list(limit, func(order domain.Order) bool {
		return order.Status == domain.OrderStatusDelivered && order.DeliveredAt != nil && !order.DeliveredAt.After(cutoff)
	}), nil
}

func (o memOrders) list(limit int, match func(domain.Order) bool) []uuid.UUID {
	var ids []uuid.UUID
	for id, order := range o.s.orders {
		if match(order) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

// --- disputes, tickets, audit ---

type memDisputes struct{ s *memStore }

func (d memDisputes) Create(_ context.Context, dispute *domain.Dispute) error {
	for _, existing := range d.s.disputes {
		if existing.OrderID == dispute.OrderID {
			return domain.ErrDisputeExists
		}
	}
	dispute.CreatedAt = time.Now().UTC()
	d.s.disputes[dispute.ID] = *dispute
	return nil
}

func (d memDisputes) GetForUpdate(_ context.Context, id uuid.UUID) (*domain.Dispute, error) {
	dispute, ok := d.s.disputes[id]
	if !ok {
		return nil, domain.ErrDisputeNotFound
	}
	return &dispute, nil
}

func (d memDisputes) GetByOrderID(_ context.Context, orderID uuid.UUID) (*domain.Dispute, error) {
	for _, dispute := range d.s.disputes {
		if dispute.OrderID == orderID {
			found := dispute
			return &found, nil
		}
	}
	return nil, domain.ErrDisputeNotFound
}

func (d memDisputes) UpdateStatus(_ context.Context, id uuid.UUID, from, to domain.DisputeStatus) error {
	dispute, ok := d.s.disputes[id]
	if !ok || dispute.Status != from {
		return domain.ErrDisputeNotResolvable
	}
	dispute.Status = to
	d.s.disputes[id] = dispute
	return nil
}

func (d memDisputes) Finalize(_ context.Context, id uuid.UUID, status domain.DisputeStatus, resolution string, resolvedAt time.Time) error {
	if err := d.s.hit("Disputes.Finalize"); err != nil {
		return err
	}
	dispute, ok := d.s.disputes[id]
	if !ok || !dispute.Status.Resolvable() {
		return domain.ErrDisputeNotResolvable
	}
	dispute.Status = status
	dispute.Resolution = &resolution
	dispute.ResolvedAt = &resolvedAt
	d.s.disputes[id] = dispute
	return nil
}

type memTickets struct{ s *memStore }

func (t memTickets) Create(_ context.Context, ticket *domain.SupportTicket) error {
	ticket.CreatedAt = time.Now().UTC()
	t.s.tickets[ticket.ID] = *ticket
	return nil
}

func (t memTickets) Close(_ context.Context, id uuid.UUID, at time.Time) error {
	ticket, ok := t.s.tickets[id]
	if !ok {
		return domain.ErrTicketNotFound
	}
	ticket.Status = domain.TicketStatusResolved
	if ticket.ResolvedAt == nil {
		ticket.ResolvedAt = &at
	}
	t.s.tickets[id] = ticket
	return nil
}

type memAudit struct{ s *memStore }

func (a memAudit) Append(_ context.Context, entry *domain.AuditEntry) error {
	if err := a.s.hit("Audit.Append"); err != nil {
		return err
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now().UTC()
	a.s.audit = append(a.s.audit, *entry)
	return nil
}

// --- payouts ---

type memPayouts struct{ s *memStore }

func (p memPayouts) CreateDraft(_ context.Context, draft *domain.PayoutDraft) error {
	for _, existing := range p.s.drafts {
		if existing.UserID == draft.UserID && existing.Status == domain.DraftStatusPending {
			return domain.ErrDraftAlreadyPending
		}
	}
	draft.CreatedAt = time.Now().UTC()
	p.s.drafts[draft.ID] = *draft
	return nil
}

func (p memPayouts) GetDraft(_ context.Context, id uuid.UUID) (*domain.PayoutDraft, error) {
	draft, ok := p.s.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	return &draft, nil
}

func (p memPayouts) GetDraftForUpdate(ctx context.Context, id uuid.UUID) (*domain.PayoutDraft, error) {
	return p.GetDraft(ctx, id)
}

func (p memPayouts) GetPendingDraft(_ context.Context, userID uuid.UUID) (*domain.PayoutDraft, error) {
	for _, draft := range p.s.drafts {
		if draft.UserID == userID && draft.Status == domain.DraftStatusPending {
			found := draft
			return &found, nil
		}
	}
	return nil, domain.ErrDraftNotFound
}

func (p memPayouts) UpdateDraftStatus(_ context.Context, id uuid.UUID, from, to domain.DraftStatus) error {
	draft, ok := p.s.drafts[id]
	if !ok || draft.Status != from {
		return domain.ErrDraftNotPending
	}
	draft.Status = to
	p.s.drafts[id] = draft
	return nil
}

func (p memPayouts) ExpireDrafts(_ context.Context, userID *uuid.UUID, now time.Time) (int64, error) {
	var n int64
	for id, draft := range p.s.drafts {
		if draft.Status != domain.DraftStatusPending || !draft.ExpiresAt.Before(now) {
			continue
		}
		if userID != nil && draft.UserID != *userID {
			continue
		}
		draft.Status = domain.DraftStatusExpired
		p.s.drafts[id] = draft
		n++
	}
	return n, nil
}

func (p memPayouts) CreatePayout(_ context.Context, payout *domain.Payout) error {
	if err := p.s.hit("Payouts.CreatePayout"); err != nil {
		return err
	}
	for _, existing := range p.s.payouts {
		if existing.DraftID == payout.DraftID {
			return domain.ErrDraftNotPending
		}
	}
	payout.CreatedAt = time.Now().UTC()
	p.s.payouts = append(p.s.payouts, *payout)
	return nil
}

func (p memPayouts) ListPayouts(_ context.Context, userID uuid.UUID) ([]*domain.Payout, error) {
	var out []*domain.Payout
	for i := range p.s.payouts {
		if p.s.payouts[i].UserID == userID {
			payout := p.s.payouts[i]
			out = append(out, &payout)
		}
	}
	return out, nil
}

// --- webhooks ---

type memWebhooks struct{ s *memStore }

func (w memWebhooks) Insert(_ context.Context, event *domain.WebhookEvent) error {
	if err := w.s.hit("Webhooks.Insert"); err != nil {
		return err
	}
	for _, existing := range w.s.webhooks {
		if existing.ProviderEventID == event.ProviderEventID {
			return domain.ErrDuplicateEvent
		}
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.ReceivedAt = time.Now().UTC()
	w.s.webhooks[event.ID] = *event
	return nil
}

func (w memWebhooks) GetForUpdate(_ context.Context, id uuid.UUID) (*domain.WebhookEvent, error) {
	event, ok := w.s.webhooks[id]
	if !ok {
		return nil, domain.ErrWebhookNotFound
	}
	return &event, nil
}

func (w memWebhooks) Complete(_ context.Context, id uuid.UUID, status domain.WebhookStatus, note *string, at time.Time) error {
	event, ok := w.s.webhooks[id]
	if !ok {
		return domain.ErrWebhookNotFound
	}
	event.Status = status
	if note != nil {
		event.LastError = note
	}
	event.ProcessedAt = &at
	w.s.webhooks[id] = event
	return nil
}

func (w memWebhooks) ScheduleRetry(_ context.Context, id uuid.UUID, attempts int, next time.Time, lastErr string) error {
	event, ok := w.s.webhooks[id]
	if !ok || event.Status != domain.WebhookStatusPending {
		return domain.ErrWebhookNotFound
	}
	event.Attempts = attempts
	event.NextAttemptAt = next
	event.LastError = &lastErr
	w.s.webhooks[id] = event
	return nil
}

func (w memWebhooks) ListDue(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, event := range w.s.webhooks {
		if event.Status == domain.WebhookStatusPending && !event.NextAttemptAt.After(now) && len(ids) < limit {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// --- contacts ---

type memContacts struct{ s *memStore }

func (c memContacts) GetContacts(_ context.Context, userID uuid.UUID) (*domain.Contacts, error) {
	contacts, ok := c.s.contacts[userID]
	if !ok {
		return nil, domain.ErrContactsNotFound
	}
	return &contacts, nil
}

// --- verification ---

// fakeVerifier выдает фиксированный код на каждую пару (операция, адрес)
type fakeVerifier struct {
	codes   map[string]string
	sent    []string
	sendErr error
}

func newFakeVerifier() *fakeVerifier {
	return &fakeVerifier{codes: map[string]string{}}
}

func (f *fakeVerifier) SendVerification(_ context.Context, scope, destination string, _ domain.VerificationChannel) (domain.VerificationStatus, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, destination)
	f.codes[scope+":"+destination] = fmt.Sprintf("%06d", len(f.sent))
	return domain.VerificationPending, nil
}

func (f *fakeVerifier) CheckVerification(_ context.Context, scope, destination, code string) (domain.VerificationStatus, error) {
	if expected, ok := f.codes[scope+":"+destination]; ok && expected == code {
		return domain.VerificationApproved, nil
	}
	return domain.VerificationPending, nil
}

// --- fixture ---

// testClock управляемое время для сервисов
type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type recordingDispatcher struct {
	ids  []uuid.UUID
	full bool
}

func (d *recordingDispatcher) Enqueue(id uuid.UUID) bool {
	if d.full {
		return false
	}
	d.ids = append(d.ids, id)
	return true
}

// escrowFixture собирает все сервисы над одним memStore
type escrowFixture struct {
	store      *memStore
	clock      *testClock
	verifier   *fakeVerifier
	dispatcher *recordingDispatcher

	settlement *SettlementService
	orders     *OrderService
	disputes   *DisputeResolver
	payouts    *PayoutService
	webhooks   *WebhookService
	balances   *BalanceService

	buyer  uuid.UUID
	seller uuid.UUID
	admin  uuid.UUID
}

func newEscrowFixture() *escrowFixture {
	store := newMemStore()
	clock := &testClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	logger := zap.NewNop()

	fees, err := NewFeePolicy(decimal.NewFromInt(10))
	if err != nil {
		panic(err)
	}

	f := &escrowFixture{
		store:      store,
		clock:      clock,
		verifier:   newFakeVerifier(),
		dispatcher: &recordingDispatcher{},
		buyer:      uuid.New(),
		seller:     uuid.New(),
		admin:      uuid.New(),
	}

	f.settlement = NewSettlementService(store, fees, logger)
	f.settlement.now = clock.now

	f.orders = NewOrderService(store, memOrders{store}, f.settlement, OrderSettings{
		Currency:         "BRL",
		PaymentTTL:       30 * time.Minute,
		AutoReleaseDelay: 72 * time.Hour,
	}, logger)
	f.orders.now = clock.now

	f.disputes = NewDisputeResolver(store, f.settlement, logger)
	f.disputes.now = clock.now

	f.payouts = NewPayoutService(store, memPayouts{store}, memContacts{store}, f.verifier, PayoutSettings{
		Currency: "BRL",
		DraftTTL: 10 * time.Minute,
	}, logger)
	f.payouts.now = clock.now

	f.webhooks = NewWebhookService(store, memWebhooks{store}, f.settlement, WebhookSettings{
		MaxAttempts:    3,
		InlineRetries:  2,
		RetryBaseDelay: time.Millisecond,
		MaxRetryDelay:  time.Minute,
	}, logger)
	f.webhooks.now = clock.now
	f.webhooks.SetDispatcher(f.dispatcher)

	f.balances = NewBalanceService(memLedger{store}, "BRL")

	store.contacts[f.seller] = domain.Contacts{UserID: f.seller, Email: "seller@example.com", Phone: "+5511999990000"}

	return f
}

// checkout создает заказ на сумму total одной позицией
func (f *escrowFixture) checkout(total int64) *domain.Order {
	order, err := f.orders.CreateOrder(context.Background(), domain.CheckoutInput{
		BuyerID:  f.buyer,
		SellerID: f.seller,
		Items: []domain.OrderItem{
			{ListingID: uuid.New(), Title: "vintage camera", Quantity: 1, UnitPriceCents: total},
		},
	})
	if err != nil {
		panic(err)
	}
	return order
}

// paid создает заказ и подтверждает оплату
func (f *escrowFixture) paid(total int64, paymentRef string) *domain.Order {
	order := f.checkout(total)
	if _, err := f.settlement.ConfirmPayment(context.Background(), order.ID, paymentRef); err != nil {
		panic(err)
	}
	return order
}

// delivered проводит заказ до DELIVERED
func (f *escrowFixture) delivered(total int64, paymentRef string) *domain.Order {
	ctx := context.Background()
	order := f.paid(total, paymentRef)
	if _, err := f.orders.MarkShipped(ctx, order.ID, f.seller); err != nil {
		panic(err)
	}
	delivered, err := f.orders.MarkDelivered(ctx, order.ID, f.seller)
	if err != nil {
		panic(err)
	}
	return delivered
}

func (f *escrowFixture) order(id uuid.UUID) domain.Order {
	return f.store.orders[id]
}

func (f *escrowFixture) balance(userID uuid.UUID) domain.Balance {
	b, err := f.balances.GetBalance(context.Background(), userID)
	if err != nil {
		panic(err)
	}
	return *b
}
