package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PoolConfig параметры пула воркеров
type PoolConfig struct {
	Workers       int
	QueueSize     int
	ScanInterval  time.Duration
	ScanBatch     int
	SweepInterval time.Duration
}

// Pool представляет пул воркеров для обработки событий провайдера
// и периодических переходов по времени
type Pool struct {
	cfg      PoolConfig
	queue    chan uuid.UUID
	webhooks domain.WebhookProcessor
	orders   domain.OrderSweeper
	drafts   domain.DraftSweeper
	logger   *zap.Logger
	wg       sync.WaitGroup
	now      func() time.Time

	mu      sync.RWMutex
	stopped bool
}

// NewPool создает новый worker pool
func NewPool(
	cfg PoolConfig,
	webhooks domain.WebhookProcessor,
	orders domain.OrderSweeper,
	drafts domain.DraftSweeper,
	logger *zap.Logger,
) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.ScanInterval <= 0 {
		cfg.ScanInterval = 10 * time.Second
	}
	if cfg.ScanBatch <= 0 {
		cfg.ScanBatch = cfg.QueueSize
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}

	return &Pool{
		cfg:      cfg,
		queue:    make(chan uuid.UUID, cfg.QueueSize),
		webhooks: webhooks,
		orders:   orders,
		drafts:   drafts,
		logger:   logger,
		now:      time.Now,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Сканер подбирает события, отложенные после сбоев или потерянные при рестарте
	p.wg.Add(1)
	go p.scanner(ctx)

	p.wg.Add(1)
	go p.sweeper(ctx)
}

// Stop останавливает worker pool
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.queue)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

// Enqueue ставит событие в очередь без блокировки.
// false означает, что событие подберет сканер.
func (p *Pool) Enqueue(id uuid.UUID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return false
	}

	select {
	case p.queue <- id:
		return true
	default:
		return false
	}
}

// worker обрабатывает события из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case eventID, ok := <-p.queue:
			if !ok {
				return
			}
			p.processEvent(ctx, eventID)
		}
	}
}

// scanner периодически подбирает события, готовые к обработке
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanDueEvents(ctx)
		}
	}
}

// sweeper периодически выполняет переходы по времени
func (p *Pool) sweeper(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("sweeper stopping")
			return
		case <-ticker.C:
			p.sweep(ctx)
		}
	}
}

// scanDueEvents отправляет готовые события в очередь
func (p *Pool) scanDueEvents(ctx context.Context) {
	ids, err := p.webhooks.ListDueEvents(ctx, p.cfg.ScanBatch)
	if err != nil {
		p.logger.Error("failed to list due webhook events", zap.Error(err))
		return
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}
		if !p.Enqueue(id) {
			// Очередь заполнена, остальные подберем на следующем проходе
			p.logger.Warn("queue is full, skipping webhook event", zap.String("webhook_event_id", id.String()))
			return
		}
	}
}

// processEvent обрабатывает одно событие
func (p *Pool) processEvent(ctx context.Context, id uuid.UUID) {
	p.logger.Debug("processing webhook event", zap.String("webhook_event_id", id.String()))

	err := p.webhooks.ProcessEvent(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrPermanentRejection):
		// Сервис уже зафиксировал FAILED и записал ошибку
	case errors.Is(err, domain.ErrWebhookNotFound):
		p.logger.Warn("webhook event disappeared", zap.String("webhook_event_id", id.String()))
	default:
		p.logger.Warn("webhook event deferred",
			zap.String("webhook_event_id", id.String()),
			zap.Error(err),
		)
	}
}

// sweep истекает неоплаченные заказы и черновики, завершает доставленные заказы
func (p *Pool) sweep(ctx context.Context) {
	now := p.now()

	if n, err := p.orders.ExpireUnpaidOrders(ctx, now); err != nil {
		p.logger.Error("failed to expire unpaid orders", zap.Error(err))
	} else if n > 0 {
		p.logger.Info("unpaid orders expired", zap.Int("count", n))
	}

	if n, err := p.orders.AutoReleaseDelivered(ctx, now); err != nil {
		p.logger.Error("failed to auto-release delivered orders", zap.Error(err))
	} else if n > 0 {
		p.logger.Info("delivered orders auto-released", zap.Int("count", n))
	}

	if n, err := p.drafts.ExpireStaleDrafts(ctx, now); err != nil {
		p.logger.Error("failed to expire payout drafts", zap.Error(err))
	} else if n > 0 {
		p.logger.Info("payout drafts expired", zap.Int64("count", n))
	}
}
