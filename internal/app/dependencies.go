package app

import (
	"context"
	"fmt"

	"github.com/avc/marketplace-escrow/internal/config"
	"github.com/avc/marketplace-escrow/internal/handlers"
	"github.com/avc/marketplace-escrow/internal/repository/postgres"
	"github.com/avc/marketplace-escrow/internal/service"
	"github.com/avc/marketplace-escrow/internal/utils/jwt"
	"github.com/avc/marketplace-escrow/internal/verification"
	"github.com/avc/marketplace-escrow/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// services содержит все сервисы приложения
type services struct {
	settlement *service.SettlementService
	orders     *service.OrderService
	disputes   *service.DisputeResolver
	payouts    *service.PayoutService
	balance    *service.BalanceService
	webhooks   *service.WebhookService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	webhook *handlers.WebhookHandler
	orders  *handlers.OrdersHandler
	admin   *handlers.AdminHandler
	payouts *handlers.PayoutsHandler
	balance *handlers.BalanceHandler
	health  *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// newSender выбирает канал доставки кодов
func newSender(cfg *config.Config, logger *zap.Logger) verification.Sender {
	if cfg.NotificationAddress == "" {
		logger.Warn("notification address is not set, verification codes go to the log")
		return verification.NewLogSender(logger)
	}
	return verification.NewHTTPSender(cfg.NotificationAddress)
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, rdb *redis.Client, logger *zap.Logger) (*dependencies, error) {
	// Репозитории вне транзакции используются только для чтения
	tx := postgres.NewTransactor(dbPool)
	readRepos := postgres.NewRepositories(dbPool)
	contacts := postgres.NewContactRepository(dbPool)

	fees, err := service.NewFeePolicy(cfg.PlatformFeePercent)
	if err != nil {
		return nil, fmt.Errorf("failed to init fee policy: %w", err)
	}

	verifier := verification.NewCodeVerifier(
		verification.NewRedisStore(rdb),
		newSender(cfg, logger),
		verification.Settings{
			CodeTTL:     cfg.VerificationCodeTTL,
			MaxAttempts: int64(cfg.VerificationMaxAttempts),
			Cooldown:    cfg.VerificationCooldown,
			HashCost:    verification.DefaultCost,
		},
		logger.Named("verification"),
	)

	// Создание сервисов
	settlement := service.NewSettlementService(tx, fees, logger.Named("settlement"))
	svcs := &services{
		settlement: settlement,
		orders: service.NewOrderService(tx, readRepos.Orders, settlement, service.OrderSettings{
			Currency:         cfg.Currency,
			PaymentTTL:       cfg.PaymentTTL,
			AutoReleaseDelay: cfg.AutoReleaseDelay,
		}, logger.Named("orders")),
		disputes: service.NewDisputeResolver(tx, settlement, logger.Named("disputes")),
		payouts: service.NewPayoutService(tx, readRepos.Payouts, contacts, verifier, service.PayoutSettings{
			Currency: cfg.Currency,
			DraftTTL: cfg.PayoutDraftTTL,
		}, logger.Named("payouts")),
		balance: service.NewBalanceService(readRepos.Ledger, cfg.Currency),
		webhooks: service.NewWebhookService(tx, readRepos.Webhooks, settlement, service.WebhookSettings{
			MaxAttempts:   cfg.WebhookMaxAttempts,
			InlineRetries: 2,
		}, logger.Named("webhooks")),
	}

	// Создание worker pool
	workerPool := worker.NewPool(worker.PoolConfig{
		Workers:       cfg.WorkerPoolSize,
		QueueSize:     cfg.WorkerQueueSize,
		ScanInterval:  cfg.WorkerScanInterval,
		SweepInterval: cfg.SweepInterval,
	}, svcs.webhooks, svcs.orders, svcs.payouts, logger.Named("worker"))
	svcs.webhooks.SetDispatcher(workerPool)

	// Создание handlers
	hdlrs := &handlerSet{
		webhook: handlers.NewWebhookHandler(svcs.webhooks, cfg.WebhookSecret, logger),
		orders:  handlers.NewOrdersHandler(svcs.orders, svcs.disputes, logger),
		admin:   handlers.NewAdminHandler(svcs.settlement, svcs.disputes, logger),
		payouts: handlers.NewPayoutsHandler(svcs.payouts, logger),
		balance: handlers.NewBalanceHandler(svcs.balance, logger),
		health: handlers.NewHealthHandler(dbPool, handlers.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}), logger),
	}

	return &dependencies{
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL),
		workerPool: workerPool,
	}, nil
}
