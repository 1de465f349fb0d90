package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/marketplace-escrow/internal/config"
	"github.com/avc/marketplace-escrow/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	db         *pgxpool.Pool
	redis      *redis.Client
	workerPool *worker.Pool
	server     *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация базы данных и миграции
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}

	rdb, err := initRedis(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB, logger)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	// Инициализация зависимостей
	deps, err := initDependencies(cfg, dbPool, rdb, logger)
	if err != nil {
		_ = rdb.Close()
		dbPool.Close()
		return nil, err
	}

	// Настройка роутера
	router := setupRouter(deps, cfg.CORSAllowedOrigins, logger)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         dbPool,
		redis:      rdb,
		workerPool: deps.workerPool,
		server:     createServer(cfg.RunAddress, router),
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск worker pool
	a.workerPool.Start(ctx)
	a.logger.Info("worker pool started")

	// Запуск HTTP сервера и ожидание сигнала завершения
	err := a.runServer(ctx)

	// Graceful shutdown
	a.shutdown(cancel)

	return err
}
