package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const defaultJWTSecret = "default-secret-key-change-in-production"

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress    string        // Адрес и порт запуска сервиса
	DatabaseURI   string        // URI подключения к БД
	RedisAddress  string        // Адрес Redis для кодов подтверждения
	RedisPassword string        // Пароль Redis
	RedisDB       int           // Номер базы Redis
	JWTSecret     string        // Секретный ключ для JWT
	JWTTokenTTL   time.Duration // Время жизни JWT токена
	LogLevel      string        // Уровень логирования

	// Провайдер платежей
	WebhookSecret      string // HMAC секрет подписи вебхуков
	WebhookMaxAttempts int    // Отложенные попытки до ручной сверки

	// Сервис уведомлений; пустой адрес означает вывод кодов в лог
	NotificationAddress string

	// Worker Pool конфигурация
	WorkerPoolSize     int           // Количество воркеров
	WorkerQueueSize    int           // Размер очереди событий
	WorkerScanInterval time.Duration // Интервал сканирования отложенных событий
	SweepInterval      time.Duration // Интервал истечения заказов и черновиков

	// Расчеты
	PlatformFeePercent decimal.Decimal
	Currency           string
	PaymentTTL         time.Duration
	AutoReleaseDelay   time.Duration
	PayoutDraftTTL     time.Duration

	// Коды подтверждения
	VerificationCodeTTL     time.Duration
	VerificationMaxAttempts int
	VerificationCooldown    time.Duration

	CORSAllowedOrigins []string
}

// Load загружает конфигурацию из .env, переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return parse(os.Args[1:])
}

func parse(args []string) (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:             24 * time.Hour,
		LogLevel:                "info",
		WebhookMaxAttempts:      10,
		WorkerPoolSize:          3,
		WorkerQueueSize:         100,
		WorkerScanInterval:      10 * time.Second,
		SweepInterval:           time.Minute,
		PlatformFeePercent:      decimal.NewFromInt(10),
		Currency:                "BRL",
		PaymentTTL:              30 * time.Minute,
		AutoReleaseDelay:        72 * time.Hour,
		PayoutDraftTTL:          10 * time.Minute,
		VerificationCodeTTL:     10 * time.Minute,
		VerificationMaxAttempts: 5,
		VerificationCooldown:    30 * time.Second,
		CORSAllowedOrigins:      []string{"*"},
	}

	// Определяем флаги
	fset := flag.NewFlagSet("escrow", flag.ContinueOnError)
	fset.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	fset.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	fset.StringVar(&cfg.RedisAddress, "r", "localhost:6379", "redis address")
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	lookupString("RUN_ADDRESS", &cfg.RunAddress)
	lookupString("DATABASE_URI", &cfg.DatabaseURI)
	lookupString("REDIS_ADDRESS", &cfg.RedisAddress)
	lookupString("REDIS_PASSWORD", &cfg.RedisPassword)
	lookupString("LOG_LEVEL", &cfg.LogLevel)
	lookupString("NOTIFICATION_ADDRESS", &cfg.NotificationAddress)
	lookupString("CURRENCY", &cfg.Currency)

	// Секреты только из env, не из флагов
	cfg.JWTSecret = defaultJWTSecret
	lookupString("JWT_SECRET", &cfg.JWTSecret)
	lookupString("WEBHOOK_SECRET", &cfg.WebhookSecret)

	var errs []error
	errs = append(errs,
		lookupInt("REDIS_DB", &cfg.RedisDB),
		lookupInt("WEBHOOK_MAX_ATTEMPTS", &cfg.WebhookMaxAttempts),
		lookupInt("WORKER_POOL_SIZE", &cfg.WorkerPoolSize),
		lookupInt("WORKER_QUEUE_SIZE", &cfg.WorkerQueueSize),
		lookupInt("VERIFICATION_MAX_ATTEMPTS", &cfg.VerificationMaxAttempts),
		lookupDuration("JWT_TOKEN_TTL", &cfg.JWTTokenTTL),
		lookupDuration("WORKER_SCAN_INTERVAL", &cfg.WorkerScanInterval),
		lookupDuration("SWEEP_INTERVAL", &cfg.SweepInterval),
		lookupDuration("PAYMENT_TTL", &cfg.PaymentTTL),
		lookupDuration("AUTO_RELEASE_DELAY", &cfg.AutoReleaseDelay),
		lookupDuration("PAYOUT_DRAFT_TTL", &cfg.PayoutDraftTTL),
		lookupDuration("VERIFICATION_CODE_TTL", &cfg.VerificationCodeTTL),
		lookupDuration("VERIFICATION_COOLDOWN", &cfg.VerificationCooldown),
	)

	if raw, ok := os.LookupEnv("PLATFORM_FEE_PERCENT"); ok {
		fee, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			errs = append(errs, fmt.Errorf("PLATFORM_FEE_PERCENT: %w", err))
		} else {
			cfg.PlatformFeePercent = fee
		}
	}

	if raw, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		cfg.CORSAllowedOrigins = splitList(raw)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate проверяет обязательные параметры и границы
func (c *Config) validate() error {
	if c.DatabaseURI == "" {
		return fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if c.WebhookSecret == "" {
		return fmt.Errorf("webhook secret is required (use WEBHOOK_SECRET env)")
	}

	if c.PlatformFeePercent.IsNegative() || c.PlatformFeePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("PLATFORM_FEE_PERCENT must be within [0, 100], got %s", c.PlatformFeePercent)
	}

	if len(c.Currency) != 3 {
		return fmt.Errorf("CURRENCY must be an ISO 4217 code, got %q", c.Currency)
	}
	c.Currency = strings.ToUpper(c.Currency)

	return nil
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func lookupInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return fmt.Errorf("%s: invalid non-negative integer %q", key, v)
	}
	*dst = n
	return nil
}

func lookupDuration(key string, dst *time.Duration) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		return fmt.Errorf("%s: invalid positive duration %q", key, v)
	}
	*dst = d
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
