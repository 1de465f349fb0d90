package verification

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "escrow:verify:"

// CodeRecord активный код подтверждения
type CodeRecord struct {
	Hash     string
	Attempts int64
}

// CodeStore хранилище кодов подтверждения с ограниченным временем жизни.
// subject однозначно задает пару (операция, адрес).
type CodeStore interface {
	Save(ctx context.Context, subject, hash string, ttl time.Duration) error
	// Get возвращает nil без ошибки, если кода нет или он истек
	Get(ctx context.Context, subject string) (*CodeRecord, error)
	IncrAttempts(ctx context.Context, subject string) (int64, error)
	Delete(ctx context.Context, subject string) error
	// AcquireCooldown возвращает false, если предыдущая отправка еще не остыла
	AcquireCooldown(ctx context.Context, subject string, ttl time.Duration) (bool, error)
}

// NewRedisClient создает клиент Redis и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// RedisStore реализация CodeStore на Redis
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore создает новый RedisStore
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func codeKey(subject string) string {
	return keyPrefix + "code:" + subject
}

func cooldownKey(subject string) string {
	return keyPrefix + "cooldown:" + subject
}

// classify помечает любой отказ команды Redis как domain.ErrTransient
func classify(err error) error {
	if err == nil || errors.Is(err, domain.ErrTransient) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrTransient, err)
}

// Save сохраняет хеш кода и сбрасывает счетчик попыток
func (s *RedisStore) Save(ctx context.Context, subject, hash string, ttl time.Duration) error {
	key := codeKey(subject)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, "hash", hash, "attempts", 0)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("code store: failed to save code: %w", classify(err))
	}

	return nil
}

// Get читает активный код
func (s *RedisStore) Get(ctx context.Context, subject string) (*CodeRecord, error) {
	values, err := s.client.HGetAll(ctx, codeKey(subject)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("code store: failed to get code: %w", classify(err))
	}

	hash, ok := values["hash"]
	if !ok || hash == "" {
		return nil, nil
	}

	attempts, err := strconv.ParseInt(values["attempts"], 10, 64)
	if err != nil {
		attempts = 0
	}

	return &CodeRecord{Hash: hash, Attempts: attempts}, nil
}

// IncrAttempts увеличивает счетчик неудачных попыток
func (s *RedisStore) IncrAttempts(ctx context.Context, subject string) (int64, error) {
	n, err := s.client.HIncrBy(ctx, codeKey(subject), "attempts", 1).Result()
	if err != nil {
		return 0, fmt.Errorf("code store: failed to increment attempts: %w", classify(err))
	}

	return n, nil
}

// Delete удаляет код
func (s *RedisStore) Delete(ctx context.Context, subject string) error {
	if err := s.client.Del(ctx, codeKey(subject)).Err(); err != nil {
		return fmt.Errorf("code store: failed to delete code: %w", classify(err))
	}

	return nil
}

// AcquireCooldown занимает интервал между отправками
func (s *RedisStore) AcquireCooldown(ctx context.Context, subject string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return true, nil
	}

	ok, err := s.client.SetNX(ctx, cooldownKey(subject), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("code store: failed to acquire cooldown: %w", classify(err))
	}

	return ok, nil
}
