package verification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avc/marketplace-escrow/internal/domain"
	"go.uber.org/zap"
)

// Message код подтверждения для доставки получателю
type Message struct {
	Destination string                     `json:"destination"`
	Channel     domain.VerificationChannel `json:"channel"`
	Code        string                     `json:"code"`
}

// Sender определяет доставку кодов во внешний канал.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// HTTPSender отправляет коды через сервис уведомлений.
type HTTPSender struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSender создает новый HTTPSender
func NewHTTPSender(baseURL string) *HTTPSender {
	return &HTTPSender{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send передает код в сервис уведомлений
func (s *HTTPSender) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("notification sender: failed to encode message: %w", err)
	}

	url := fmt.Sprintf("%s/api/notifications/%s", s.baseURL, msg.Channel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notification sender: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notification sender: failed to execute request: %w: %w", domain.ErrTransient, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil

	case http.StatusTooManyRequests:
		return fmt.Errorf("notification sender: rate limit exceeded, retry after %q: %w",
			resp.Header.Get("Retry-After"), domain.ErrTransient)

	default:
		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("notification sender: unexpected status code: %d: %w", resp.StatusCode, domain.ErrTransient)
		}
		return fmt.Errorf("notification sender: unexpected status code: %d", resp.StatusCode)
	}
}

// LogSender пишет коды в лог, используется без сервиса уведомлений
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender создает новый LogSender
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send логирует код вместо отправки
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("verification code issued",
		zap.String("destination", msg.Destination),
		zap.String("channel", string(msg.Channel)),
		zap.String("code", msg.Code),
	)
	return nil
}
