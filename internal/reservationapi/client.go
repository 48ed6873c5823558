package reservationapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Сообщения по умолчанию, если сервис не вернул поле error
const (
	fallbackSlots        = "Failed to load slots."
	fallbackCreate       = "Failed to create reservation."
	fallbackHistory      = "Failed to load reservations."
	fallbackCancel       = "Failed to cancel reservation."
	defaultClientTimeout = 10 * time.Second
)

// ErrUnauthorized сервис не принял токен
var ErrUnauthorized = errors.New("reservation service rejected token")

// APIError ответ сервиса с кодом не 2xx
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is сопоставляет 401/403 с ErrUnauthorized
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// Client HTTP-клиент сервиса бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient создаёт клиента; baseURL вида "https://host/api"
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Availability получает слоты столика на дату
func (c *Client) Availability(ctx context.Context, token, date string, tableID int) ([]model.TimeSlot, error) {
	q := url.Values{}
	q.Set("date", date)
	q.Set("table_id", strconv.Itoa(tableID))

	var slots []model.TimeSlot
	err := c.do(ctx, http.MethodGet, "/reservations/availability/?"+q.Encode(), token, nil, &slots, fallbackSlots)
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateReservation создаёт бронь
func (c *Client) CreateReservation(ctx context.Context, token string, req model.CreateReservationRequest) (*model.Reservation, error) {
	var res model.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations/create/", token, req, &res, fallbackCreate); err != nil {
		return nil, err
	}
	return &res, nil
}

// History получает активные и прошедшие брони пользователя
func (c *Client) History(ctx context.Context, token string) (*model.ReservationHistory, error) {
	var history model.ReservationHistory
	if err := c.do(ctx, http.MethodGet, "/reservations/history/", token, nil, &history, fallbackHistory); err != nil {
		return nil, err
	}
	return &history, nil
}

// CancelReservation отменяет бронь
func (c *Client) CancelReservation(ctx context.Context, token string, id int64) (*model.Reservation, error) {
	var res model.Reservation
	path := fmt.Sprintf("/reservations/%d/cancel/", id)
	if err := c.do(ctx, http.MethodPost, path, token, nil, &res, fallbackCancel); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}, fallback string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Reservation API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Reservation API response",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw, fallback)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage достаёт поле error из тела ответа
func errorMessage(raw []byte, fallback string) string {
	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fallback
	}
	switch {
	case payload.Error != "":
		return payload.Error
	case payload.Detail != "":
		return payload.Detail
	default:
		return fallback
	}
}
