package service

import (
	"errors"
	"strings"

	"github.com/Freeeeeet/reservation_bot/internal/reservationapi"
)

// Ошибки сервисного слоя
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrTokenRequired     = errors.New("reservation service token is not set")
	ErrInvalidToken      = errors.New("invalid reservation service token")
	ErrInvalidDate       = errors.New("date is outside the booking window")
	ErrNoSession         = errors.New("no booking in progress")
	ErrFetchFailure      = errors.New("failed to load slots")
	ErrSubmissionFailure = errors.New("failed to create reservation")
	ErrStaleResponse     = errors.New("stale availability response")
	ErrLoading           = errors.New("slots are still loading")
)

// FailureMessage текст ошибки сервиса бронирований для показа пользователю
func FailureMessage(err error, fallback string) string {
	var apiErr *reservationapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// NormalizeToken очищает токен, вставленный пользователем
func NormalizeToken(raw string) (string, error) {
	token := strings.TrimSpace(raw)
	token = strings.TrimPrefix(token, "Token ")
	token = strings.TrimSpace(token)

	if len(token) < 8 || strings.ContainsAny(token, " \t\n") {
		return "", ErrInvalidToken
	}
	return token, nil
}
