package common

import (
	"errors"

	"github.com/Freeeeeet/reservation_bot/internal/reservationapi"
	"github.com/Freeeeeet/reservation_bot/internal/selector"
	"github.com/Freeeeeet/reservation_bot/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
	ErrRateLimited   = errors.New("too many clicks")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	var sizeErr *selector.PartySizeError

	switch {
	case errors.As(err, &sizeErr):
		return sizeErr.Guidance
	case errors.Is(err, ErrUserNotFound), errors.Is(err, service.ErrUserNotFound):
		return "❌ User not found. Use /start"
	case errors.Is(err, ErrNoMessage):
		return "❌ Could not process the message"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid data"
	case errors.Is(err, ErrRateLimited):
		return "⏳ Too many clicks, slow down a little"
	case errors.Is(err, service.ErrTokenRequired):
		return "🔑 Link your reservation account first: /token"
	case errors.Is(err, service.ErrInvalidToken):
		return "❌ This does not look like a valid token"
	case errors.Is(err, reservationapi.ErrUnauthorized):
		return "🔑 The reservation service rejected your token. Send a new one with /token"
	case errors.Is(err, service.ErrNoSession):
		return "⌛ This booking has expired. Start again with /book"
	case errors.Is(err, service.ErrLoading):
		return LoadingText
	case errors.Is(err, service.ErrInvalidDate):
		return "❌ Reservations are available for the next 7 days only"
	case errors.Is(err, selector.ErrUnavailableInRange):
		return selector.MsgUnavailableInRange
	case errors.Is(err, selector.ErrSlotNotSelectable):
		return "This time cannot be the end of your reservation"
	case errors.Is(err, selector.ErrSubmissionInProgress):
		return selector.ProcessingLabel
	case errors.Is(err, selector.ErrNoRange):
		return "Select a start and an end time first"
	case errors.Is(err, selector.ErrUnknownSlot):
		return "❌ This time is no longer offered"
	case errors.Is(err, service.ErrFetchFailure):
		return service.FailureMessage(err, "Failed to load slots.")
	case errors.Is(err, service.ErrSubmissionFailure):
		return service.FailureMessage(err, "Failed to create reservation.")
	default:
		return "❌ Something went wrong"
	}
}

// ServiceFailureMessage текст ошибки сервиса бронирований.
// Проблемы с токеном объясняются отдельно, остальное берётся из ответа сервиса.
func ServiceFailureMessage(err error, fallback string) string {
	if errors.Is(err, reservationapi.ErrUnauthorized) || errors.Is(err, service.ErrTokenRequired) {
		return ErrorMessage(err)
	}
	return service.FailureMessage(err, fallback)
}
