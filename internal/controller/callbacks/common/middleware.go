package common

import (
	"context"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// WithUser создаёт HandlerContext и загружает пользователя.
// При ошибке сам отвечает пользователю.
func WithUser(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	hc := NewHandlerContext(ctx, b, callback, h)

	if err := hc.LoadUser(); err != nil {
		hc.Log().Error("Failed to load user", zap.Error(err))
		hc.AnswerAlert(ErrorMessage(err))
		return
	}

	handler(hc)
}

// WithToken как WithUser, но дополнительно требует привязанный токен
func WithToken(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	WithUser(ctx, b, callback, h, func(hc *HandlerContext) {
		if err := hc.RequireToken(); err != nil {
			hc.AnswerAlert(ErrorMessage(err))
			return
		}
		handler(hc)
	})
}

// HandleError логирует ошибку и показывает её пользователю
func HandleError(hc *HandlerContext, err error, operation string) {
	hc.Log().Error("Operation failed",
		zap.String("operation", operation),
		zap.Error(err))
	hc.AnswerAlert(ErrorMessage(err))
}
