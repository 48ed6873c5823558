package booking

import (
	"context"
	"errors"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleConfirm отправляет выбранный интервал в сервис бронирований
func HandleConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithToken(ctx, b, callback, h, func(hc *common.HandlerContext) {
		snap, err := h.BookingService.BeginConfirm(hc.ChatID)
		if err != nil {
			hc.Answer(common.ErrorMessage(err))
			return
		}

		// Кнопка превращается в "Processing..." до ответа сервиса
		renderSlots(hc, snap)
		hc.Answer("")

		conf, snap, err := h.BookingService.Confirm(hc.Ctx, hc.ChatID, hc.User)
		switch {
		case err == nil:
			text, kb := common.BuildConfirmationScreen(conf)
			edit(hc, text, kb)

		case errors.Is(err, service.ErrSubmissionFailure):
			// интервал сохранён, текст ошибки сервиса показан под сеткой
			renderSlots(hc, snap)

		default:
			hc.Log().Error("Failed to confirm reservation",
				zap.Error(err))
			edit(hc, common.ErrorMessage(err), nil)
		}
	})
}
