package booking

import (
	"context"
	"errors"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/reservation_bot/internal/selector"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleSelectSlot обрабатывает клик по слоту
func HandleSelectSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithUser(ctx, b, callback, h, func(hc *common.HandlerContext) {
		value, err := common.ParseValueFromCallback(callback.Data)
		if err != nil {
			common.HandleError(hc, err, "select_slot")
			return
		}
		t, err := selector.ParseTimeOfDay(value)
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "select_slot")
			return
		}

		snap, err := h.BookingService.SelectSlot(hc.ChatID, t)
		switch {
		case err == nil:
			renderSlots(hc, snap)
			hc.Answer("")

		case errors.Is(err, selector.ErrUnavailableInRange):
			// ошибка показывается под сеткой, начало интервала остаётся
			renderSlots(hc, snap)
			hc.Answer("")

		case errors.Is(err, service.ErrNoSession):
			hc.AnswerAlert(common.ErrorMessage(err))

		default:
			hc.Log().Debug("Slot click rejected",
				zap.String("time", value),
				zap.Error(err))
			hc.Answer(common.ErrorMessage(err))
		}
	})
}

// HandleReset снимает выбор интервала
func HandleReset(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithUser(ctx, b, callback, h, func(hc *common.HandlerContext) {
		snap, err := h.BookingService.ResetSelection(hc.ChatID)
		if err != nil {
			hc.Answer(common.ErrorMessage(err))
			return
		}
		renderSlots(hc, snap)
		hc.Answer("")
	})
}
