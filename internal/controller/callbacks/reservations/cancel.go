package reservations

import (
	"context"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleCancel спрашивает подтверждение отмены
func HandleCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithToken(ctx, b, callback, h, func(hc *common.HandlerContext) {
		id, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			common.HandleError(hc, err, "cancel_reservation")
			return
		}

		text, kb := common.BuildCancelConfirmScreen(id)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "cancel_reservation")
			return
		}
		hc.Answer("")
	})
}

// HandleConfirmCancel отменяет бронь и обновляет список
func HandleConfirmCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithToken(ctx, b, callback, h, func(hc *common.HandlerContext) {
		id, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			common.HandleError(hc, err, "confirm_cancel")
			return
		}

		if _, err := h.BookingService.Cancel(hc.Ctx, hc.User, id); err != nil {
			h.Logger.Warn("Failed to cancel reservation",
				zap.Int64("user_id", hc.User.ID),
				zap.Int64("reservation_id", id),
				zap.Error(err))
			hc.AnswerAlert(common.ServiceFailureMessage(err, fallbackCancel))
			return
		}

		showList(hc)
		hc.Answer("✅ Reservation cancelled")
	})
}
