package reservations

import (
	"context"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const (
	fallbackHistory = "Failed to load reservations."
	fallbackCancel  = "Failed to cancel reservation."
)

// HandleList показывает брони пользователя
func HandleList(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithToken(ctx, b, callback, h, func(hc *common.HandlerContext) {
		showList(hc)
		hc.Answer("")
	})
}

func showList(hc *common.HandlerContext) {
	history, err := hc.Handler.BookingService.History(hc.Ctx, hc.User)
	if err != nil {
		hc.Log().Warn("Failed to load reservations",
			zap.Int64("user_id", hc.User.ID),
			zap.Error(err))
		if editErr := hc.EditMessage("⚠️ "+common.ServiceFailureMessage(err, fallbackHistory), nil); editErr != nil {
			hc.Log().Error("Failed to edit message", zap.Error(editErr))
		}
		return
	}

	text, kb := common.BuildReservationsScreen(history)
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Log().Error("Failed to edit message", zap.Error(err))
	}
}
