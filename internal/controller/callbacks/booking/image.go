package booking

import (
	"bytes"
	"context"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleSlotsImage отправляет картинку со слотами выбранного дня
func HandleSlotsImage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithUser(ctx, b, callback, h, func(hc *common.HandlerContext) {
		snap, ok := h.BookingService.Session(hc.ChatID)
		if !ok || snap.Date == "" {
			hc.AnswerAlert(common.ErrorMessage(service.ErrNoSession))
			return
		}
		if snap.Loading {
			hc.Answer(common.LoadingText)
			return
		}

		imageData, err := common.GenerateAvailabilityImage(snap)
		if err != nil {
			common.HandleError(hc, err, "slots_image")
			return
		}

		_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:    hc.ChatID,
			Photo:     &models.InputFileUpload{Filename: "slots.png", Data: bytes.NewReader(imageData)},
			Caption:   "📅 " + formatting.FormatBookingDate(snap.Date),
			ParseMode: models.ParseModeHTML,
		})
		if err != nil {
			hc.Log().Error("Failed to send slots image",
				zap.Error(err))
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}
		hc.Answer("")
	})
}
