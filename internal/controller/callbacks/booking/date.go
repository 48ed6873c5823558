package booking

import (
	"context"
	"errors"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/reservation_bot/internal/controller/state"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleSelectDate загружает слоты на выбранную дату
func HandleSelectDate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithToken(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if hc.Message == nil {
			hc.AnswerAlert(common.ErrorMessage(common.ErrNoMessage))
			return
		}

		date, err := common.ParseValueFromCallback(callback.Data)
		if err != nil {
			common.HandleError(hc, err, "select_date")
			return
		}

		snap, ok := h.BookingService.Session(hc.ChatID)
		if !ok || snap.PartySize == 0 {
			hc.AnswerAlert(common.ErrorMessage(service.ErrNoSession))
			return
		}
		hc.Answer("")

		snap.Date = date
		edit(hc, common.BuildLoadingScreen(snap), nil)
		h.BookingService.SetMessageID(hc.ChatID, hc.Message.ID)

		snap, err = h.BookingService.LoadSlots(hc.Ctx, hc.ChatID, hc.User, date, snap.PartySize)
		switch {
		case err == nil:
			renderSlots(hc, snap)

		case errors.Is(err, service.ErrStaleResponse):
			// сообщение перерисует более свежая загрузка
			return

		case errors.Is(err, service.ErrInvalidDate):
			text, kb := common.BuildDateScreen(snap.PartySize, h.BookingService.BookingDates())
			edit(hc, "⚠️ "+common.ErrorMessage(err)+"\n\n"+text, kb)

		case errors.Is(err, service.ErrFetchFailure):
			snap.Date = date
			text, kb := common.BuildFetchFailureScreen(snap, common.ErrorMessage(err))
			edit(hc, text, kb)

		default:
			hc.Log().Error("Failed to load slots",
				zap.String("date", date),
				zap.Error(err))
			text, kb := common.BuildFetchFailureScreen(snap, common.ErrorMessage(err))
			edit(hc, text, kb)
		}
	})
}

// HandleChangeDate возвращает к выбору даты
func HandleChangeDate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithUser(ctx, b, callback, h, func(hc *common.HandlerContext) {
		snap, ok := h.BookingService.Session(hc.ChatID)
		if !ok || snap.PartySize == 0 {
			askPartySize(hc)
			return
		}

		text, kb := common.BuildDateScreen(snap.PartySize, h.BookingService.BookingDates())
		edit(hc, text, kb)
		hc.Answer("")
	})
}

// HandleChangePartySize спрашивает размер компании заново
func HandleChangePartySize(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithUser(ctx, b, callback, h, func(hc *common.HandlerContext) {
		askPartySize(hc)
	})
}

func askPartySize(hc *common.HandlerContext) {
	if err := hc.Handler.BookingService.Restart(hc.ChatID); err != nil {
		hc.Answer(common.ErrorMessage(err))
		return
	}

	hc.SetState(state.StateEnteringPartySize)
	if hc.Message != nil {
		hc.SetData(state.DataPromptMessageID, hc.Message.ID)
	}
	edit(hc, common.PartySizePrompt, nil)
	hc.Answer("")
}
