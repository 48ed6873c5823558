package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/booking"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/reservations"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Callback Data Patterns
// ========================

// Booking callbacks
const (
	SelectDate  = keyboard.DatePrefix // date:2026-10-18
	SelectSlot  = keyboard.SlotPrefix // slot:18:30
	Confirm     = keyboard.Confirm
	ResetRange  = keyboard.ResetRange
	ChangeParty = keyboard.ChangePartySize
	ChangeDate  = keyboard.ChangeDate
	SlotsImage  = keyboard.SlotsPicture
)

// Reservation list callbacks
const (
	ReservationList   = keyboard.ReservationList
	CancelReservation = "res_cancel:"    // res_cancel:123
	ConfirmCancel     = "res_cancel_ok:" // res_cancel_ok:123
)

// ========================
// Main Callback Router
// ========================

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	if data == keyboard.Noop {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	if h.Limiter != nil && !h.Limiter.Allow(callback.From.ID) {
		h.Logger.Debug("Callback rate limited", zap.Int64("user_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, common.ErrorMessage(common.ErrRateLimited))
		return
	}

	switch {
	// ===== Booking =====
	case strings.HasPrefix(data, SelectDate):
		booking.HandleSelectDate(ctx, b, callback, h)
	case strings.HasPrefix(data, SelectSlot):
		booking.HandleSelectSlot(ctx, b, callback, h)
	case data == Confirm:
		booking.HandleConfirm(ctx, b, callback, h)
	case data == ResetRange:
		booking.HandleReset(ctx, b, callback, h)
	case data == ChangeParty:
		booking.HandleChangePartySize(ctx, b, callback, h)
	case data == ChangeDate:
		booking.HandleChangeDate(ctx, b, callback, h)
	case data == SlotsImage:
		booking.HandleSlotsImage(ctx, b, callback, h)

	// ===== Reservations =====
	case data == ReservationList:
		reservations.HandleList(ctx, b, callback, h)
	case strings.HasPrefix(data, ConfirmCancel):
		reservations.HandleConfirmCancel(ctx, b, callback, h)
	case strings.HasPrefix(data, CancelReservation):
		reservations.HandleCancel(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Unknown action")
	}
}
