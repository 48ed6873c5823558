package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/reservation_bot/internal/controller/state"
	"github.com/Freeeeeet/reservation_bot/internal/selector"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleBook обрабатывает команду /book
func (h *Handlers) HandleBook(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireToken(ctx, b, update); !ok {
		return
	}

	chatID := update.Message.Chat.ID
	if err := h.bookingService.Restart(chatID); err != nil {
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.SetState(telegramID, state.StateEnteringPartySize)
	if msg := h.sendMessage(ctx, b, chatID, common.PartySizePrompt, nil); msg != nil {
		h.stateManager.SetData(telegramID, state.DataPromptMessageID, msg.ID)
	}
}

// ParsePartySize разбирает ответ с размером компании
func ParsePartySize(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return n, true
}

// handlePartySizeStep принимает размер компании и показывает выбор даты
func (h *Handlers) handlePartySizeStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	partySize, ok := ParsePartySize(update.Message.Text)
	if !ok {
		h.sendError(ctx, b, chatID, "❌ Please send a number, for example 4.")
		return
	}

	snap, err := h.bookingService.SetPartySize(chatID, partySize)
	if err != nil {
		var sizeErr *selector.PartySizeError
		if errors.As(err, &sizeErr) {
			// остаёмся в том же шаге, пользователь может ввести другое число
			h.sendError(ctx, b, chatID, sizeErr.Guidance)
			return
		}
		h.logger.Error("Failed to set party size",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	if promptID, ok := h.stateManager.GetInt(telegramID, state.DataPromptMessageID); ok {
		h.deleteMessage(ctx, b, chatID, promptID)
	}
	h.stateManager.ClearState(telegramID)

	h.logger.Info("Party size selected",
		zap.Int64("chat_id", chatID),
		zap.Int("party_size", snap.PartySize),
		zap.Int("table_id", snap.TableID))

	text, kb := common.BuildDateScreen(snap.PartySize, h.bookingService.BookingDates())
	if msg := h.sendMessage(ctx, b, chatID, text, kb); msg != nil {
		h.bookingService.SetMessageID(chatID, msg.ID)
	}
}

// HandleMyReservations обрабатывает команду /myreservations
func (h *Handlers) HandleMyReservations(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireToken(ctx, b, update)
	if !ok {
		return
	}

	chatID := update.Message.Chat.ID
	history, err := h.bookingService.History(ctx, user)
	if err != nil {
		h.logger.Warn("Failed to load reservations",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		h.sendError(ctx, b, chatID, "⚠️ "+common.ServiceFailureMessage(err, "Failed to load reservations."))
		return
	}

	text, kb := common.BuildReservationsScreen(history)
	h.sendMessage(ctx, b, chatID, text, kb)
}
