package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/reservation_bot/internal/controller/state"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const tokenPrompt = "🔑 Send the API token from your restaurant account profile."

// HandleToken обрабатывает команду /token [значение]
func (h *Handlers) HandleToken(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireUser(ctx, b, update); !ok {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	raw := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/token"))
	if raw == "" {
		h.stateManager.SetState(telegramID, state.StateEnteringToken)
		h.sendMessage(ctx, b, chatID, tokenPrompt, nil)
		return
	}

	h.saveToken(ctx, b, update, raw)
}

// handleTokenStep принимает токен в диалоге
func (h *Handlers) handleTokenStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.saveToken(ctx, b, update, update.Message.Text)
}

func (h *Handlers) saveToken(ctx context.Context, b *bot.Bot, update *models.Update, raw string) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	// сообщение с токеном не должно оставаться в истории чата
	h.deleteMessage(ctx, b, chatID, update.Message.ID)

	err := h.userService.SetAPIToken(ctx, telegramID, raw)
	switch {
	case err == nil:
		h.stateManager.ClearState(telegramID)
		h.sendMessage(ctx, b, chatID, "✅ Token saved. Reserve a table with /book", nil)

	case errors.Is(err, service.ErrInvalidToken):
		h.stateManager.SetState(telegramID, state.StateEnteringToken)
		h.sendError(ctx, b, chatID, common.ErrorMessage(err)+"\n\n"+tokenPrompt)

	default:
		h.logger.Error("Failed to save token",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
	}
}
