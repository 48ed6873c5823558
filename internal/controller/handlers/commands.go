package handlers

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/reservation_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := update.Message.From

	registeredUser, err := h.userService.RegisterUser(
		ctx,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
	)

	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Registration failed. Please try again later.")
		return
	}

	tokenHint := "\n\n🔑 First, link your restaurant account: /token"
	if registeredUser.HasToken() {
		tokenHint = ""
	}

	welcomeText := fmt.Sprintf(
		"👋 Hi, %s!\n\n"+
			"I can reserve a table for you. Pick a date, then tap the start and the end of your visit.\n\n"+
			"/book - Reserve a table\n"+
			"/myreservations - My reservations\n"+
			"/help - Help%s",
		html.EscapeString(registeredUser.FirstName),
		tokenHint,
	)

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcomeText, nil)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 <b>Commands</b>\n\n" +
		"/book - Reserve a table\n" +
		"/myreservations - Upcoming and past reservations\n" +
		"/token - Link your restaurant account token\n" +
		"/cancel - Stop the current dialog\n" +
		"/help - Show this help\n\n" +
		"How booking works:\n" +
		"1. Tell me how many guests (1-12).\n" +
		"2. Choose a date within the next week.\n" +
		"3. Tap the start time, then the end time (up to 10 hours).\n" +
		"4. Press <b>Book Now</b>."

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	currentState := h.stateManager.GetState(telegramID)
	_, booking := h.bookingService.Session(chatID)

	if currentState == state.StateNone && !booking {
		h.sendMessage(ctx, b, chatID, "❌ Nothing to cancel.", nil)
		return
	}

	h.stateManager.ClearState(telegramID)
	h.bookingService.Abort(chatID)

	h.sendMessage(ctx, b, chatID, "✅ Cancelled.\n\nUse /help to see the available commands.", nil)
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются другими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	if currentState == state.StateNone {
		h.logger.Debug("No active state, ignoring message",
			zap.Int64("telegram_id", telegramID))
		return
	}

	switch currentState {
	case state.StateEnteringPartySize:
		h.handlePartySizeStep(ctx, b, update)
	case state.StateEnteringToken:
		h.handleTokenStep(ctx, b, update)
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}
