package controller

import (
	"context"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/reservation_bot/internal/controller/handlers"
	"github.com/Freeeeeet/reservation_bot/internal/controller/state"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Лимит нажатий на inline-кнопки: в среднем 4 в секунду, пачкой до 8
const (
	clickEvery = 250 * time.Millisecond
	clickBurst = 8
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	stateManager    *state.Manager
	limiter         *common.ClickLimiter
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	bookingService *service.BookingService,
	logger *zap.Logger,
) *BotController {
	stateManager := state.NewManager()
	limiter := common.NewClickLimiter(clickEvery, clickBurst)

	cmdHandlers := handlers.NewHandlers(
		userService,
		bookingService,
		stateManager,
		logger,
	)

	callbackHandler := callbacks.NewHandler(
		userService,
		bookingService,
		stateManager,
		limiter,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		stateManager:    stateManager,
		limiter:         limiter,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/book", bot.MatchTypeExact, c.handlers.HandleBook)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/myreservations", bot.MatchTypeExact, c.handlers.HandleMyReservations)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/token", bot.MatchTypePrefix, c.handlers.HandleToken)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Start"},
		{Command: "book", Description: "🍽 Reserve a table"},
		{Command: "myreservations", Description: "📋 My reservations"},
		{Command: "token", Description: "🔑 Link restaurant account"},
		{Command: "cancel", Description: "❌ Stop current dialog"},
		{Command: "help", Description: "❓ Help"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// ForgetIdle чистит брошенные диалоги и лимитеры нажатий неактивных пользователей
func (c *BotController) ForgetIdle(idle time.Duration) int {
	return c.stateManager.Forget(idle) + c.limiter.Forget(idle)
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
