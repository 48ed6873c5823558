package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/reservation_bot/internal/app"
	"github.com/Freeeeeet/reservation_bot/internal/config"
	"github.com/Freeeeeet/reservation_bot/internal/controller"
	"github.com/Freeeeeet/reservation_bot/internal/repository"
	"github.com/Freeeeeet/reservation_bot/internal/reservationapi"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"github.com/Freeeeeet/reservation_bot/migrations"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("Starting reservation bot",
		zap.String("environment", cfg.Environment),
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.String("timezone", cfg.Location.String()))

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}
	logger.Info("Bot stopped")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}

	migrator, err := app.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		return err
	}
	if err := migrator.Run(ctx); err != nil {
		migrator.Close()
		return err
	}
	migrator.Close()

	// Репозитории
	userRepo := repository.NewUserRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)

	// Сервисы
	apiClient := reservationapi.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger)
	userService := service.NewUserService(userRepo, logger)
	bookingService := service.NewBookingService(apiClient, reservationRepo, cfg.Location, logger)
	reminderService := service.NewReminderService(reservationRepo, cfg.ReminderLead, logger)

	b, err := bot.New(cfg.TelegramToken, bot.WithErrorsHandler(func(err error) {
		logger.Warn("Telegram polling error", zap.Error(err))
	}))
	if err != nil {
		return err
	}

	botController := controller.NewBotController(b, userService, bookingService, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		return err
	}

	scheduler := app.NewScheduler(
		reminderService,
		controller.NewNotifier(b, cfg.Location),
		bookingService,
		botController,
		cfg.SessionIdle,
		logger,
	)
	health := app.NewHealthServer(cfg.HTTPAddr, pool, cfg.IsProduction(), logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return botController.Start(gctx) })
	g.Go(func() error { return scheduler.Run(gctx) })
	g.Go(func() error { return health.Run(gctx) })

	return g.Wait()
}
