package app

import (
	"context"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/service"
	"go.uber.org/zap"
)

// Интервалы фоновых задач
const (
	reminderInterval = time.Minute
	purgeInterval    = 5 * time.Minute
)

// IdleSweeper чистит состояние, брошенное пользователями
type IdleSweeper interface {
	ForgetIdle(idle time.Duration) int
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	reminders   *service.ReminderService
	notifier    service.Notifier
	booking     *service.BookingService
	sweeper     IdleSweeper
	sessionIdle time.Duration
	logger      *zap.Logger
	stopChan    chan struct{}
}

func NewScheduler(
	reminders *service.ReminderService,
	notifier service.Notifier,
	booking *service.BookingService,
	sweeper IdleSweeper,
	sessionIdle time.Duration,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		reminders:   reminders,
		notifier:    notifier,
		booking:     booking,
		sweeper:     sweeper,
		sessionIdle: sessionIdle,
		logger:      logger,
		stopChan:    make(chan struct{}),
	}
}

// Run запускает фоновые задачи и блокируется до отмены ctx или Stop
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("Starting background scheduler",
		zap.Duration("reminder_interval", reminderInterval),
		zap.Duration("session_idle", s.sessionIdle))

	// Первый запуск сразу при старте
	s.sendReminders(ctx)

	reminderTicker := time.NewTicker(reminderInterval)
	defer reminderTicker.Stop()

	purgeTicker := time.NewTicker(purgeInterval)
	defer purgeTicker.Stop()

	for {
		select {
		case <-reminderTicker.C:
			s.sendReminders(ctx)
		case <-purgeTicker.C:
			s.purgeIdle()
		case <-s.stopChan:
			s.logger.Info("Background scheduler stopped")
			return nil
		case <-ctx.Done():
			s.logger.Info("Background scheduler cancelled")
			return nil
		}
	}
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// sendReminders отправляет напоминания о ближайших бронях
func (s *Scheduler) sendReminders(ctx context.Context) {
	if _, err := s.reminders.SendDue(ctx, s.notifier); err != nil {
		s.logger.Error("Failed to send reminders", zap.Error(err))
	}
}

// purgeIdle удаляет брошенные попытки брони
func (s *Scheduler) purgeIdle() {
	sessions := s.booking.PurgeIdle(s.sessionIdle)
	chatState := 0
	if s.sweeper != nil {
		chatState = s.sweeper.ForgetIdle(s.sessionIdle)
	}

	if sessions > 0 || chatState > 0 {
		s.logger.Info("Idle state purged",
			zap.Int("sessions", sessions),
			zap.Int("chat_state", chatState))
	}
}
