package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/model"
	"go.uber.org/zap"
)

// Notifier доставляет напоминание пользователю
type Notifier interface {
	NotifyReservation(ctx context.Context, res *model.LocalReservation) error
}

type ReminderService struct {
	reservations ReservationStore
	lead         time.Duration
	now          func() time.Time
	logger       *zap.Logger
}

func NewReminderService(reservations ReservationStore, lead time.Duration, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		reservations: reservations,
		lead:         lead,
		now:          time.Now,
		logger:       logger,
	}
}

// SendDue отправляет напоминания о бронях, начинающихся в ближайшие lead.
// Возвращает число отправленных напоминаний.
func (s *ReminderService) SendDue(ctx context.Context, notifier Notifier) (int, error) {
	now := s.now()

	due, err := s.reservations.DueForReminder(ctx, now, now.Add(s.lead))
	if err != nil {
		return 0, fmt.Errorf("load due reservations: %w", err)
	}

	sent := 0
	for _, res := range due {
		if err := notifier.NotifyReservation(ctx, res); err != nil {
			// Пользователь мог заблокировать бота, пробуем на следующем тике
			s.logger.Warn("Failed to send reminder",
				zap.Int64("reservation_id", res.ID),
				zap.Int64("user_id", res.UserID),
				zap.Error(err))
			continue
		}

		if err := s.reservations.MarkReminded(ctx, res.ID, now); err != nil {
			s.logger.Error("Failed to mark reservation reminded",
				zap.Int64("reservation_id", res.ID),
				zap.Error(err))
			continue
		}
		sent++
	}

	if sent > 0 {
		s.logger.Info("Reminders sent", zap.Int("count", sent))
	}
	return sent, nil
}
