package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/reservation_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Notifier отправляет напоминания о бронях в Telegram
type Notifier struct {
	bot      *bot.Bot
	location *time.Location
}

func NewNotifier(b *bot.Bot, location *time.Location) *Notifier {
	if location == nil {
		location = time.UTC
	}
	return &Notifier{bot: b, location: location}
}

// NotifyReservation отправляет напоминание владельцу брони
func (n *Notifier) NotifyReservation(ctx context.Context, res *model.LocalReservation) error {
	if res.User == nil || res.User.TelegramID == 0 {
		return fmt.Errorf("reservation %d has no telegram recipient", res.ID)
	}

	local := *res
	local.StartsAt = res.StartsAt.In(n.location)

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    res.User.TelegramID,
		Text:      formatting.FormatLocalReminder(&local),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}
	return nil
}
