package keyboard

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/selector"
	"github.com/go-telegram/bot/models"
)

// Callback data экрана брони
const (
	DatePrefix   = "date:" // date:2026-10-18
	SlotPrefix   = "slot:" // slot:18:30
	Confirm      = "book_confirm"
	ResetRange   = "book_reset"
	SlotsPicture = "book_image"
)

const (
	slotsPerRow = 4
	datesPerRow = 2
)

// SlotLabel подпись кнопки слота
func SlotLabel(sv selector.SlotView) string {
	t := sv.Time.String()
	switch {
	case sv.Active:
		return "🟢 " + t
	case sv.InRange:
		return "🟩 " + t
	case !sv.VisuallyAvailable:
		return "✖️ " + t
	case !sv.Clickable:
		return "▫️ " + t
	default:
		return t
	}
}

// SlotButton кнопка слота; некликабельные слоты ведут в noop
func SlotButton(sv selector.SlotView) models.InlineKeyboardButton {
	if !sv.Clickable {
		return NoopButton(SlotLabel(sv))
	}
	return Button(SlotLabel(sv), SlotPrefix+sv.Time.String())
}

// SlotGrid строит клавиатуру выбора интервала по снимку селектора
func SlotGrid(view selector.View) *models.InlineKeyboardMarkup {
	b := NewBuilder()

	buttons := make([]models.InlineKeyboardButton, 0, len(view.Slots))
	for _, sv := range view.Slots {
		buttons = append(buttons, SlotButton(sv))
	}
	b.Grid(slotsPerRow, buttons...)

	if view.ActionsVisible {
		confirm := NoopButton(view.ConfirmLabel)
		if view.ConfirmEnabled {
			confirm = Button("✅ "+view.ConfirmLabel, Confirm)
		}
		b.Row(confirm, Button("↩️ Reset", ResetRange))
	}

	if len(view.Slots) > 0 {
		b.Row(Button("🖼 Show as picture", SlotsPicture))
	}
	b.AddBookingNavigation()

	return b.Build()
}

// DateGrid клавиатура выбора даты
func DateGrid(dates []time.Time) *models.InlineKeyboardMarkup {
	buttons := make([]models.InlineKeyboardButton, 0, len(dates))
	for i, d := range dates {
		label := d.Format("Mon 02 Jan")
		if i == 0 {
			label = "Today, " + d.Format("02 Jan")
		}
		buttons = append(buttons, Button(label, DatePrefix+d.Format("2006-01-02")))
	}

	return NewBuilder().
		Grid(datesPerRow, buttons...).
		Row(Button("👥 Party size", ChangePartySize)).
		Build()
}

// RetryRow кнопка повторной загрузки слотов
func RetryRow(date string) []models.InlineKeyboardButton {
	return []models.InlineKeyboardButton{
		Button("🔄 Try again", DatePrefix+date),
	}
}

// CancelReservationButton кнопка отмены брони
func CancelReservationButton(id int64, label string) models.InlineKeyboardButton {
	return Button(fmt.Sprintf("❌ Cancel %s", label), fmt.Sprintf("res_cancel:%d", id))
}
