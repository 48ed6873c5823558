package keyboard

import (
	"github.com/go-telegram/bot/models"
)

// Callback data, общие для нескольких экранов
const (
	Noop            = "noop"
	ChangeDate      = "book_date"
	ChangePartySize = "book_party"
	ReservationList = "res_list"
)

// BackButton создаёт кнопку "Назад"
func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Back", callbackData)
}

// NoopButton кнопка без действия (подписи, недоступные слоты)
func NoopButton(text string) models.InlineKeyboardButton {
	return Button(text, Noop)
}

// YesNoButtons создаёт ряд с кнопками Да/Нет
func YesNoButtons(yesCallback, noCallback string) [][]models.InlineKeyboardButton {
	return [][]models.InlineKeyboardButton{
		{
			Button("✅ Yes", yesCallback),
			Button("❌ No", noCallback),
		},
	}
}

// AddBackButton добавляет кнопку "Назад" к builder
func (b *Builder) AddBackButton(callbackData string) *Builder {
	return b.Row(BackButton(callbackData))
}

// AddBookingNavigation добавляет переходы к выбору даты и размера компании
func (b *Builder) AddBookingNavigation() *Builder {
	return b.Row(
		Button("📅 Change date", ChangeDate),
		Button("👥 Party size", ChangePartySize),
	)
}
