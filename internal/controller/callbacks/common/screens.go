package common

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/reservation_bot/internal/model"
	"github.com/Freeeeeet/reservation_bot/internal/selector"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"github.com/go-telegram/bot/models"
)

// LoadingText показывается, пока слоты загружаются
const LoadingText = "⏳ Loading available times..."

// PartySizePrompt вопрос о размере компании
const PartySizePrompt = "👥 How many guests? Send a number from 1 to 12."

// BuildDateScreen экран выбора даты
func BuildDateScreen(partySize int, dates []time.Time) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"🍽 <b>Table for %s</b>\n\n📅 Choose a date:",
		formatting.Guests(partySize),
	)
	return text, keyboard.DateGrid(dates)
}

// BuildLoadingScreen заглушка на время загрузки
func BuildLoadingScreen(snap service.Snapshot) string {
	return bookingHeader(snap) + "\n" + LoadingText
}

// BuildFetchFailureScreen экран ошибки загрузки слотов
func BuildFetchFailureScreen(snap service.Snapshot, message string) (string, *models.InlineKeyboardMarkup) {
	text := bookingHeader(snap) + "\n⚠️ " + html.EscapeString(message)

	kb := keyboard.NewBuilder().
		Row(keyboard.RetryRow(snap.Date)...).
		AddBookingNavigation().
		Build()
	return text, kb
}

// BuildSlotScreen экран выбора интервала
func BuildSlotScreen(snap service.Snapshot) (string, *models.InlineKeyboardMarkup) {
	view := snap.View

	var sb strings.Builder
	sb.WriteString(bookingHeader(snap))
	sb.WriteString("\n")

	if !view.HasAvailable {
		sb.WriteString("😔 " + selector.MsgNoSlots)
		kb := keyboard.NewBuilder().AddBookingNavigation().Build()
		return sb.String(), kb
	}

	switch view.Phase {
	case selector.PhaseEmpty:
		sb.WriteString("Select the start of your reservation.")
	case selector.PhaseStartOnly:
		if start, ok := activeStart(view); ok {
			fmt.Fprintf(&sb, "Start: <b>%s</b>. Now select the end time.", start)
		}
	case selector.PhaseRange:
		sb.WriteString("<b>" + view.Summary + "</b>")
		if start, end, ok := rangeBounds(view); ok {
			fmt.Fprintf(&sb, "\n⏱ %s", formatting.FormatDuration(formatting.RangeDuration(start, end)))
		}
	}

	if view.Error != "" {
		sb.WriteString("\n\n⚠️ " + html.EscapeString(view.Error))
	}

	sb.WriteString("\n\n🟢 selected  ✖️ booked  ▫️ out of reach")

	return sb.String(), keyboard.SlotGrid(view)
}

func bookingHeader(snap service.Snapshot) string {
	return fmt.Sprintf(
		"🍽 <b>Table for %s</b>\n📅 %s\n",
		formatting.Guests(snap.PartySize),
		formatting.FormatBookingDate(snap.Date),
	)
}

func activeStart(view selector.View) (selector.TimeOfDay, bool) {
	for _, sv := range view.Slots {
		if sv.Active {
			return sv.Time, true
		}
	}
	return 0, false
}

func rangeBounds(view selector.View) (start, end selector.TimeOfDay, ok bool) {
	found := 0
	for _, sv := range view.Slots {
		if !sv.Active {
			continue
		}
		if found == 0 {
			start = sv.Time
		}
		end = sv.Time
		found++
	}
	return start, end, found == 2
}

// BuildConfirmationScreen экран после успешной брони
func BuildConfirmationScreen(conf *service.Confirmation) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📋 My reservations", keyboard.ReservationList)).
		Build()
	return formatting.FormatConfirmation(conf.Reservation), kb
}

// BuildReservationsScreen список броней пользователя
func BuildReservationsScreen(history *model.ReservationHistory) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	kb := keyboard.NewBuilder()

	sb.WriteString("📋 <b>My reservations</b>\n\n")

	if len(history.Active) == 0 && len(history.Past) == 0 {
		sb.WriteString("You have no reservations yet.\n\nBook a table: /book")
		return sb.String(), kb.Build()
	}

	if len(history.Active) > 0 {
		fmt.Fprintf(&sb, "<b>Upcoming</b> (%d %s)\n", len(history.Active), formatting.PluralizeReservations(len(history.Active)))
		for i, res := range history.Active {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, formatting.FormatReservation(res))
			if res.Status == model.ReservationStatusConfirmed {
				kb.Row(keyboard.CancelReservationButton(res.ID, fmt.Sprintf("#%d", i+1)))
			}
		}
	}

	if len(history.Past) > 0 {
		if len(history.Active) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("<b>Past</b>\n")
		for _, res := range history.Past {
			sb.WriteString(formatting.FormatReservation(res) + "\n")
		}
	}

	kb.Row(keyboard.Button("🔄 Refresh", keyboard.ReservationList))
	return strings.TrimRight(sb.String(), "\n"), kb.Build()
}

// BuildCancelConfirmScreen подтверждение отмены брони
func BuildCancelConfirmScreen(id int64) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder().
		AddRows(keyboard.YesNoButtons(
			fmt.Sprintf("res_cancel_ok:%d", id),
			keyboard.ReservationList,
		)).
		Build()
	return "❓ Cancel this reservation?", kb
}
