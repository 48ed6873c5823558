package formatting

import (
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/reservation_bot/internal/model"
)

// FormatReservation строка брони в списке
func FormatReservation(res model.Reservation) string {
	display := GetReservationStatusDisplay(res.Status)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s <b>%s</b>, %s\n", display.Emoji, html.EscapeString(res.Table.Name), Guests(res.PartySize))
	fmt.Fprintf(&sb, "   🕒 %s - %s", html.EscapeString(res.StartTimeDisplay), html.EscapeString(res.EndTimeDisplay))
	if res.Status != model.ReservationStatusConfirmed {
		fmt.Fprintf(&sb, " (%s)", display.Text)
	}
	return sb.String()
}

// FormatConfirmation текст после успешной брони
func FormatConfirmation(res *model.Reservation) string {
	return fmt.Sprintf(
		"🎉 <b>Reservation Confirmed!</b>\n\n"+
			"Your table for %s has been booked.\n\n"+
			"🪑 Table: %s\n"+
			"🕒 From: %s\n"+
			"🕘 To: %s\n\n"+
			"See all your reservations: /myreservations",
		Guests(res.PartySize),
		html.EscapeString(res.Table.Name),
		html.EscapeString(res.StartTimeDisplay),
		html.EscapeString(res.EndTimeDisplay),
	)
}

// FormatLocalReminder напоминание о скорой брони
func FormatLocalReminder(res *model.LocalReservation) string {
	name := ""
	if res.User != nil && res.User.FirstName != "" {
		name = ", " + html.EscapeString(res.User.FirstName)
	}
	return fmt.Sprintf(
		"⏰ Reminder%s!\n\n"+
			"Your table for %s is waiting for you today at <b>%s</b>.\n"+
			"🪑 %s",
		name,
		Guests(res.PartySize),
		res.StartsAt.Format("15:04"),
		html.EscapeString(res.TableName),
	)
}
