package formatting

import (
	"testing"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/model"
	"github.com/Freeeeeet/reservation_bot/internal/selector"
	"github.com/stretchr/testify/assert"
)

func TestGuests(t *testing.T) {
	assert.Equal(t, "1 guest", Guests(1))
	assert.Equal(t, "12 guests", Guests(12))
	assert.Equal(t, "reservation", PluralizeReservations(1))
	assert.Equal(t, "reservations", PluralizeReservations(0))
}

func TestRangeDuration(t *testing.T) {
	assert.Equal(t, 30, RangeDuration(selector.Clock(18, 0), selector.Clock(18, 30)))
	assert.Equal(t, 90, RangeDuration(selector.Clock(23, 0), selector.Clock(0, 30)))
	assert.Equal(t, "1 h 30 min", FormatDuration(90))
	assert.Equal(t, "2 h", FormatDuration(120))
	assert.Equal(t, "45 min", FormatDuration(45))
}

func TestFormatBookingDate(t *testing.T) {
	assert.Equal(t, "Sunday, 18 October", FormatBookingDate("2026-10-18"))
	assert.Equal(t, "garbage", FormatBookingDate("garbage"))
}

func TestFormatConfirmation(t *testing.T) {
	text := FormatConfirmation(&model.Reservation{
		PartySize:        4,
		Table:            model.Table{Name: "Table <2>"},
		StartTimeDisplay: "Oct 18, 18:00",
		EndTimeDisplay:   "Oct 18, 19:00",
	})

	assert.Contains(t, text, "Reservation Confirmed!")
	assert.Contains(t, text, "Your table for 4 guests")
	assert.Contains(t, text, "Table &lt;2&gt;")
	assert.Contains(t, text, "Oct 18, 19:00")
}

func TestFormatReservation(t *testing.T) {
	active := FormatReservation(model.Reservation{
		PartySize: 2, Table: model.Table{Name: "Table 1"},
		StartTimeDisplay: "18:00", EndTimeDisplay: "19:00",
		Status: model.ReservationStatusConfirmed,
	})
	assert.Contains(t, active, "✅ <b>Table 1</b>, 2 guests")
	assert.NotContains(t, active, "(Confirmed)")

	cancelled := FormatReservation(model.Reservation{
		PartySize: 1, Table: model.Table{Name: "Table 1"},
		Status: model.ReservationStatusCancelled,
	})
	assert.Contains(t, cancelled, "(Cancelled)")
}

func TestFormatLocalReminder(t *testing.T) {
	text := FormatLocalReminder(&model.LocalReservation{
		PartySize: 3,
		TableName: "Table 2",
		StartsAt:  time.Date(2026, 10, 18, 19, 30, 0, 0, time.UTC),
		User:      &model.User{FirstName: "Ana"},
	})
	assert.Contains(t, text, "Reminder, Ana!")
	assert.Contains(t, text, "<b>19:30</b>")
}
