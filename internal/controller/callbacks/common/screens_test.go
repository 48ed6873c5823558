package common

import (
	"testing"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/reservation_bot/internal/model"
	"github.com/Freeeeeet/reservation_bot/internal/selector"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotOf(t *testing.T, clicks []selector.TimeOfDay, raw ...model.TimeSlot) service.Snapshot {
	t.Helper()
	list, err := selector.NewSlotList(raw)
	require.NoError(t, err)

	s := selector.New()
	s.Load(list)
	for _, c := range clicks {
		_ = s.SelectEndpoint(c)
	}
	return service.Snapshot{PartySize: 2, Date: "2026-10-18", TableID: 1, View: s.View()}
}

func TestBuildSlotScreen_NoAvailability(t *testing.T) {
	snap := snapshotOf(t, nil,
		model.TimeSlot{Time: "18:00"},
		model.TimeSlot{Time: "18:30"},
	)

	text, kb := BuildSlotScreen(snap)
	assert.Contains(t, text, selector.MsgNoSlots)
	require.Len(t, kb.InlineKeyboard, 1)
	assert.Equal(t, keyboard.ChangeDate, kb.InlineKeyboard[0][0].CallbackData)
}

func TestBuildSlotScreen_Range(t *testing.T) {
	snap := snapshotOf(t,
		[]selector.TimeOfDay{selector.Clock(18, 0), selector.Clock(19, 0)},
		model.TimeSlot{Time: "18:00", Available: true},
		model.TimeSlot{Time: "18:30", Available: true},
		model.TimeSlot{Time: "19:00", Available: true},
	)

	text, _ := BuildSlotScreen(snap)
	assert.Contains(t, text, "Confirm booking from 18:00 to 19:00?")
	assert.Contains(t, text, "1 h")
	assert.Contains(t, text, "Table for 2 guests")
	assert.Contains(t, text, "Sunday, 18 October")
}

func TestBuildSlotScreen_InlineError(t *testing.T) {
	snap := snapshotOf(t,
		[]selector.TimeOfDay{selector.Clock(18, 0), selector.Clock(19, 0)},
		model.TimeSlot{Time: "18:00", Available: true},
		model.TimeSlot{Time: "18:30", Available: false},
		model.TimeSlot{Time: "19:00", Available: true},
	)

	text, _ := BuildSlotScreen(snap)
	assert.Equal(t, selector.PhaseStartOnly, snap.View.Phase)
	assert.Contains(t, text, "Start: <b>18:00</b>")
	assert.Contains(t, text, selector.MsgUnavailableInRange)
}

func TestBuildReservationsScreen(t *testing.T) {
	text, kb := BuildReservationsScreen(&model.ReservationHistory{
		Active: []model.Reservation{
			{ID: 11, PartySize: 2, Table: model.Table{Name: "Table 1"}, Status: model.ReservationStatusConfirmed},
		},
		Past: []model.Reservation{
			{ID: 5, PartySize: 4, Table: model.Table{Name: "Table 2"}, Status: model.ReservationStatusCancelled},
		},
	})

	assert.Contains(t, text, "Upcoming")
	assert.Contains(t, text, "Past")
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "res_cancel:11", kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, keyboard.ReservationList, kb.InlineKeyboard[1][0].CallbackData)
}

func TestBuildReservationsScreen_Empty(t *testing.T) {
	text, kb := BuildReservationsScreen(&model.ReservationHistory{})
	assert.Contains(t, text, "no reservations")
	assert.Empty(t, kb.InlineKeyboard)
}

func TestBuildCancelConfirmScreen(t *testing.T) {
	_, kb := BuildCancelConfirmScreen(11)
	assert.Equal(t, "res_cancel_ok:11", kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, keyboard.ReservationList, kb.InlineKeyboard[0][1].CallbackData)
}
