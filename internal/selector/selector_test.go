package selector

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Freeeeeet/reservation_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ──

func mustList(t *testing.T, raw ...model.TimeSlot) SlotList {
	t.Helper()
	list, err := NewSlotList(raw)
	require.NoError(t, err)
	return list
}

func ts(clock string, available bool) model.TimeSlot {
	return model.TimeSlot{Time: clock, Available: available}
}

func at(t *testing.T, clock string) TimeOfDay {
	t.Helper()
	v, err := ParseTimeOfDay(clock)
	require.NoError(t, err)
	return v
}

func loaded(t *testing.T, raw ...model.TimeSlot) *Selector {
	t.Helper()
	s := New()
	s.Load(mustList(t, raw...))
	return s
}

// randomList строит день из 30-минутных слотов начиная с open
func randomList(r *rand.Rand, open TimeOfDay, n int) SlotList {
	list := make(SlotList, n)
	for i := range list {
		list[i] = Slot{Time: open + TimeOfDay(i*SlotWidth), Available: r.Intn(3) != 0}
	}
	return list
}

// ── visibility ──

func TestVisibility_FirstSlotFollowsOwnFlag(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		list := randomList(r, Clock(9, 0), 1+r.Intn(20))
		assert.Equal(t, list[0].Available, Visibility(list, 0).VisuallyAvailable)
	}
}

func TestVisibility_PreviousSlotMakesVisible(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for n := 0; n < 200; n++ {
		list := randomList(r, Clock(10, 0), 2+r.Intn(20))
		for i := 1; i < len(list); i++ {
			want := list[i].Available || list[i-1].Available
			got := Visibility(list, i)
			assert.Equal(t, want, got.VisuallyAvailable, "index %d", i)
			assert.Equal(t, got.VisuallyAvailable, got.Clickable)
		}
	}
}

func TestVisibility_OutOfRange(t *testing.T) {
	list := mustList(t, ts("09:00", true))
	assert.Equal(t, SlotVisibility{}, Visibility(list, -1))
	assert.Equal(t, SlotVisibility{}, Visibility(list, 1))
}

// ── closing time ──

func TestClosingTime(t *testing.T) {
	tests := []struct {
		name string
		list SlotList
		want TimeOfDay
	}{
		{"no slots", nil, Clock(23, 0)},
		{"none available", SlotList{{Clock(18, 0), false}, {Clock(18, 30), false}}, Clock(23, 0)},
		{"last available 22:30", SlotList{{Clock(22, 0), true}, {Clock(22, 30), true}, {Clock(23, 0), false}}, Clock(23, 0)},
		{"scan from the end", SlotList{{Clock(12, 0), true}, {Clock(12, 30), false}}, Clock(12, 30)},
		{"rolls past midnight", SlotList{{Clock(23, 0), true}, {Clock(23, 30), true}}, Clock(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClosingTime(tt.list))
		})
	}
}

// ── transitions ──

func TestSelectEndpoint_EmptyIgnoresUnavailable(t *testing.T) {
	s := loaded(t, ts("09:00", false), ts("09:30", true))

	require.NoError(t, s.SelectEndpoint(at(t, "09:00")))
	assert.Equal(t, PhaseEmpty, s.Phase())
}

func TestSelectEndpoint_UnknownSlot(t *testing.T) {
	s := loaded(t, ts("09:00", true))

	err := s.SelectEndpoint(at(t, "11:00"))
	assert.ErrorIs(t, err, ErrUnknownSlot)
	assert.Equal(t, PhaseEmpty, s.Phase())
}

func TestSelectEndpoint_SameStartTwiceClears(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for n := 0; n < 100; n++ {
		s := New()
		s.Load(randomList(r, Clock(12, 0), 2+r.Intn(16)))

		for _, slot := range s.Slots() {
			if !slot.Available {
				continue
			}
			require.NoError(t, s.SelectEndpoint(slot.Time))
			require.Equal(t, PhaseStartOnly, s.Phase())
			require.NoError(t, s.SelectEndpoint(slot.Time))
			assert.Equal(t, PhaseEmpty, s.Phase())
		}
	}
}

func TestSelectEndpoint_EarlierClickRestarts(t *testing.T) {
	s := loaded(t, ts("09:00", true), ts("09:30", true), ts("10:00", true))

	require.NoError(t, s.SelectEndpoint(at(t, "09:30")))
	require.NoError(t, s.SelectEndpoint(at(t, "09:00")))

	start, ok := s.Start()
	assert.True(t, ok)
	assert.Equal(t, PhaseStartOnly, s.Phase())
	assert.Equal(t, at(t, "09:00"), start)
}

func TestSelectEndpoint_EarlierUnavailableClickClears(t *testing.T) {
	s := loaded(t, ts("09:00", false), ts("09:30", true), ts("10:00", true))

	require.NoError(t, s.SelectEndpoint(at(t, "09:30")))
	require.NoError(t, s.SelectEndpoint(at(t, "09:00")))
	assert.Equal(t, PhaseEmpty, s.Phase())
}

// Scenario A
func TestSelectEndpoint_RangeThroughUnavailableRejected(t *testing.T) {
	s := loaded(t,
		ts("09:00", true),
		ts("09:30", true),
		ts("10:00", false),
		ts("10:30", true),
	)

	require.NoError(t, s.SelectEndpoint(at(t, "09:00")))
	err := s.SelectEndpoint(at(t, "10:30"))

	assert.ErrorIs(t, err, ErrUnavailableInRange)
	assert.Equal(t, PhaseStartOnly, s.Phase())
	assert.Equal(t, MsgUnavailableInRange, s.InlineError())

	v := s.View()
	assert.True(t, v.ActionsVisible)
	assert.False(t, v.ConfirmEnabled)
}

// Scenario B
func TestSelectEndpoint_RangeFormed(t *testing.T) {
	s := loaded(t, ts("18:00", true), ts("18:30", true), ts("19:00", true))

	require.NoError(t, s.SelectEndpoint(at(t, "18:00")))
	require.NoError(t, s.SelectEndpoint(at(t, "18:30")))

	start, end, ok := s.Range()
	require.True(t, ok)
	assert.Equal(t, "18:00", start.String())
	assert.Equal(t, "18:30", end.String())

	v := s.View()
	assert.True(t, v.ConfirmEnabled)
	assert.Equal(t, "Confirm booking from 18:00 to 18:30?", v.Summary)
	assert.Equal(t, ConfirmLabel, v.ConfirmLabel)
	assert.True(t, v.Slots[0].Active)
	assert.True(t, v.Slots[1].Active)
	assert.True(t, v.Slots[1].InRange)
	assert.False(t, v.Slots[2].InRange)
}

func TestSelectEndpoint_RangeDeselectViaEitherEndpoint(t *testing.T) {
	for _, click := range []string{"18:00", "19:00"} {
		s := loaded(t, ts("18:00", true), ts("18:30", true), ts("19:00", true), ts("19:30", true))
		require.NoError(t, s.SelectEndpoint(at(t, "18:00")))
		require.NoError(t, s.SelectEndpoint(at(t, "19:00")))
		require.Equal(t, PhaseRange, s.Phase())

		require.NoError(t, s.SelectEndpoint(at(t, click)))
		assert.Equal(t, PhaseEmpty, s.Phase(), "click %s", click)
	}
}

func TestSelectEndpoint_RangeOtherSlot(t *testing.T) {
	s := loaded(t, ts("18:00", true), ts("18:30", true), ts("19:00", true), ts("19:30", false))
	require.NoError(t, s.SelectEndpoint(at(t, "18:00")))
	require.NoError(t, s.SelectEndpoint(at(t, "19:00")))

	require.NoError(t, s.SelectEndpoint(at(t, "18:30")))
	start, ok := s.Start()
	assert.True(t, ok)
	assert.Equal(t, PhaseStartOnly, s.Phase())
	assert.Equal(t, "18:30", start.String())

	require.NoError(t, s.SelectEndpoint(at(t, "19:00")))
	require.Equal(t, PhaseRange, s.Phase())

	// занятый слот, не являющийся границей, просто снимает выбор
	require.NoError(t, s.SelectEndpoint(at(t, "19:30")))
	assert.Equal(t, PhaseEmpty, s.Phase())
}

func TestSelectEndpoint_BeyondMaxDurationNotSelectable(t *testing.T) {
	raw := make([]model.TimeSlot, 0, 24)
	for i := 0; i < 24; i++ {
		raw = append(raw, ts((Clock(8, 0)+TimeOfDay(i*SlotWidth)).String(), true))
	}
	s := loaded(t, raw...)

	require.NoError(t, s.SelectEndpoint(at(t, "08:00")))
	err := s.SelectEndpoint(at(t, "18:30"))
	assert.ErrorIs(t, err, ErrSlotNotSelectable)
	assert.Equal(t, PhaseStartOnly, s.Phase())

	require.NoError(t, s.SelectEndpoint(at(t, "18:00")))
	assert.Equal(t, PhaseRange, s.Phase())
}

func TestSelectEndpoint_RangeInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for n := 0; n < 300; n++ {
		s := New()
		s.Load(randomList(r, Clock(11, 0), 2+r.Intn(24)))
		slots := s.Slots()

		for click := 0; click < 30; click++ {
			target := slots[r.Intn(len(slots))].Time
			err := s.SelectEndpoint(target)
			if err != nil && !errors.Is(err, ErrUnavailableInRange) && !errors.Is(err, ErrSlotNotSelectable) {
				t.Fatalf("unexpected error: %v", err)
			}

			if start, end, ok := s.Range(); ok {
				require.Greater(t, end, start)
				require.True(t, slots.AllAvailable(start, end), "range %s-%s crosses unavailable slot", start, end)
				require.LessOrEqual(t, int(end-start), MaxDuration)
			}
		}
	}
}

// ── selectability ──

func TestSelectability_NeverBeyondMaxDuration(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for n := 0; n < 200; n++ {
		s := New()
		s.Load(randomList(r, Clock(6, 0), 2+r.Intn(36)))

		for _, start := range s.Slots() {
			flags := s.Selectability(start.Time)
			for i, slot := range s.Slots() {
				if slot.Time > start.Time && int(slot.Time-start.Time) > MaxDuration {
					assert.False(t, flags[i], "start %s end %s", start.Time, slot.Time)
				}
			}
		}
	}
}

func TestSelectability_StartStaysEnabled(t *testing.T) {
	s := loaded(t, ts("12:00", true), ts("12:30", true), ts("13:00", false), ts("13:30", false))

	flags := s.Selectability(at(t, "12:00"))
	assert.Equal(t, []bool{true, true, false, false}, flags)
}

func TestSelectability_UnavailableInBetween(t *testing.T) {
	s := loaded(t,
		ts("09:00", true),
		ts("09:30", true),
		ts("10:00", false),
		ts("10:30", true),
		ts("11:00", true),
	)

	flags := s.Selectability(at(t, "09:00"))
	assert.Equal(t, []bool{true, true, true, false, false}, flags)
}

// Scenario D
func TestSelectability_ClosingTimeBoundary(t *testing.T) {
	s := loaded(t,
		ts("20:00", true),
		ts("20:30", true),
		ts("21:00", true),
		ts("21:30", true),
		ts("22:00", true),
		ts("22:30", true),
		ts("23:00", false),
	)
	require.Equal(t, "23:00", s.ClosingTime().String())

	flags := s.Selectability(at(t, "20:00"))
	assert.True(t, flags[5], "22:30 is a valid end")
	assert.False(t, flags[6], "23:00 is at closing")
}

func TestSelectability_EarlierSlotsWithoutRollover(t *testing.T) {
	// начало 10:00: максимум 20:00, закрытие 12:00 - перенос через полночь не нужен
	s := loaded(t, ts("09:00", true), ts("09:30", true), ts("10:00", true), ts("10:30", true), ts("11:00", true), ts("11:30", true))

	flags := s.Selectability(at(t, "10:00"))
	assert.True(t, flags[0])
	assert.True(t, flags[1])
}

func TestSelectability_EarlierSlotsWithRollover(t *testing.T) {
	// начало 20:00: граница длительности 06:00 следующего дня, значит
	// ранние слоты считаются завтрашними и выходят за закрытие
	full := []model.TimeSlot{}
	for tm := Clock(9, 0); tm <= Clock(22, 30); tm += SlotWidth {
		available := tm < Clock(10, 0) || tm >= Clock(19, 0)
		full = append(full, ts(tm.String(), available))
	}
	s := loaded(t, full...)

	flags := s.Selectability(at(t, "20:00"))
	idx, ok := s.Slots().Index(at(t, "09:00"))
	require.True(t, ok)
	assert.False(t, flags[idx])
}

func TestSelectability_ClosingAfterMidnight(t *testing.T) {
	s := loaded(t, ts("22:30", true), ts("23:00", true), ts("23:30", true))
	require.Equal(t, "00:00", s.ClosingTime().String())

	flags := s.Selectability(at(t, "22:30"))
	assert.Equal(t, []bool{true, true, true}, flags)
}

// ── submission ──

func TestSubmit_OnlyInRange(t *testing.T) {
	s := loaded(t, ts("18:00", true), ts("18:30", true))
	assert.ErrorIs(t, s.BeginSubmit(), ErrNoRange)

	require.NoError(t, s.SelectEndpoint(at(t, "18:00")))
	assert.ErrorIs(t, s.BeginSubmit(), ErrNoRange)
}

func TestSubmit_FailurePreservesRange(t *testing.T) {
	s := loaded(t, ts("18:00", true), ts("18:30", true), ts("19:00", true))
	require.NoError(t, s.SelectEndpoint(at(t, "18:00")))
	require.NoError(t, s.SelectEndpoint(at(t, "19:00")))

	require.NoError(t, s.BeginSubmit())
	v := s.View()
	assert.False(t, v.ConfirmEnabled)
	assert.Equal(t, ProcessingLabel, v.ConfirmLabel)
	assert.ErrorIs(t, s.BeginSubmit(), ErrSubmissionInProgress)
	assert.ErrorIs(t, s.SelectEndpoint(at(t, "18:30")), ErrSubmissionInProgress)

	s.FailSubmit("Sorry, one or more time slots in your selected range were just booked by another user.")
	start, end, ok := s.Range()
	require.True(t, ok)
	assert.Equal(t, "18:00", start.String())
	assert.Equal(t, "19:00", end.String())
	assert.True(t, s.ConfirmEnabled())
	assert.Contains(t, s.View().Error, "just booked")
}

func TestLoad_ResetsSelection(t *testing.T) {
	s := loaded(t, ts("18:00", true), ts("18:30", true))
	require.NoError(t, s.SelectEndpoint(at(t, "18:00")))
	require.NoError(t, s.SelectEndpoint(at(t, "18:30")))

	s.Load(mustList(t, ts("12:00", true)))
	assert.Equal(t, PhaseEmpty, s.Phase())
	assert.Equal(t, "12:30", s.ClosingTime().String())
	_, _, ok := s.Range()
	assert.False(t, ok)
}

func TestView_NoAvailableSlots(t *testing.T) {
	s := loaded(t, ts("18:00", false), ts("18:30", false))
	assert.False(t, s.View().HasAvailable)

	s = loaded(t, ts("18:00", true), ts("18:30", false))
	assert.True(t, s.View().HasAvailable)
}

func TestView_StartOnlyClickable(t *testing.T) {
	s := loaded(t, ts("09:00", true), ts("09:30", true), ts("10:00", false), ts("10:30", true))
	require.NoError(t, s.SelectEndpoint(at(t, "09:00")))

	v := s.View()
	require.Len(t, v.Slots, 4)
	assert.True(t, v.Slots[0].Active)
	assert.True(t, v.Slots[1].Clickable)
	assert.True(t, v.Slots[2].Clickable)  // конец ровно в начале занятого слота
	assert.False(t, v.Slots[3].Clickable) // через занятый слот
	assert.Empty(t, v.Summary)
}
