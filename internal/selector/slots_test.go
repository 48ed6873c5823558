package selector

import (
	"testing"

	"github.com/Freeeeeet/reservation_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:30", 0, true},
		{"+9:30", 0, true},
		{"09-30", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestTimeOfDay_Wrap(t *testing.T) {
	assert.Equal(t, "00:30", (Clock(23, 30) + 60).String())
	assert.Equal(t, Clock(1, 0), (Clock(25, 0)).Wrap())
	assert.Equal(t, Clock(23, 0), TimeOfDay(-60).Wrap())
}

func TestNewSlotList(t *testing.T) {
	list, err := NewSlotList([]model.TimeSlot{
		{Time: "18:00", Available: true},
		{Time: "18:30", Available: false},
		{Time: "19:00", Available: true},
	})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, Slot{Time: Clock(18, 30), Available: false}, list[1])

	idx, ok := list.Index(Clock(19, 0))
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = list.Index(Clock(19, 15))
	assert.False(t, ok)
}

func TestNewSlotList_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  []model.TimeSlot
	}{
		{"bad time", []model.TimeSlot{{Time: "7pm"}}},
		{"not increasing", []model.TimeSlot{{Time: "18:00"}, {Time: "18:00"}}},
		{"descending", []model.TimeSlot{{Time: "18:30"}, {Time: "18:00"}}},
		{"uneven step", []model.TimeSlot{{Time: "18:00"}, {Time: "18:30"}, {Time: "19:30"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSlotList(tt.raw)
			assert.ErrorIs(t, err, ErrMalformedSlots)
		})
	}
}

func TestNewSlotList_Empty(t *testing.T) {
	list, err := NewSlotList(nil)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.False(t, list.HasVisible())
}

func TestAllAvailable_HalfOpen(t *testing.T) {
	list := SlotList{{Clock(9, 0), true}, {Clock(9, 30), true}, {Clock(10, 0), false}}

	assert.True(t, list.AllAvailable(Clock(9, 0), Clock(10, 0)))
	assert.False(t, list.AllAvailable(Clock(9, 0), Clock(10, 30)))
}

func TestTableForPartySize(t *testing.T) {
	want := map[int]int{1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 6: 3, 7: 4, 8: 4, 9: 5, 10: 5, 11: 6, 12: 6}
	for size, table := range want {
		got, err := TableForPartySize(size)
		require.NoError(t, err)
		assert.Equal(t, table, got, "party size %d", size)
	}
}

func TestTableForPartySize_Invalid(t *testing.T) {
	// Scenario C: 13 гостей - подсказка, а не загрузка
	_, err := TableForPartySize(13)
	require.ErrorIs(t, err, ErrInvalidPartySize)

	var pse *PartySizeError
	require.ErrorAs(t, err, &pse)
	assert.Equal(t, MsgPartyTooLarge, pse.Guidance)

	_, err = TableForPartySize(0)
	require.ErrorAs(t, err, &pse)
	assert.Equal(t, MsgPartyTooSmall, pse.Guidance)
}
