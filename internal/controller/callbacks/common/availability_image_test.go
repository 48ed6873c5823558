package common

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/Freeeeeet/reservation_bot/internal/model"
	"github.com/Freeeeeet/reservation_bot/internal/selector"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAvailabilityImage(t *testing.T) {
	snap := snapshotOf(t,
		[]selector.TimeOfDay{selector.Clock(18, 0)},
		model.TimeSlot{Time: "17:00", Available: true},
		model.TimeSlot{Time: "17:30", Available: false},
		model.TimeSlot{Time: "18:00", Available: true},
		model.TimeSlot{Time: "18:30", Available: true},
		model.TimeSlot{Time: "19:00", Available: true},
		model.TimeSlot{Time: "19:30", Available: true},
		model.TimeSlot{Time: "20:00", Available: false},
	)

	data, err := GenerateAvailabilityImage(snap)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	// две строки по шесть слотов
	assert.Equal(t, headerHeight+int(2*(cellHeight+cellGap))+legendHeight, img.Bounds().Dy())
}

func TestGenerateAvailabilityImage_Empty(t *testing.T) {
	data, err := GenerateAvailabilityImage(service.Snapshot{Date: "2026-10-18", PartySize: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestSlotColor(t *testing.T) {
	assert.Equal(t, slotSelectedColor, slotColor(selector.SlotView{Active: true, VisuallyAvailable: true}))
	assert.Equal(t, slotSelectedColor, slotColor(selector.SlotView{InRange: true}))
	assert.Equal(t, slotBookedColor, slotColor(selector.SlotView{}))
	assert.Equal(t, slotOutOfReachColor, slotColor(selector.SlotView{VisuallyAvailable: true}))
	assert.Equal(t, slotFreeColor, slotColor(selector.SlotView{VisuallyAvailable: true, Clickable: true}))
}
