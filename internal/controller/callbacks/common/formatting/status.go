package formatting

import "github.com/Freeeeeet/reservation_bot/internal/model"

// ReservationStatusDisplay представляет отображение статуса брони
type ReservationStatusDisplay struct {
	Emoji string
	Text  string
}

// GetReservationStatusDisplay возвращает emoji и текст для статуса брони
func GetReservationStatusDisplay(status model.ReservationStatus) ReservationStatusDisplay {
	displays := map[model.ReservationStatus]ReservationStatusDisplay{
		model.ReservationStatusConfirmed: {"✅", "Confirmed"},
		model.ReservationStatusCancelled: {"❌", "Cancelled"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return ReservationStatusDisplay{"❓", string(status)}
}
