package model

// TimeSlot слот доступности одного столика на выбранную дату.
// Приходит от сервиса бронирований как есть и не изменяется.
type TimeSlot struct {
	Time      string `json:"time"` // "HH:MM"
	Available bool   `json:"available"`
}
