package model

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
)

// Table столик в ответе сервиса бронирований
type Table struct {
	Name string `json:"name"`
}

// Reservation бронь в формате сервиса бронирований
type Reservation struct {
	ID               int64             `json:"id"`
	PartySize        int               `json:"party_size"`
	Table            Table             `json:"table"`
	StartTimeDisplay string            `json:"start_time_display"`
	EndTimeDisplay   string            `json:"end_time_display"`
	Status           ReservationStatus `json:"status"`
}

// ReservationHistory активные и прошедшие брони пользователя
type ReservationHistory struct {
	Active []Reservation `json:"active"`
	Past   []Reservation `json:"past"`
}

// CreateReservationRequest тело запроса на создание брони
type CreateReservationRequest struct {
	PartySize int    `json:"party_size"`
	Date      string `json:"date"`           // "YYYY-MM-DD"
	StartTime string `json:"start_time_str"` // "HH:MM"
	EndTime   string `json:"end_time_str"`   // "HH:MM"
}

// LocalReservation запись о подтверждённой брони в нашей БД
// (нужна для напоминаний и аудита)
type LocalReservation struct {
	ID         int64             `json:"id"`
	UserID     int64             `json:"user_id"`
	RemoteID   int64             `json:"remote_id"`
	PartySize  int               `json:"party_size"`
	TableName  string            `json:"table_name"`
	StartsAt   time.Time         `json:"starts_at"`
	EndsAt     time.Time         `json:"ends_at"`
	Status     ReservationStatus `json:"status"`
	RemindedAt *time.Time        `json:"reminded_at"` // nil - напоминание ещё не отправлено
	CreatedAt  time.Time         `json:"created_at"`

	// Не из БД
	User *User `json:"user,omitempty"`
}
