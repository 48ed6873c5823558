package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	TelegramID   int64     `json:"telegram_id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	LanguageCode string    `json:"language_code"`
	APIToken     string    `json:"-"` // токен сервиса бронирований
	CreatedAt    time.Time `json:"created_at"`
}

// HasToken проверяет, привязан ли токен сервиса бронирований
func (u *User) HasToken() bool {
	return u != nil && u.APIToken != ""
}
