package callbacktypes

import (
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"go.uber.org/zap"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

// StateManager интерфейс для управления состоянием пользователей
type StateManager interface {
	ClearState(telegramID int64)
	GetState(telegramID int64) UserState
	SetState(telegramID int64, state UserState)
	SetData(telegramID int64, key string, value interface{})
	GetData(telegramID int64, key string) (interface{}, bool)
}

// ClickLimiter ограничивает частоту нажатий одного пользователя
type ClickLimiter interface {
	Allow(telegramID int64) bool
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	UserService    *service.UserService
	BookingService *service.BookingService
	StateManager   StateManager
	Limiter        ClickLimiter
	Logger         *zap.Logger
}
