package handlers

import (
	"github.com/Freeeeeet/reservation_bot/internal/controller/state"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService    *service.UserService
	bookingService *service.BookingService
	stateManager   *state.Manager
	logger         *zap.Logger
}

func NewHandlers(
	userService *service.UserService,
	bookingService *service.BookingService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:    userService,
		bookingService: bookingService,
		stateManager:   stateManager,
		logger:         logger,
	}
}
