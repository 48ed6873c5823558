package state

import (
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/callbacktypes"
)

// UserState состояние диалога; общий тип с callback-обработчиками
type UserState = callbacktypes.UserState

const (
	StateNone UserState = "" // Нет активного состояния

	// Ввод размера компании перед выбором даты
	StateEnteringPartySize UserState = "entering_party_size"

	// Ввод токена сервиса бронирований
	StateEnteringToken UserState = "entering_token"
)

// Ключи временных данных диалога
const (
	// DataPromptMessageID сообщение с вопросом, которое нужно убрать после ответа
	DataPromptMessageID = "prompt_message_id"
)

// dialog состояние и данные одного пользователя
type dialog struct {
	state     UserState
	data      map[string]interface{}
	touchedAt time.Time
}
