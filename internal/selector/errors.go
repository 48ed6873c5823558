package selector

import (
	"errors"
	"fmt"
)

// Ошибки селектора слотов
var (
	ErrInvalidTime          = errors.New("invalid time of day")
	ErrMalformedSlots       = errors.New("malformed slot list")
	ErrInvalidPartySize     = errors.New("invalid party size")
	ErrUnknownSlot          = errors.New("slot not found")
	ErrUnavailableInRange   = errors.New("selection includes an unavailable slot")
	ErrSlotNotSelectable    = errors.New("slot is not selectable as end time")
	ErrNoRange              = errors.New("no range selected")
	ErrSubmissionInProgress = errors.New("submission in progress")
)

// Тексты, которые показываются пользователю рядом с сеткой слотов
const (
	MsgUnavailableInRange = "Your selection includes an unavailable time slot. Please select a valid range."
	MsgPartyTooLarge      = "For parties larger than 12, please contact the restaurant directly at +123 456 789."
	MsgPartyTooSmall      = "Party size must be at least 1."
	MsgNoSlots            = "Sorry, no available time slots for this table on the selected date."
)

// PartySizeError размер компании вне допустимого диапазона.
// Guidance - подсказка для пользователя, не фатальная ошибка.
type PartySizeError struct {
	Size     int
	Guidance string
}

func (e *PartySizeError) Error() string {
	return fmt.Sprintf("invalid party size %d: %s", e.Size, e.Guidance)
}

// Is позволяет сравнивать через errors.Is(err, ErrInvalidPartySize)
func (e *PartySizeError) Is(target error) bool {
	return target == ErrInvalidPartySize
}
