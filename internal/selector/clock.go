package selector

import (
	"fmt"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// TimeOfDay время суток в минутах от полуночи.
// Значения >= MinutesPerDay означают "следующие сутки" и появляются только
// в промежуточной арифметике.
type TimeOfDay int

// Clock собирает TimeOfDay из часов и минут
func Clock(hours, minutes int) TimeOfDay {
	return TimeOfDay(hours*60 + minutes)
}

// ParseTimeOfDay разбирает строку вида "HH:MM"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	hours, ok := twoDigits(s[0], s[1])
	if !ok || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	minutes, ok := twoDigits(s[3], s[4])
	if !ok || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return Clock(hours, minutes), nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// Wrap приводит время к диапазону одних суток
func (t TimeOfDay) Wrap() TimeOfDay {
	return ((t % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
}

// String форматирует время как "HH:MM"
func (t TimeOfDay) String() string {
	w := int(t.Wrap())
	return fmt.Sprintf("%02d:%02d", w/60, w%60)
}

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}
