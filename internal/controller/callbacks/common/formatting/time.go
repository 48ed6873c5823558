package formatting

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/selector"
)

// FormatDate форматирует только дату
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDateWithWeekday форматирует дату с днём недели
func FormatDateWithWeekday(t time.Time) string {
	return t.Format("Monday, 02 January")
}

// FormatBookingDate дата брони из формата сервиса ("2026-10-18").
// Нераспознанная строка возвращается как есть.
func FormatBookingDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return FormatDateWithWeekday(t)
}

// FormatTimeRange форматирует интервал слотов
func FormatTimeRange(start, end selector.TimeOfDay) string {
	return fmt.Sprintf("%s-%s", start, end)
}

// FormatDuration форматирует длительность в минутах
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d h", hours)
	}
	return fmt.Sprintf("%d h %d min", hours, mins)
}

// RangeDuration длительность интервала с учётом перехода через полночь
func RangeDuration(start, end selector.TimeOfDay) int {
	d := end.Minutes() - start.Minutes()
	if d <= 0 {
		d += selector.MinutesPerDay
	}
	return d
}
