package formatting

import "fmt"

// Guests "1 guest", "4 guests"
func Guests(count int) string {
	if count == 1 {
		return "1 guest"
	}
	return fmt.Sprintf("%d guests", count)
}

// PluralizeReservations возвращает правильную форму слова "reservation"
func PluralizeReservations(count int) string {
	if count == 1 {
		return "reservation"
	}
	return "reservations"
}
