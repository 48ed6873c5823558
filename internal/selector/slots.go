package selector

import (
	"fmt"
	"sort"

	"github.com/Freeeeeet/reservation_bot/internal/model"
)

// Параметры сетки слотов
const (
	SlotWidth   = 30      // ширина слота в минутах
	MaxDuration = 10 * 60 // максимальная длительность брони в минутах
)

// DefaultClosingTime время закрытия, если в списке нет ни одного свободного слота
var DefaultClosingTime = Clock(23, 0)

// Slot один слот начала брони
type Slot struct {
	Time      TimeOfDay
	Available bool
}

// SlotList упорядоченный по времени список слотов на одну дату и столик
type SlotList []Slot

// NewSlotList строит SlotList из ответа сервиса.
// Время должно строго возрастать с одинаковым шагом.
func NewSlotList(raw []model.TimeSlot) (SlotList, error) {
	list := make(SlotList, 0, len(raw))

	for i, r := range raw {
		t, err := ParseTimeOfDay(r.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d: %v", ErrMalformedSlots, i, err)
		}

		if i > 0 {
			prev := list[i-1].Time
			if t <= prev {
				return nil, fmt.Errorf("%w: %s after %s", ErrMalformedSlots, t, prev)
			}
			if i > 1 && t-prev != list[1].Time-list[0].Time {
				return nil, fmt.Errorf("%w: uneven step at %s", ErrMalformedSlots, t)
			}
		}

		list = append(list, Slot{Time: t, Available: r.Available})
	}

	return list, nil
}

// Index возвращает позицию слота с указанным временем
func (l SlotList) Index(t TimeOfDay) (int, bool) {
	i := sort.Search(len(l), func(i int) bool { return l[i].Time >= t })
	if i < len(l) && l[i].Time == t {
		return i, true
	}
	return 0, false
}

// AllAvailable проверяет, что все слоты в полуинтервале [from, to) свободны
func (l SlotList) AllAvailable(from, to TimeOfDay) bool {
	for _, s := range l {
		if s.Time >= from && s.Time < to && !s.Available {
			return false
		}
	}
	return true
}

// ClosingTime граница окончания обслуживания: последний свободный слот
// (ищем с конца) плюс ширина слота
func ClosingTime(l SlotList) TimeOfDay {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Available {
			return (l[i].Time + SlotWidth).Wrap()
		}
	}
	return DefaultClosingTime
}

// SlotVisibility состояние отрисовки слота без учёта выбора
type SlotVisibility struct {
	Clickable         bool
	VisuallyAvailable bool
}

// Visibility слот визуально доступен, если свободен он сам или предыдущий.
// Бронь, заканчивающаяся ровно на начале слота N, делает N допустимым концом
// интервала, даже если начало N занято.
func Visibility(l SlotList, index int) SlotVisibility {
	if index < 0 || index >= len(l) {
		return SlotVisibility{}
	}

	visible := l[index].Available
	if !visible && index > 0 {
		visible = l[index-1].Available
	}

	return SlotVisibility{Clickable: visible, VisuallyAvailable: visible}
}

// HasVisible есть ли хотя бы один визуально доступный слот
func (l SlotList) HasVisible() bool {
	for i := range l {
		if Visibility(l, i).VisuallyAvailable {
			return true
		}
	}
	return false
}
