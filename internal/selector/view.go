package selector

import "fmt"

// Подписи кнопки подтверждения
const (
	ConfirmLabel    = "Book Now"
	ProcessingLabel = "Processing..."
)

// SlotView состояние одного слота для отрисовки
type SlotView struct {
	Time              TimeOfDay
	VisuallyAvailable bool
	Clickable         bool
	Active            bool // выбранная граница интервала
	InRange           bool
}

// View снимок селектора для отрисовки, не зависит от транспорта
type View struct {
	Phase          Phase
	Slots          []SlotView
	HasAvailable   bool
	ClosingTime    TimeOfDay
	Summary        string
	Error          string
	ActionsVisible bool
	ConfirmEnabled bool
	ConfirmLabel   string
}

// View строит снимок текущего состояния
func (s *Selector) View() View {
	v := View{
		Phase:          s.phase,
		Slots:          make([]SlotView, len(s.slots)),
		HasAvailable:   s.slots.HasVisible(),
		ClosingTime:    s.closing,
		Error:          s.inlineErr,
		ConfirmEnabled: s.ConfirmEnabled(),
		ConfirmLabel:   ConfirmLabel,
	}
	if s.submitting {
		v.ConfirmLabel = ProcessingLabel
	}

	for i, slot := range s.slots {
		vis := Visibility(s.slots, i)
		sv := SlotView{
			Time:              slot.Time,
			VisuallyAvailable: vis.VisuallyAvailable,
			Clickable:         vis.Clickable,
		}

		switch s.phase {
		case PhaseStartOnly:
			sv.Clickable = s.selectable[i]
			sv.Active = slot.Time == s.start
		case PhaseRange:
			sv.Active = slot.Time == s.start || slot.Time == s.end
			sv.InRange = slot.Time >= s.start && slot.Time <= s.end
		}
		if s.submitting {
			sv.Clickable = false
		}

		v.Slots[i] = sv
	}

	if s.phase == PhaseRange {
		v.Summary = fmt.Sprintf("Confirm booking from %s to %s?", s.start, s.end)
	}
	v.ActionsVisible = s.phase == PhaseRange || s.inlineErr != ""

	return v
}
