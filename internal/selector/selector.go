package selector

// Phase фаза выбора интервала
type Phase int

const (
	PhaseEmpty     Phase = iota // ничего не выбрано
	PhaseStartOnly              // выбрано начало
	PhaseRange                  // выбраны начало и конец
)

func (p Phase) String() string {
	switch p {
	case PhaseStartOnly:
		return "start_only"
	case PhaseRange:
		return "range"
	default:
		return "empty"
	}
}

// Selector выбирает непрерывный полуинтервал [start, end) из свободных слотов
// одного столика на одну дату. Экземпляр принадлежит одной попытке брони и
// не потокобезопасен: синхронизация на стороне владельца.
type Selector struct {
	slots   SlotList
	closing TimeOfDay

	phase      Phase
	start      TimeOfDay
	end        TimeOfDay
	selectable []bool // для второго клика, считается при входе в PhaseStartOnly

	inlineErr  string
	submitting bool
}

// New создаёт пустой селектор
func New() *Selector {
	return &Selector{closing: DefaultClosingTime}
}

// Load заменяет список слотов и сбрасывает выбор
func (s *Selector) Load(slots SlotList) {
	s.slots = slots
	s.closing = ClosingTime(slots)
	s.submitting = false
	s.Reset()
}

// Reset возвращает селектор в PhaseEmpty
func (s *Selector) Reset() {
	s.phase = PhaseEmpty
	s.start = 0
	s.end = 0
	s.selectable = nil
	s.inlineErr = ""
}

func (s *Selector) Phase() Phase             { return s.phase }
func (s *Selector) Slots() SlotList          { return s.slots }
func (s *Selector) ClosingTime() TimeOfDay   { return s.closing }
func (s *Selector) InlineError() string      { return s.inlineErr }
func (s *Selector) Submitting() bool         { return s.submitting }
func (s *Selector) ConfirmEnabled() bool     { return s.phase == PhaseRange && !s.submitting }
func (s *Selector) Start() (TimeOfDay, bool) { return s.start, s.phase != PhaseEmpty }

// Range возвращает выбранный интервал, если он полный
func (s *Selector) Range() (start, end TimeOfDay, ok bool) {
	if s.phase != PhaseRange {
		return 0, 0, false
	}
	return s.start, s.end, true
}

// SelectEndpoint обрабатывает клик по слоту
func (s *Selector) SelectEndpoint(t TimeOfDay) error {
	if s.submitting {
		return ErrSubmissionInProgress
	}

	idx, ok := s.slots.Index(t)
	if !ok {
		return ErrUnknownSlot
	}
	slot := s.slots[idx]

	switch s.phase {
	case PhaseEmpty:
		if slot.Available {
			s.begin(t)
		}

	case PhaseStartOnly:
		switch {
		case t == s.start:
			// интервал нулевой длины недопустим - снимаем выбор
			s.Reset()
		case t < s.start:
			s.Reset()
			if slot.Available {
				s.begin(t)
			}
		default:
			if !s.slots.AllAvailable(s.start, t) {
				s.inlineErr = MsgUnavailableInRange
				return ErrUnavailableInRange
			}
			if !s.selectable[idx] {
				return ErrSlotNotSelectable
			}
			s.end = t
			s.phase = PhaseRange
			s.inlineErr = ""
		}

	case PhaseRange:
		endpoint := t == s.start || t == s.end
		s.Reset()
		if !endpoint && slot.Available {
			s.begin(t)
		}
	}

	return nil
}

func (s *Selector) begin(start TimeOfDay) {
	s.phase = PhaseStartOnly
	s.start = start
	s.end = 0
	s.inlineErr = ""
	s.selectable = s.Selectability(start)
}

// Selectability считает, какие слоты можно выбрать концом интервала при
// выбранном начале start. Вся арифметика в минутах; слоты раньше start
// переносятся на следующие сутки, только если граница максимальной
// длительности или время закрытия переходит через полночь.
func (s *Selector) Selectability(start TimeOfDay) []bool {
	out := make([]bool, len(s.slots))

	maxEnd := start + MaxDuration
	closing := s.closing
	if closing <= start {
		closing += MinutesPerDay
	}
	rollover := maxEnd >= MinutesPerDay || closing >= MinutesPerDay

	for i, slot := range s.slots {
		if !Visibility(s.slots, i).VisuallyAvailable {
			continue
		}
		if slot.Time == start {
			out[i] = true
			continue
		}

		at := slot.Time
		if at < start && rollover {
			at += MinutesPerDay
		}

		ok := at <= maxEnd && at < closing
		if slot.Time > start && !s.slots.AllAvailable(start, slot.Time) {
			ok = false
		}
		out[i] = ok
	}

	return out
}

// BeginSubmit блокирует подтверждение на время запроса
func (s *Selector) BeginSubmit() error {
	if s.phase != PhaseRange {
		return ErrNoRange
	}
	if s.submitting {
		return ErrSubmissionInProgress
	}
	s.submitting = true
	s.inlineErr = ""
	return nil
}

// FailSubmit снимает блокировку и показывает ошибку сервиса.
// Интервал сохраняется, чтобы можно было повторить.
func (s *Selector) FailSubmit(message string) {
	s.submitting = false
	s.inlineErr = message
}

// CompleteSubmit завершает успешное подтверждение
func (s *Selector) CompleteSubmit() {
	s.submitting = false
	s.Reset()
}
