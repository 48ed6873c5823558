package selector

// Границы размера компании
const (
	MinPartySize = 1
	MaxPartySize = 12
)

// TableForPartySize подбирает столик по размеру компании:
// 1-2 -> 1, 3-4 -> 2, 5-6 -> 3, 7-8 -> 4, 9-10 -> 5, 11-12 -> 6
func TableForPartySize(partySize int) (int, error) {
	if err := ValidatePartySize(partySize); err != nil {
		return 0, err
	}
	return (partySize + 1) / 2, nil
}

// ValidatePartySize проверяет размер компании до загрузки слотов
func ValidatePartySize(partySize int) error {
	switch {
	case partySize > MaxPartySize:
		return &PartySizeError{Size: partySize, Guidance: MsgPartyTooLarge}
	case partySize < MinPartySize:
		return &PartySizeError{Size: partySize, Guidance: MsgPartyTooSmall}
	}
	return nil
}
