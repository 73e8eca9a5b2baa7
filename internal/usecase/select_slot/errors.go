package select_slot

import "errors"

var (
	// ErrNonContiguousSelection возвращается, когда кандидат не является
	// строгим преемником последнего выбранного слота
	ErrNonContiguousSelection = errors.New("select_slot: please select consecutive time slots")

	// ErrHourCapExceeded возвращается, когда выбор превышает лимит часов тарифа
	ErrHourCapExceeded = errors.New("select_slot: hour cap exceeded for this tier")

	// ErrUnknownSlot возвращается, когда метка слота отсутствует в каталоге
	ErrUnknownSlot = errors.New("select_slot: slot is not in the catalog")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_slot: invalid input data")
)
