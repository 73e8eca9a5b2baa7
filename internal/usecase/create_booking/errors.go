package create_booking

import "errors"

var (
	// ErrEmptySelection возвращается, когда не выбран ни один слот или ни одна комната
	ErrEmptySelection = errors.New("create_booking: selection is empty")

	// ErrNonContiguousSelection возвращается, когда слоты выбора не образуют
	// непрерывную цепочку каталога
	ErrNonContiguousSelection = errors.New("create_booking: slots must be consecutive")

	// ErrHourCapExceeded возвращается, когда выбор превышает лимит часов тарифа
	ErrHourCapExceeded = errors.New("create_booking: hour cap exceeded for this tier")

	// ErrRoomCapExceeded возвращается, когда выбор превышает лимит комнат тарифа
	ErrRoomCapExceeded = errors.New("create_booking: room cap exceeded for this tier")

	// ErrRoomUnavailable возвращается, когда хотя бы одна комната занята,
	// закрыта на обслуживание или не существует
	ErrRoomUnavailable = errors.New("create_booking: room is unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_booking: internal error")
)
