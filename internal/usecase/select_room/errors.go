package select_room

import "errors"

var (
	// ErrRoomCapExceeded возвращается, когда выбор превышает лимит комнат тарифа
	ErrRoomCapExceeded = errors.New("select_room: room cap exceeded for this tier")

	// ErrRoomNotFound возвращается, когда комната не существует
	ErrRoomNotFound = errors.New("select_room: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_room: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("select_room: internal error")
)
