package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrInvalidRoom возвращается при попытке сохранить некорректную запись
	ErrInvalidRoom = errors.New("room.repository: invalid room")
)
