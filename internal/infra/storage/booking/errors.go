package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrInvalidBooking возвращается при попытке сохранить некорректную запись
	ErrInvalidBooking = errors.New("booking.repository: invalid booking")
)
