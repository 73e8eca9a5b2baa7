package get_timetable

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// RoomProvider провайдер списка комнат
type RoomProvider interface {
	List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error)
}

// BookingProvider провайдер бронирований за дату
type BookingProvider interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
