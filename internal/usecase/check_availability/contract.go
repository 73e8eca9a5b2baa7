package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// RoomProvider провайдер комнат
type RoomProvider interface {
	GetByID(ctx context.Context, roomID string) (*domain.Room, error)
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
