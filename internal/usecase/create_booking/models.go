package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модель запроса подтверждения бронирования
type Request struct {
	UserID    string
	UserName  string
	Tier      domain.Tier
	Date      time.Time
	Selection []domain.TimeSlotLabel // выбранные слоты в порядке каталога
	RoomIDs   []string               // выбранные комнаты
	Topic     *string
	Notes     *string
}

// Response модель ответа с созданным бронированием и стоимостью
type Response struct {
	Booking    *domain.Booking
	TotalPrice float64 // 0 для бесплатных тарифов
}
