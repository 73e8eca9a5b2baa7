package check_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модель запроса проверки доступности комнаты
type Request struct {
	RoomID string
	Date   time.Time
	Slot   *domain.TimeSlotLabel // nil = проверить все слоты каталога
}

// SlotAvailability доступность одного слота
type SlotAvailability struct {
	Slot      domain.TimeSlotLabel
	Available bool
}

// Response модель ответа с доступностью по слотам
type Response struct {
	RoomID string
	Date   time.Time
	Slots  []SlotAvailability
}
