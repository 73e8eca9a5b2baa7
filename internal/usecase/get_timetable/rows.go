package get_timetable

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// entry разрешённое содержимое одной ячейки до объединения
type entry struct {
	status  CellStatus
	booking *domain.Booking // nil для available и maintenance
}

// resolveEntry определяет содержимое ячейки комната × слот.
// Первое подходящее неотменённое бронирование выигрывает; далее
// обслуживание комнаты; иначе ячейка свободна. Покрытие считается по
// точной метке либо по разложению legacy-диапазона на слоты каталога,
// нестрогая правая граница детектора конфликтов в сетку не попадает.
func resolveEntry(room *domain.Room, date time.Time, slot domain.TimeSlotLabel, catalog domain.SlotCatalog, bookings []*domain.Booking) entry {
	for _, booking := range bookings {
		if booking.Occupies(room.ID, date, slot, catalog) {
			return entry{status: cellStatusOf(booking.Status), booking: booking}
		}
	}

	if !room.IsBookable() {
		return entry{status: CellMaintenance}
	}

	return entry{status: CellAvailable}
}

func cellStatusOf(status domain.BookingStatus) CellStatus {
	if status == domain.StatusPending {
		return CellPending
	}
	return CellBooked
}

// cellTopic возвращает тему ячейки; при отсутствии темы у бронирования
// подставляется тема по умолчанию
func cellTopic(booking *domain.Booking) string {
	if booking.Topic != nil && *booking.Topic != "" {
		return *booking.Topic
	}
	return domain.DefaultTopic
}
