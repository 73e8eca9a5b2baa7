package select_slot

import "github.com/m04kA/SMC-RoomBookingService/internal/domain"

// Request модель запроса переключения слота в кандидатском выборе
type Request struct {
	UserID    string                 // ID пользователя (для логирования)
	Tier      domain.Tier            // тариф пользователя
	Current   []domain.TimeSlotLabel // текущий выбор в порядке каталога
	Candidate domain.TimeSlotLabel   // переключаемый слот
}

// Response модель ответа с обновлённым выбором
type Response struct {
	Selection  []domain.TimeSlotLabel // новый выбор
	RangeStart string                 // начало отображаемого диапазона
	RangeEnd   string                 // конец отображаемого диапазона
	Hours      int                    // количество выбранных слотов
}
