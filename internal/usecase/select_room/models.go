package select_room

import "github.com/m04kA/SMC-RoomBookingService/internal/domain"

// Request модель запроса переключения комнаты в кандидатском выборе
type Request struct {
	UserID  string      // ID пользователя (для логирования)
	Tier    domain.Tier // тариф пользователя
	Current []string    // ID выбранных комнат
	RoomID  string      // переключаемая комната
}

// Response модель ответа с обновлённым выбором комнат
type Response struct {
	RoomIDs  []string // новый выбор
	Selected bool     // комната добавлена (true) или снята (false)
}
