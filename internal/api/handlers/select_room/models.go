package select_room

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	selectRoom "github.com/m04kA/SMC-RoomBookingService/internal/usecase/select_room"
)

// SelectRoomRequest запрос переключения комнаты
type SelectRoomRequest struct {
	Current []string `json:"current"`
	RoomID  string   `json:"roomId"`
}

// SelectRoomResponse ответ с обновлённым выбором комнат
type SelectRoomResponse struct {
	RoomIDs  []string `json:"roomIds"`
	Selected bool     `json:"selected"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectRoomRequest) ToUseCaseRequest(userID string, tier domain.Tier) selectRoom.Request {
	return selectRoom.Request{
		UserID:  userID,
		Tier:    tier,
		Current: r.Current,
		RoomID:  r.RoomID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *selectRoom.Response) *SelectRoomResponse {
	return &SelectRoomResponse{
		RoomIDs:  resp.RoomIDs,
		Selected: resp.Selected,
	}
}
