package select_slot

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	selectSlot "github.com/m04kA/SMC-RoomBookingService/internal/usecase/select_slot"
)

// SelectSlotRequest запрос переключения слота
type SelectSlotRequest struct {
	Current   []string `json:"current"`
	Candidate string   `json:"candidate"`
}

// SelectSlotResponse ответ с обновлённым выбором
type SelectSlotResponse struct {
	Selection  []string `json:"selection"`
	RangeStart string   `json:"rangeStart,omitempty"`
	RangeEnd   string   `json:"rangeEnd,omitempty"`
	Hours      int      `json:"hours"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectSlotRequest) ToUseCaseRequest(userID string, tier domain.Tier) selectSlot.Request {
	current := make([]domain.TimeSlotLabel, 0, len(r.Current))
	for _, label := range r.Current {
		current = append(current, domain.TimeSlotLabel(label))
	}

	return selectSlot.Request{
		UserID:    userID,
		Tier:      tier,
		Current:   current,
		Candidate: domain.TimeSlotLabel(r.Candidate),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *selectSlot.Response) *SelectSlotResponse {
	selection := make([]string, 0, len(resp.Selection))
	for _, label := range resp.Selection {
		selection = append(selection, label.String())
	}

	return &SelectSlotResponse{
		Selection:  selection,
		RangeStart: resp.RangeStart,
		RangeEnd:   resp.RangeEnd,
		Hours:      resp.Hours,
	}
}
