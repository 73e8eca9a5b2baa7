package check_availability

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
)

// SlotAvailabilityResponse доступность одного слота
type SlotAvailabilityResponse struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
}

// AvailabilityResponse доступность комнаты на дату
type AvailabilityResponse struct {
	RoomID string                     `json:"roomId"`
	Date   string                     `json:"date"`
	Slots  []SlotAvailabilityResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotAvailabilityResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotAvailabilityResponse{
			Slot:      s.Slot.String(),
			Available: s.Available,
		})
	}

	return &AvailabilityResponse{
		RoomID: resp.RoomID,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}
