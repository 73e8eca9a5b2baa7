package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest запрос подтверждения бронирования
type CreateBookingRequest struct {
	Date     string   `json:"date"` // YYYY-MM-DD
	Slots    []string `json:"slots"`
	RoomIDs  []string `json:"roomIds"`
	UserName string   `json:"userName"`
	Topic    *string  `json:"topic,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// CreateBookingResponse ответ с созданным бронированием и стоимостью
type CreateBookingResponse struct {
	Booking    *models.BookingResponse `json:"booking"`
	TotalPrice float64                 `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты)
func (r *CreateBookingRequest) ToUseCaseRequest(userID string, tier domain.Tier) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	selection := make([]domain.TimeSlotLabel, 0, len(r.Slots))
	for _, label := range r.Slots {
		selection = append(selection, domain.TimeSlotLabel(label))
	}

	return &createBooking.Request{
		UserID:    userID,
		UserName:  r.UserName,
		Tier:      tier,
		Date:      date,
		Selection: selection,
		RoomIDs:   r.RoomIDs,
		Topic:     r.Topic,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:    models.FromDomainBooking(resp.Booking),
		TotalPrice: resp.TotalPrice,
	}
}
