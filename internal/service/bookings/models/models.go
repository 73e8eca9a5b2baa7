package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string
	Status *string
}

// Response модели

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	UserName  string   `json:"userName"`
	RoomIDs   []string `json:"roomIds"`
	RoomNames []string `json:"roomNames"`
	Date      string   `json:"date"`
	TimeSlot  string   `json:"timeSlot"`
	Topic     *string  `json:"topic,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		RoomIDs:   b.RoomIDs,
		RoomNames: b.RoomNames,
		Date:      b.Date.Format(domain.DateFormat),
		TimeSlot:  b.TimeSlot.String(),
		Topic:     b.Topic,
		Notes:     b.Notes,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	if !domain.ValidBookingStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(status), nil
}
