package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// Service сервис чтения и отмены бронирований.
// Создание бронирований живёт в usecase create_booking: там движок
// проверок выбора, здесь только доступ к готовым записям.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только свои бронирования, админ видит любые.
func (s *Service) GetByID(ctx context.Context, id, userID string, tier domain.Tier) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID && domain.NormalizeTier(tier) != domain.TierAdmin {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя,
// опционально фильтруя по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetByDate получает все бронирования на календарный день (админ-консоль)
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d bookings for date=%s", len(bookings), date.Format(domain.DateFormat))
	return models.FromDomainBookingList(bookings), nil
}

// Override отменяет бронирование от имени администратора: запись удаляется
// из хранилища целиком, частичной отмены по комнатам нет. После удаления
// бывшие слоты бронирования снова доступны.
func (s *Service) Override(ctx context.Context, id string, tier domain.Tier) error {
	if domain.NormalizeTier(tier) != domain.TierAdmin {
		s.logger.Warn("Override: access denied for tier=%s, booking id=%s", tier, id)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Override: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Override: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Override - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Override: booking id=%s removed", id)
	return nil
}
