package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

// Service сервис каталога комнат (админ-консоль + витрина)
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List возвращает комнаты по фильтру поиска/типа
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms (search=%q)", len(rooms), req.Search)
	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoom(room), nil
}

// Create создает новую комнату
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	room := req.ToDomainRoom()
	if room.Status == "" {
		room.Status = domain.RoomStatusAvailable
	}
	if err := validateRoom(room); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room created id=%s name=%q", created.ID, created.Name)
	return models.FromDomainRoom(created), nil
}

// Update обновляет данные комнаты
func (s *Service) Update(ctx context.Context, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	room := req.ToDomainRoom()
	if err := validateRoom(room); err != nil {
		s.logger.Warn("Update: validation failed for room id=%s: %v", req.ID, err)
		return nil, err
	}

	updated, err := s.roomRepo.Update(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%s not found", req.ID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: room updated id=%s", updated.ID)
	return models.FromDomainRoom(updated), nil
}

// Delete удаляет комнату из каталога
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Delete: room id=%s not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for room id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: room deleted id=%s", id)
	return nil
}

// validateRoom повторяет проверки формы админ-консоли
func validateRoom(room *domain.Room) error {
	if room.Name == "" {
		return fmt.Errorf("%w: room name is required", ErrInvalidInput)
	}
	if room.Type == "" {
		return fmt.Errorf("%w: room type is required", ErrInvalidInput)
	}
	if room.Capacity < domain.MinRoomCapacity || room.Capacity > domain.MaxRoomCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinRoomCapacity, domain.MaxRoomCapacity)
	}
	if room.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if !domain.ValidRoomStatus(string(room.Status)) {
		return fmt.Errorf("%w: unknown room status %q", ErrInvalidInput, room.Status)
	}
	return nil
}
