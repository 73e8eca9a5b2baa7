package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomstore "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

// UseCase use case для подтверждения бронирования
type UseCase struct {
	catalog     domain.SlotCatalog
	policies    domain.PolicyTable
	bookingRepo BookingRepository
	rooms       RoomProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog domain.SlotCatalog,
	policies domain.PolicyTable,
	bookingRepo BookingRepository,
	rooms RoomProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:     catalog,
		policies:    policies,
		bookingRepo: bookingRepo,
		rooms:       rooms,
		logger:      logger,
	}
}

// Execute подтверждает кандидатский выбор и создаёт бронирование.
// Между проверкой доступности и записью нет блокировки: при гонке двух
// одинаковых запросов возможна двойная запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, date=%s, slots=%d, rooms=%d",
		req.UserID, req.Date.Format(domain.DateFormat), len(req.Selection), len(req.RoomIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем выбор против каталога и политики тарифа
	policy := uc.policies.PolicyFor(req.Tier)
	if err := validateSelection(req, uc.catalog, policy); err != nil {
		uc.logger.Warn("CreateBooking: selection rejected: user=%s, err=%v", req.UserID, err)
		return nil, err
	}

	// 3. Собираем комнаты: несуществующие и закрытые на обслуживание недоступны
	rooms := make([]*domain.Room, 0, len(req.RoomIDs))
	for _, roomID := range req.RoomIDs {
		room, err := uc.rooms.GetByID(ctx, roomID)
		if err != nil {
			if errors.Is(err, roomstore.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%s not found", roomID)
				return nil, fmt.Errorf("%w: room %s does not exist", ErrRoomUnavailable, roomID)
			}
			uc.logger.Error("CreateBooking: failed to get room id=%s: %v", roomID, err)
			return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
		if !room.IsBookable() {
			uc.logger.Warn("CreateBooking: room id=%s is under maintenance", roomID)
			return nil, fmt.Errorf("%w: room %s is under maintenance", ErrRoomUnavailable, roomID)
		}
		rooms = append(rooms, room)
	}

	// 4. Повторная проверка конфликтов по каждой паре комната × слот
	stored, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	for _, room := range rooms {
		for _, slot := range req.Selection {
			if domain.SlotTaken(room.ID, req.Date, slot, uc.catalog, stored) {
				uc.logger.Info("CreateBooking: conflict: room=%s, date=%s, slot=%s",
					room.ID, req.Date.Format(domain.DateFormat), slot)
				return nil, fmt.Errorf("%w: room %s is already booked at %s", ErrRoomUnavailable, room.ID, slot)
			}
		}
	}

	// 5. Сохраняем бронирование с объединённой меткой диапазона
	roomNames := make([]string, 0, len(rooms))
	for _, room := range rooms {
		roomNames = append(roomNames, room.Name)
	}

	booking := &domain.Booking{
		UserID:    req.UserID,
		UserName:  req.UserName,
		RoomIDs:   req.RoomIDs,
		RoomNames: roomNames,
		Date:      req.Date,
		TimeSlot:  domain.MergedLabel(req.Selection),
		Topic:     req.Topic,
		Notes:     req.Notes,
		Status:    domain.StatusConfirmed,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	totalPrice := policy.TotalPrice(rooms, len(req.Selection))

	uc.logger.Info("CreateBooking: created: id=%s, user=%s, slot=%s, price=%.2f",
		created.ID, created.UserID, created.TimeSlot, totalPrice)

	return &Response{Booking: created, TotalPrice: totalPrice}, nil
}
