package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomstore "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

type UseCase struct {
	catalog  domain.SlotCatalog
	rooms    RoomProvider
	bookings BookingProvider
	logger   Logger
}

func NewUseCase(catalog domain.SlotCatalog, rooms RoomProvider, bookings BookingProvider, logger Logger) *UseCase {
	return &UseCase{
		catalog:  catalog,
		rooms:    rooms,
		bookings: bookings,
		logger:   logger,
	}
}

// Execute проверяет доступность комнаты на дату: один слот или весь каталог.
// Неизвестная комната трактуется как недоступная, а не как ошибка.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.RoomID == "" {
		return nil, fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	slots := uc.catalog
	if req.Slot != nil {
		if !uc.catalog.Contains(*req.Slot) {
			return nil, fmt.Errorf("%w: slot %q is not in the catalog", ErrInvalidInput, *req.Slot)
		}
		slots = domain.SlotCatalog{*req.Slot}
	}

	// 2. Неизвестная или закрытая на обслуживание комната недоступна целиком
	room, err := uc.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomstore.ErrRoomNotFound) {
			uc.logger.Info("UseCase.Execute - unknown room treated as unavailable: roomID=%s", req.RoomID)
			return allUnavailable(req.RoomID, req.Date, slots), nil
		}
		uc.logger.Error("UseCase.Execute - failed to get room: roomID=%s, err=%v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	if !room.IsBookable() {
		return allUnavailable(req.RoomID, req.Date, slots), nil
	}

	// 3. Проверяем слоты по бронированиям за дату
	stored, err := uc.bookings.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("UseCase.Execute - failed to get bookings: date=%s, err=%v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	result := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		result = append(result, SlotAvailability{
			Slot:      slot,
			Available: !domain.SlotTaken(req.RoomID, req.Date, slot, uc.catalog, stored),
		})
	}

	return &Response{RoomID: req.RoomID, Date: req.Date, Slots: result}, nil
}

func allUnavailable(roomID string, date time.Time, slots domain.SlotCatalog) *Response {
	result := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		result = append(result, SlotAvailability{Slot: slot, Available: false})
	}
	return &Response{RoomID: roomID, Date: date, Slots: result}
}
