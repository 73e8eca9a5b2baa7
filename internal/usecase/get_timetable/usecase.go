package get_timetable

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
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

// Execute строит расписание на дату: строка на каждый слот каталога,
// колонка на каждую комнату, мультикомнатные бронирования объединены.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Комнаты в порядке каталога комнат
	rooms, err := uc.rooms.List(ctx, domain.RoomsFilter{})
	if err != nil {
		uc.logger.Error("GetTimetable: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 3. Бронирования за дату в порядке регистрации
	bookings, err := uc.bookings.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetTimetable: failed to get bookings: date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	columns := make([]Column, 0, len(rooms))
	for _, room := range rooms {
		columns = append(columns, Column{RoomID: room.ID, RoomName: room.Name})
	}

	rows := make([]Row, 0, len(uc.catalog))
	for _, slot := range uc.catalog {
		rows = append(rows, buildRow(slot, req.Date, uc.catalog, rooms, bookings))
	}

	uc.logger.Info("GetTimetable: date=%s, rooms=%d, bookings=%d", req.Date.Format(domain.DateFormat), len(rooms), len(bookings))

	return &Response{Date: req.Date, Columns: columns, Rows: rows}, nil
}
