package get_timetable

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubRooms struct {
	rooms []*domain.Room
}

func (s stubRooms) List(_ context.Context, _ domain.RoomsFilter) ([]*domain.Room, error) {
	return s.rooms, nil
}

type stubBookings struct {
	bookings []*domain.Booking
}

func (s stubBookings) GetByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return s.bookings, nil
}

var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, rooms []*domain.Room, bookings []*domain.Booking) *UseCase {
	t.Helper()
	catalog, err := domain.BuildCatalog("09:00", "17:00", 60)
	require.NoError(t, err)
	return NewUseCase(catalog, stubRooms{rooms: rooms}, stubBookings{bookings: bookings}, nopLogger{})
}

func threeRooms() []*domain.Room {
	return []*domain.Room{
		{ID: "r1", Name: "Conference Room A", Status: domain.RoomStatusAvailable},
		{ID: "r2", Name: "Meeting Room B", Status: domain.RoomStatusAvailable},
		{ID: "r3", Name: "Boardroom C", Status: domain.RoomStatusAvailable},
	}
}

func rowOf(t *testing.T, resp *Response, slot domain.TimeSlotLabel) Row {
	t.Helper()
	for _, row := range resp.Rows {
		if row.Slot == slot {
			return row
		}
	}
	t.Fatalf("row %q not in response", slot)
	return Row{}
}

func TestExecute_EmptyGrid(t *testing.T) {
	uc := newTestUseCase(t, threeRooms(), nil)

	resp, err := uc.Execute(context.Background(), Request{Date: testDate})

	require.NoError(t, err)
	assert.Len(t, resp.Columns, 3)
	require.Len(t, resp.Rows, 8)
	for _, row := range resp.Rows {
		require.Len(t, row.Cells, 3)
		for _, cell := range row.Cells {
			assert.Equal(t, CellAvailable, cell.Status)
			assert.Equal(t, 1, cell.ColSpan)
		}
	}
}

func TestExecute_SingleRoomBooking(t *testing.T) {
	uc := newTestUseCase(t, threeRooms(), []*domain.Booking{
		{
			ID: "b1", UserID: "u1", UserName: "Alice",
			RoomIDs: []string{"r2"}, Date: testDate,
			TimeSlot: "10:00 - 11:00", Status: domain.StatusConfirmed,
			Topic: ptr.Ptr("Sprint Review"),
		},
	})

	resp, err := uc.Execute(context.Background(), Request{Date: testDate})
	require.NoError(t, err)

	row := rowOf(t, resp, "10:00 - 11:00")
	require.Len(t, row.Cells, 3)
	assert.Equal(t, CellAvailable, row.Cells[0].Status)
	assert.Equal(t, CellBooked, row.Cells[1].Status)
	assert.Equal(t, "b1", row.Cells[1].BookingID)
	assert.Equal(t, "Sprint Review", row.Cells[1].Topic)
	assert.Equal(t, "Alice", row.Cells[1].UserName)
	assert.Equal(t, 1, row.Cells[1].ColSpan)
	assert.Equal(t, CellAvailable, row.Cells[2].Status)
}

func TestExecute_MultiRoomBookingMerged(t *testing.T) {
	// Бронирование на r1+r3 объединяется в одну ячейку; r2 независима
	uc := newTestUseCase(t, threeRooms(), []*domain.Booking{
		{
			ID: "b1", UserID: "u1", UserName: "Alice",
			RoomIDs: []string{"r3", "r1"}, Date: testDate,
			TimeSlot: "10:00 - 11:00", Status: domain.StatusConfirmed,
		},
	})

	resp, err := uc.Execute(context.Background(), Request{Date: testDate})
	require.NoError(t, err)

	row := rowOf(t, resp, "10:00 - 11:00")
	// Объединённая ячейка выходит в первой колонке группы, r3 пропущена
	require.Len(t, row.Cells, 2)
	assert.Equal(t, "r1", row.Cells[0].RoomID)
	assert.Equal(t, 2, row.Cells[0].ColSpan)
	assert.Equal(t, CellBooked, row.Cells[0].Status)
	assert.Equal(t, "b1", row.Cells[0].BookingID)
	assert.Equal(t, domain.DefaultTopic, row.Cells[0].Topic)

	assert.Equal(t, "r2", row.Cells[1].RoomID)
	assert.Equal(t, CellAvailable, row.Cells[1].Status)
	assert.Equal(t, 1, row.Cells[1].ColSpan)
}

func TestExecute_PendingStatusAndLegacyRange(t *testing.T) {
	// Старое бронирование хранит диапазон одной меткой и занимает ровно
	// те строки, на которые диапазон раскладывается по каталогу
	uc := newTestUseCase(t, threeRooms(), []*domain.Booking{
		{
			ID: "b1", UserID: "u1", UserName: "Bob",
			RoomIDs: []string{"r1", "r3"}, Date: testDate,
			TimeSlot: "14:00 - 16:00", Status: domain.StatusPending,
		},
	})

	resp, err := uc.Execute(context.Background(), Request{Date: testDate})
	require.NoError(t, err)

	for _, slot := range []domain.TimeSlotLabel{"14:00 - 15:00", "15:00 - 16:00"} {
		row := rowOf(t, resp, slot)
		require.Len(t, row.Cells, 2, "slot %s", slot)
		assert.Equal(t, CellPending, row.Cells[0].Status)
		assert.Equal(t, 2, row.Cells[0].ColSpan)
	}

	// Строки вокруг диапазона не затронуты, включая граничную 16:00 - 17:00
	for _, slot := range []domain.TimeSlotLabel{"13:00 - 14:00", "16:00 - 17:00"} {
		row := rowOf(t, resp, slot)
		require.Len(t, row.Cells, 3, "slot %s", slot)
		for _, cell := range row.Cells {
			assert.Equal(t, CellAvailable, cell.Status, "slot %s, room %s", slot, cell.RoomID)
			assert.Equal(t, 1, cell.ColSpan)
		}
	}
}

func TestExecute_MaintenanceIndependent(t *testing.T) {
	rooms := threeRooms()
	rooms[2].Status = domain.RoomStatusMaintenance

	uc := newTestUseCase(t, rooms, nil)

	resp, err := uc.Execute(context.Background(), Request{Date: testDate})
	require.NoError(t, err)

	for _, row := range resp.Rows {
		require.Len(t, row.Cells, 3)
		assert.Equal(t, CellMaintenance, row.Cells[2].Status)
		assert.Equal(t, 1, row.Cells[2].ColSpan)
		assert.Empty(t, row.Cells[2].BookingID)
	}
}

func TestExecute_CancelledBookingInvisible(t *testing.T) {
	uc := newTestUseCase(t, threeRooms(), []*domain.Booking{
		{
			ID: "b1", UserID: "u1", RoomIDs: []string{"r1"},
			Date: testDate, TimeSlot: "10:00 - 11:00", Status: domain.StatusCancelled,
		},
	})

	resp, err := uc.Execute(context.Background(), Request{Date: testDate})
	require.NoError(t, err)

	row := rowOf(t, resp, "10:00 - 11:00")
	assert.Equal(t, CellAvailable, row.Cells[0].Status)
}

func TestExecute_FirstRegisteredBookingWinsColumn(t *testing.T) {
	// Две записи претендуют на r2 в одном слоте: выигрывает первая
	uc := newTestUseCase(t, threeRooms(), []*domain.Booking{
		{
			ID: "b1", UserID: "u1", UserName: "Alice",
			RoomIDs: []string{"r1", "r2"}, Date: testDate,
			TimeSlot: "10:00 - 11:00", Status: domain.StatusConfirmed,
		},
		{
			ID: "b2", UserID: "u2", UserName: "Bob",
			RoomIDs: []string{"r2", "r3"}, Date: testDate,
			TimeSlot: "10:00 - 11:00", Status: domain.StatusConfirmed,
		},
	})

	resp, err := uc.Execute(context.Background(), Request{Date: testDate})
	require.NoError(t, err)

	row := rowOf(t, resp, "10:00 - 11:00")
	// r1+r2 объединяются под b1; r3 остаётся одиночной ячейкой b2
	require.Len(t, row.Cells, 2)
	assert.Equal(t, "r1", row.Cells[0].RoomID)
	assert.Equal(t, 2, row.Cells[0].ColSpan)
	assert.Equal(t, "b1", row.Cells[0].BookingID)

	assert.Equal(t, "r3", row.Cells[1].RoomID)
	assert.Equal(t, 1, row.Cells[1].ColSpan)
	assert.Equal(t, "b2", row.Cells[1].BookingID)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := newTestUseCase(t, threeRooms(), nil)

	_, err := uc.Execute(context.Background(), Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
