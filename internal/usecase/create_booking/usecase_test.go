package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingstore "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	roomstore "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *UseCase
	bookings *bookingstore.Repository
	rooms    *roomstore.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	catalog, err := domain.BuildCatalog("09:00", "17:00", 60)
	require.NoError(t, err)

	bookings := bookingstore.NewRepository()
	rooms := roomstore.NewRepository()

	seed := []*domain.Room{
		{ID: "r1", Name: "Conference Room A", Type: "conference", Capacity: 10, Price: 50, Status: domain.RoomStatusAvailable},
		{ID: "r2", Name: "Meeting Room B", Type: "meeting", Capacity: 6, Price: 100, Status: domain.RoomStatusAvailable},
		{ID: "r3", Name: "Small Meeting Room E", Type: "meeting", Capacity: 4, Price: 30, Status: domain.RoomStatusMaintenance},
	}
	for _, room := range seed {
		_, err := rooms.Create(context.Background(), room)
		require.NoError(t, err)
	}

	return &fixture{
		uc:       NewUseCase(catalog, domain.DefaultPolicies(), bookings, rooms, nopLogger{}),
		bookings: bookings,
		rooms:    rooms,
	}
}

func TestExecute_CreatesConfirmedBooking(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:    "u1",
		UserName:  "Alice",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"10:00 - 11:00", "11:00 - 12:00"},
		RoomIDs:   []string{"r1"},
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.NotEmpty(t, resp.Booking.ID)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	// Многослотовый выбор сохраняется одной объединённой меткой
	assert.Equal(t, domain.TimeSlotLabel("10:00 - 12:00"), resp.Booking.TimeSlot)
	assert.Equal(t, []string{"Conference Room A"}, resp.Booking.RoomNames)
	assert.Zero(t, resp.TotalPrice)
}

func TestExecute_GuestPaysPerRoomPerHour(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:    "u1",
		UserName:  "Guest",
		Tier:      domain.TierGuest,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"10:00 - 11:00", "11:00 - 12:00"},
		RoomIDs:   []string{"r1", "r2"},
	})

	require.NoError(t, err)
	// (50 + 100) за комнату-час × 2 часа
	assert.Equal(t, 300.0, resp.TotalPrice)
}

func TestExecute_EmptySelection(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:  "u1",
		Tier:    domain.TierFaculty,
		Date:    testDate,
		RoomIDs: []string{"r1"},
	})
	assert.ErrorIs(t, err, ErrEmptySelection)

	_, err = f.uc.Execute(context.Background(), &Request{
		UserID:    "u1",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"10:00 - 11:00"},
	})
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestExecute_NonContiguousSelection(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    "u1",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"10:00 - 11:00", "12:00 - 13:00"},
		RoomIDs:   []string{"r1"},
	})

	assert.ErrorIs(t, err, ErrNonContiguousSelection)
}

func TestExecute_TierCaps(t *testing.T) {
	f := newFixture(t)

	// student: максимум 2 часа
	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    "u1",
		Tier:      domain.TierStudent,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"09:00 - 10:00", "10:00 - 11:00", "11:00 - 12:00"},
		RoomIDs:   []string{"r1"},
	})
	assert.ErrorIs(t, err, ErrHourCapExceeded)

	// student: максимум 1 комната
	_, err = f.uc.Execute(context.Background(), &Request{
		UserID:    "u1",
		Tier:      domain.TierStudent,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"09:00 - 10:00"},
		RoomIDs:   []string{"r1", "r2"},
	})
	assert.ErrorIs(t, err, ErrRoomCapExceeded)
}

func TestExecute_MaintenanceRoomRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    "u1",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"10:00 - 11:00"},
		RoomIDs:   []string{"r3"},
	})

	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestExecute_UnknownRoomRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    "u1",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"10:00 - 11:00"},
		RoomIDs:   []string{"ghost"},
	})

	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestExecute_ConflictRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    "u1",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"10:00 - 11:00"},
		RoomIDs:   []string{"r1"},
	})
	require.NoError(t, err)

	// Та же комната, тот же слот, другой пользователь
	_, err = f.uc.Execute(context.Background(), &Request{
		UserID:    "u2",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"10:00 - 11:00"},
		RoomIDs:   []string{"r1"},
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	// Другая комната свободна
	_, err = f.uc.Execute(context.Background(), &Request{
		UserID:    "u2",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"10:00 - 11:00"},
		RoomIDs:   []string{"r2"},
	})
	assert.NoError(t, err)
}

func TestExecute_SuccessorSlotBookable(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    "u1",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"10:00 - 11:00"},
		RoomIDs:   []string{"r1"},
	})
	require.NoError(t, err)

	// Слот сразу после одиночного бронирования свободен для той же комнаты
	_, err = f.uc.Execute(context.Background(), &Request{
		UserID:    "u2",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"11:00 - 12:00"},
		RoomIDs:   []string{"r1"},
	})
	assert.NoError(t, err)
}

func TestExecute_MergedRangeBlocksFurtherBookings(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    "u1",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"14:00 - 15:00", "15:00 - 16:00"},
		RoomIDs:   []string{"r1"},
	})
	require.NoError(t, err)

	// Любой слот внутри сохранённого диапазона занят
	_, err = f.uc.Execute(context.Background(), &Request{
		UserID:    "u2",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"15:00 - 16:00"},
		RoomIDs:   []string{"r1"},
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	// Другая дата не затронута
	_, err = f.uc.Execute(context.Background(), &Request{
		UserID:    "u2",
		Tier:      domain.TierFaculty,
		Date:      testDate.AddDate(0, 0, 1),
		Selection: []domain.TimeSlotLabel{"15:00 - 16:00"},
		RoomIDs:   []string{"r1"},
	})
	assert.NoError(t, err)
}

func TestExecute_TopicAndNotesLimits(t *testing.T) {
	f := newFixture(t)

	longTopic := make([]byte, domain.MaxTopicLength+1)
	for i := range longTopic {
		longTopic[i] = 'a'
	}
	topic := string(longTopic)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    "u1",
		Tier:      domain.TierFaculty,
		Date:      testDate,
		Selection: []domain.TimeSlotLabel{"10:00 - 11:00"},
		RoomIDs:   []string{"r1"},
		Topic:     &topic,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
