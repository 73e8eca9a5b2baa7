package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *bookingRepo.Repository) {
	t.Helper()
	repo := bookingRepo.NewRepository()
	return NewService(repo, nopLogger{}), repo
}

func seedBooking(t *testing.T, repo *bookingRepo.Repository, userID string, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.Booking{
		UserID:    userID,
		UserName:  "Test User",
		RoomIDs:   []string{"r1"},
		RoomNames: []string{"Conference Room A"},
		Date:      testDate,
		TimeSlot:  "10:00 - 11:00",
		Status:    status,
	})
	require.NoError(t, err)
	return created
}

func TestGetByID_OwnerAccess(t *testing.T) {
	svc, repo := newTestService(t)
	created := seedBooking(t, repo, "u1", domain.StatusConfirmed)

	got, err := svc.GetByID(context.Background(), created.ID, "u1", domain.TierStudent)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestGetByID_AdminAccess(t *testing.T) {
	svc, repo := newTestService(t)
	created := seedBooking(t, repo, "u1", domain.StatusConfirmed)

	_, err := svc.GetByID(context.Background(), created.ID, "admin-user", domain.TierAdmin)

	assert.NoError(t, err)
}

func TestGetByID_ForeignUserDenied(t *testing.T) {
	svc, repo := newTestService(t)
	created := seedBooking(t, repo, "u1", domain.StatusConfirmed)

	_, err := svc.GetByID(context.Background(), created.ID, "u2", domain.TierFaculty)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "missing", "u1", domain.TierStudent)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	svc, repo := newTestService(t)
	seedBooking(t, repo, "u1", domain.StatusConfirmed)
	seedBooking(t, repo, "u1", domain.StatusPending)
	seedBooking(t, repo, "u2", domain.StatusConfirmed)

	all, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	pending, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "u1",
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	require.Len(t, pending.Bookings, 1)
	assert.Equal(t, "pending", pending.Bookings[0].Status)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "u1",
		Status: ptr.Ptr("archived"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByDate(t *testing.T) {
	svc, repo := newTestService(t)
	seedBooking(t, repo, "u1", domain.StatusConfirmed)

	result, err := svc.GetByDate(context.Background(), testDate)
	require.NoError(t, err)
	assert.Len(t, result.Bookings, 1)

	empty, err := svc.GetByDate(context.Background(), testDate.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, empty.Bookings)
}

func TestOverride_AdminRemovesBooking(t *testing.T) {
	svc, repo := newTestService(t)
	created := seedBooking(t, repo, "u1", domain.StatusConfirmed)

	require.NoError(t, svc.Override(context.Background(), created.ID, domain.TierAdmin))

	// Запись удалена целиком, слоты освобождены
	_, err := repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, bookingRepo.ErrBookingNotFound)
}

func TestOverride_NonAdminDenied(t *testing.T) {
	svc, repo := newTestService(t)
	created := seedBooking(t, repo, "u1", domain.StatusConfirmed)

	assert.ErrorIs(t, svc.Override(context.Background(), created.ID, domain.TierFaculty), ErrAccessDenied)
	assert.ErrorIs(t, svc.Override(context.Background(), created.ID, domain.TierGuest), ErrAccessDenied)
}

func TestOverride_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	assert.ErrorIs(t, svc.Override(context.Background(), "missing", domain.TierAdmin), ErrBookingNotFound)
}
