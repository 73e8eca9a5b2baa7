package select_room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomstore "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubRooms struct {
	known map[string]bool
}

func (s stubRooms) GetByID(_ context.Context, roomID string) (*domain.Room, error) {
	if s.known[roomID] {
		return &domain.Room{ID: roomID, Name: "Room " + roomID}, nil
	}
	return nil, roomstore.ErrRoomNotFound
}

func newTestUseCase(known ...string) *UseCase {
	rooms := stubRooms{known: map[string]bool{}}
	for _, id := range known {
		rooms.known[id] = true
	}
	return NewUseCase(rooms, domain.DefaultPolicies(), nopLogger{})
}

func TestExecute_AddRoom(t *testing.T) {
	uc := newTestUseCase("r1", "r2")

	resp, err := uc.Execute(context.Background(), Request{
		UserID: "u1",
		Tier:   domain.TierFaculty,
		RoomID: "r1",
	})

	require.NoError(t, err)
	assert.True(t, resp.Selected)
	assert.Equal(t, []string{"r1"}, resp.RoomIDs)
}

func TestExecute_DeselectAlwaysSucceeds(t *testing.T) {
	// Снятие комнаты успешно даже для ужатого тарифа и несуществующей комнаты
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), Request{
		UserID:  "u1",
		Tier:    domain.TierStudent,
		Current: []string{"r1", "ghost", "r3"},
		RoomID:  "ghost",
	})

	require.NoError(t, err)
	assert.False(t, resp.Selected)
	assert.Equal(t, []string{"r1", "r3"}, resp.RoomIDs)
}

func TestExecute_RoomCap(t *testing.T) {
	tests := []struct {
		name    string
		tier    domain.Tier
		current []string
		wantErr bool
	}{
		{name: "student blocked at second room", tier: domain.TierStudent, current: []string{"r1"}, wantErr: true},
		{name: "faculty allowed up to three rooms", tier: domain.TierFaculty, current: []string{"r1", "r2"}, wantErr: false},
		{name: "faculty blocked at fourth room", tier: domain.TierFaculty, current: []string{"r1", "r2", "r3"}, wantErr: true},
		{name: "guest blocked at third room", tier: domain.TierGuest, current: []string{"r1", "r2"}, wantErr: true},
		{name: "unknown tier falls back to guest", tier: "visitor", current: []string{"r1", "r2"}, wantErr: true},
		{name: "admin unlimited", tier: domain.TierAdmin, current: []string{"r1", "r2", "r3", "r4"}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase("r1", "r2", "r3", "r4", "r5")

			resp, err := uc.Execute(context.Background(), Request{
				UserID:  "u1",
				Tier:    tt.tier,
				Current: tt.current,
				RoomID:  "r5",
			})

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRoomCapExceeded)
			} else {
				require.NoError(t, err)
				assert.Len(t, resp.RoomIDs, len(tt.current)+1)
			}
		})
	}
}

func TestExecute_UnknownRoom(t *testing.T) {
	uc := newTestUseCase("r1")

	_, err := uc.Execute(context.Background(), Request{
		UserID: "u1",
		Tier:   domain.TierFaculty,
		RoomID: "nope",
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_EmptyRoomID(t *testing.T) {
	uc := newTestUseCase("r1")

	_, err := uc.Execute(context.Background(), Request{UserID: "u1", Tier: domain.TierFaculty})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
