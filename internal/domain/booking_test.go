package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func workdayCatalog(t *testing.T) SlotCatalog {
	t.Helper()
	catalog, err := BuildCatalog("09:00", "17:00", 60)
	require.NoError(t, err)
	return catalog
}

func TestBookingOverlaps(t *testing.T) {
	catalog := workdayCatalog(t)
	legacy := &Booking{
		ID:       "b1",
		RoomIDs:  []string{"r1", "r2"},
		Date:     date(2026, time.March, 10),
		TimeSlot: "14:00 - 16:00",
		Status:   StatusConfirmed,
	}

	tests := []struct {
		name      string
		candidate TimeSlotLabel
		want      bool
	}{
		{"first covered slot", "14:00 - 15:00", true},
		{"second covered slot", "15:00 - 16:00", true},
		{"slot before the range", "13:00 - 14:00", false},
		// Включительная правая граница legacy-диапазона завышает конфликт
		// на слоте, начинающемся ровно в конце диапазона. Поведение сохранено.
		{"boundary slot at range end", "16:00 - 17:00", true},
		{"slot well after the range", "17:00 - 18:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, legacy.Overlaps(tt.candidate, catalog))
		})
	}

	t.Run("catalog label matches only itself", func(t *testing.T) {
		single := &Booking{TimeSlot: "10:00 - 11:00"}
		assert.True(t, single.Overlaps("10:00 - 11:00", catalog))
		assert.False(t, single.Overlaps("09:00 - 10:00", catalog))
		// Правило диапазона не действует на одиночную метку каталога:
		// следующий слот остаётся свободным
		assert.False(t, single.Overlaps("11:00 - 12:00", catalog))
	})
}

func TestBookingBlocks(t *testing.T) {
	catalog := workdayCatalog(t)
	day := date(2026, time.March, 10)
	booking := &Booking{
		ID:       "b1",
		RoomIDs:  []string{"r1", "r2"},
		Date:     day,
		TimeSlot: "14:00 - 16:00",
		Status:   StatusConfirmed,
	}

	assert.True(t, booking.Blocks("r1", day, "14:00 - 15:00", catalog))
	assert.True(t, booking.Blocks("r2", day, "15:00 - 16:00", catalog))

	assert.False(t, booking.Blocks("r3", day, "14:00 - 15:00", catalog), "room not covered")
	assert.False(t, booking.Blocks("r1", day.AddDate(0, 0, 1), "14:00 - 15:00", catalog), "other day")
	assert.False(t, booking.Blocks("r1", day, "13:00 - 14:00", catalog), "slot before range")

	cancelled := *booking
	cancelled.Status = StatusCancelled
	assert.False(t, cancelled.Blocks("r1", day, "14:00 - 15:00", catalog), "cancelled bookings never block")
}

func TestBookingOccupies(t *testing.T) {
	catalog := workdayCatalog(t)
	day := date(2026, time.March, 10)

	t.Run("legacy range covers exactly its decomposed slots", func(t *testing.T) {
		legacy := &Booking{
			ID:       "b1",
			RoomIDs:  []string{"r1"},
			Date:     day,
			TimeSlot: "14:00 - 16:00",
			Status:   StatusPending,
		}

		assert.True(t, legacy.Occupies("r1", day, "14:00 - 15:00", catalog))
		assert.True(t, legacy.Occupies("r1", day, "15:00 - 16:00", catalog))
		// В отличие от детектора конфликтов, граничный слот в сетке свободен
		assert.False(t, legacy.Occupies("r1", day, "16:00 - 17:00", catalog))
		assert.False(t, legacy.Occupies("r1", day, "13:00 - 14:00", catalog))
	})

	t.Run("catalog label occupies only its own cell", func(t *testing.T) {
		single := &Booking{
			ID:       "b2",
			RoomIDs:  []string{"r1"},
			Date:     day,
			TimeSlot: "10:00 - 11:00",
			Status:   StatusConfirmed,
		}

		assert.True(t, single.Occupies("r1", day, "10:00 - 11:00", catalog))
		assert.False(t, single.Occupies("r1", day, "11:00 - 12:00", catalog))
		assert.False(t, single.Occupies("r2", day, "10:00 - 11:00", catalog), "room not covered")
	})
}

func TestSlotTaken(t *testing.T) {
	catalog := workdayCatalog(t)
	day := date(2026, time.March, 10)
	bookings := []*Booking{
		{ID: "b1", RoomIDs: []string{"r1"}, Date: day, TimeSlot: "09:00 - 10:00", Status: StatusConfirmed},
		{ID: "b2", RoomIDs: []string{"r2"}, Date: day, TimeSlot: "11:00 - 12:00", Status: StatusCancelled},
	}

	assert.True(t, SlotTaken("r1", day, "09:00 - 10:00", catalog, bookings))
	assert.False(t, SlotTaken("r1", day, "10:00 - 11:00", catalog, bookings), "successor of a single-slot booking stays free")
	assert.False(t, SlotTaken("r2", day, "11:00 - 12:00", catalog, bookings), "cancelled booking is ignored")
	assert.False(t, SlotTaken("r9", day, "09:00 - 10:00", catalog, bookings), "unknown room is simply free")
	assert.False(t, SlotTaken("r1", day, "13:00 - 14:00", catalog, nil))
}

func TestBookingHelpers(t *testing.T) {
	multi := &Booking{RoomIDs: []string{"r1", "r2"}}
	single := &Booking{RoomIDs: []string{"r1"}}

	assert.True(t, multi.IsMultiRoom())
	assert.False(t, single.IsMultiRoom())
	assert.True(t, multi.CoversRoom("r2"))
	assert.False(t, multi.CoversRoom("r3"))
}
