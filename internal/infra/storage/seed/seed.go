package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// RoomCreator часть репозитория комнат, нужная для посева
type RoomCreator interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
}

// BookingCreator часть репозитория бронирований, нужная для посева
type BookingCreator interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Rooms наполняет каталог демонстрационным набором комнат.
// Возвращает созданные комнаты в порядке вставки.
func Rooms(ctx context.Context, repo RoomCreator) ([]*domain.Room, error) {
	demo := []*domain.Room{
		{
			Name:        "Conference Room A",
			Type:        "conference",
			Capacity:    10,
			Price:       100,
			Status:      domain.RoomStatusAvailable,
			Amenities:   []string{"WiFi", "Projector", "Whiteboard", "Video Conferencing"},
			Images:      []string{"/room_img/conference-a.png"},
			Description: "Large conference room with projector and whiteboard",
		},
		{
			Name:        "Meeting Room B",
			Type:        "meeting",
			Capacity:    6,
			Price:       75,
			Status:      domain.RoomStatusOccupied,
			Amenities:   []string{"WiFi", "TV", "Video Conferencing"},
			Images:      []string{"/room_img/meeting-b.png"},
			Description: "Medium-sized meeting room with video conferencing equipment",
		},
		{
			Name:        "Boardroom C",
			Type:        "boardroom",
			Capacity:    12,
			Price:       150,
			Status:      domain.RoomStatusAvailable,
			Amenities:   []string{"WiFi", "Projector", "Whiteboard", "Coffee Machine", "Catering"},
			Images:      []string{"/room_img/boardroom-c.png"},
			Description: "Executive boardroom with premium amenities",
		},
		{
			Name:        "Training Room D",
			Type:        "classroom",
			Capacity:    20,
			Price:       80,
			Status:      domain.RoomStatusAvailable,
			Amenities:   []string{"WiFi", "Projector", "Whiteboard", "Microphone"},
			Images:      []string{"/room_img/training-d.png"},
			Description: "Spacious training room perfect for workshops and seminars",
		},
		{
			Name:        "Small Meeting Room E",
			Type:        "meeting",
			Capacity:    4,
			Price:       50,
			Status:      domain.RoomStatusMaintenance,
			Amenities:   []string{"WiFi", "TV"},
			Images:      []string{"/room_img/meeting-e.png"},
			Description: "Intimate meeting space for small team discussions",
		},
	}

	created := make([]*domain.Room, 0, len(demo))
	for _, room := range demo {
		stored, err := repo.Create(ctx, room)
		if err != nil {
			return nil, fmt.Errorf("seed rooms: %w", err)
		}
		created = append(created, stored)
	}
	return created, nil
}

// Bookings наполняет хранилище демонстрационными бронированиями на сегодня.
// Третья запись хранит legacy-метку диапазона "14:00 - 16:00" на две
// комнаты: ровно такой формат остаётся в сторе после многослотового
// подтверждения.
func Bookings(ctx context.Context, repo BookingCreator, rooms []*domain.Room) error {
	if len(rooms) < 3 {
		return fmt.Errorf("seed bookings: need at least 3 rooms, got %d", len(rooms))
	}

	today := time.Now()
	demo := []*domain.Booking{
		{
			UserID:    "user1",
			UserName:  "John Doe",
			RoomIDs:   []string{rooms[0].ID},
			RoomNames: []string{rooms[0].Name},
			Date:      today,
			TimeSlot:  "09:00 - 10:00",
			Topic:     ptr.Ptr("Team Standup"),
			Status:    domain.StatusConfirmed,
		},
		{
			UserID:    "user2",
			UserName:  "Prof. Smith",
			RoomIDs:   []string{rooms[1].ID},
			RoomNames: []string{rooms[1].Name},
			Date:      today,
			TimeSlot:  "11:00 - 12:00",
			Topic:     ptr.Ptr("Advanced AI Workshop"),
			Status:    domain.StatusConfirmed,
		},
		{
			UserID:    "user3",
			UserName:  "Robert Johnson",
			RoomIDs:   []string{rooms[0].ID, rooms[2].ID},
			RoomNames: []string{rooms[0].Name, rooms[2].Name},
			Date:      today,
			TimeSlot:  "14:00 - 16:00",
			Topic:     ptr.Ptr("Client Presentation"),
			Status:    domain.StatusPending,
		},
	}

	for _, booking := range demo {
		if _, err := repo.Create(ctx, booking); err != nil {
			return fmt.Errorf("seed bookings: %w", err)
		}
	}
	return nil
}
