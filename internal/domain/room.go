package domain

import (
	"strings"
	"time"
)

// RoomStatus represents the administrative status of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Room represents a bookable room in the system
type Room struct {
	ID          string
	Name        string
	Type        string // conference, meeting, boardroom, classroom
	Capacity    int
	Price       float64 // стоимость за час, взимается только с платных тарифов
	Status      RoomStatus
	Amenities   []string
	Images      []string
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the room accepts bookings at all.
// Maintenance rooms are never bookable regardless of time.
func (r *Room) IsBookable() bool {
	return r.Status != RoomStatusMaintenance
}

// RoomsFilter фильтр для списка комнат (поиск админ-консоли)
type RoomsFilter struct {
	Search string // подстрока в имени, описании или удобствах
	Type   *string
}

// Matches reports whether the room satisfies the filter.
// Search matches case-insensitively against name, description and amenities.
func (r *Room) Matches(filter RoomsFilter) bool {
	if filter.Type != nil && r.Type != *filter.Type {
		return false
	}
	if filter.Search == "" {
		return true
	}

	needle := strings.ToLower(filter.Search)
	if strings.Contains(strings.ToLower(r.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), needle) {
		return true
	}
	for _, amenity := range r.Amenities {
		if strings.Contains(strings.ToLower(amenity), needle) {
			return true
		}
	}
	return false
}

// ValidRoomStatus reports whether the string names a known room status.
func ValidRoomStatus(s string) bool {
	switch RoomStatus(s) {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	default:
		return false
	}
}
