package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание комнаты (админ-консоль)
type CreateRoomRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Price       float64  `json:"price"`
	Status      string   `json:"status"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description"`
}

// UpdateRoomRequest запрос на обновление комнаты
type UpdateRoomRequest struct {
	ID          string   `json:"-"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Price       float64  `json:"price"`
	Status      string   `json:"status"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description"`
}

// ListRoomsRequest фильтры списка комнат
type ListRoomsRequest struct {
	Search string
	Type   *string
}

// Response модели

// RoomResponse комната в ответе API
type RoomResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Price       float64  `json:"price"`
	Status      string   `json:"status"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// RoomListResponse список комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// ToDomainRoom конвертирует запрос на создание в domain модель
func (r *CreateRoomRequest) ToDomainRoom() *domain.Room {
	return &domain.Room{
		Name:        r.Name,
		Type:        r.Type,
		Capacity:    r.Capacity,
		Price:       r.Price,
		Status:      domain.RoomStatus(r.Status),
		Amenities:   r.Amenities,
		Images:      r.Images,
		Description: r.Description,
	}
}

// ToDomainRoom конвертирует запрос на обновление в domain модель
func (r *UpdateRoomRequest) ToDomainRoom() *domain.Room {
	return &domain.Room{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type,
		Capacity:    r.Capacity,
		Price:       r.Price,
		Status:      domain.RoomStatus(r.Status),
		Amenities:   r.Amenities,
		Images:      r.Images,
		Description: r.Description,
	}
}

// ToDomainFilter конвертирует запрос списка в domain фильтр
func (r *ListRoomsRequest) ToDomainFilter() domain.RoomsFilter {
	return domain.RoomsFilter{
		Search: r.Search,
		Type:   r.Type,
	}
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(room *domain.Room) *RoomResponse {
	if room == nil {
		return nil
	}
	return &RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		Type:        room.Type,
		Capacity:    room.Capacity,
		Price:       room.Price,
		Status:      string(room.Status),
		Amenities:   room.Amenities,
		Images:      room.Images,
		Description: room.Description,
		CreatedAt:   room.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   room.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}
	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}
	return resp
}
