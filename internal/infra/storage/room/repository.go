package room

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Repository репозиторий комнат в памяти процесса.
// Каталог комнат редактируется только из админ-консоли.
type Repository struct {
	mu    sync.RWMutex
	rooms map[string]*domain.Room
	order []string // порядок вставки = порядок колонок расписания
}

// NewRepository создает пустой репозиторий комнат
func NewRepository() *Repository {
	return &Repository{
		rooms: make(map[string]*domain.Room),
	}
}

// Create сохраняет новую комнату, присваивая ID и временные метки
func (r *Repository) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	if room == nil || room.Name == "" {
		return nil, fmt.Errorf("%w: room name is required", ErrInvalidRoom)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneRoom(room)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.rooms[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return cloneRoom(stored), nil
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return cloneRoom(room), nil
}

// List возвращает комнаты, подходящие под фильтр, в порядке вставки
func (r *Repository) List(_ context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Room
	for _, id := range r.order {
		room := r.rooms[id]
		if room.Matches(filter) {
			result = append(result, cloneRoom(room))
		}
	}
	return result, nil
}

// Update полностью заменяет данные комнаты, сохраняя время создания
func (r *Repository) Update(_ context.Context, room *domain.Room) (*domain.Room, error) {
	if room == nil || room.ID == "" {
		return nil, fmt.Errorf("%w: room id is required", ErrInvalidRoom)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rooms[room.ID]
	if !ok {
		return nil, ErrRoomNotFound
	}

	stored := cloneRoom(room)
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	r.rooms[stored.ID] = stored

	return cloneRoom(stored), nil
}

// Delete удаляет комнату из каталога
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[id]; !ok {
		return ErrRoomNotFound
	}
	delete(r.rooms, id)

	for i, storedID := range r.order {
		if storedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneRoom(room *domain.Room) *domain.Room {
	clone := *room
	clone.Amenities = append([]string(nil), room.Amenities...)
	clone.Images = append([]string(nil), room.Images...)
	return &clone
}
