package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Repository репозиторий бронирований в памяти процесса.
// Состояние живёт только в рамках сессии и теряется при перезапуске,
// персистентность сознательно вне скоупа сервиса. Мьютекс нужен, потому
// что HTTP-слой конкурентен, даже если движок выбора однопользовательский.
type Repository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	order    []string // порядок вставки для стабильных списков
}

// NewRepository создает пустой репозиторий бронирований
func NewRepository() *Repository {
	return &Repository{
		bookings: make(map[string]*domain.Booking),
	}
}

// Create сохраняет новое бронирование, присваивая ID и время создания.
// Проверка конфликтов выполняется на уровне usecase до вызова Create.
func (r *Repository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking == nil || len(booking.RoomIDs) == 0 {
		return nil, fmt.Errorf("%w: booking must cover at least one room", ErrInvalidBooking)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneBooking(booking)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	stored.CreatedAt = time.Now()

	r.bookings[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return cloneBooking(stored), nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return cloneBooking(booking), nil
}

// GetByDate получает все бронирования на календарный день в порядке вставки
func (r *Repository) GetByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Booking
	for _, id := range r.order {
		booking := r.bookings[id]
		if booking.IsOnDate(date) {
			result = append(result, cloneBooking(booking))
		}
	}
	return result, nil
}

// GetByUserID получает бронирования пользователя, опционально фильтруя по статусу
func (r *Repository) GetByUserID(_ context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Booking
	for _, id := range r.order {
		booking := r.bookings[id]
		if booking.UserID != userID {
			continue
		}
		if status != nil && booking.Status != *status {
			continue
		}
		result = append(result, cloneBooking(booking))
	}
	return result, nil
}

// Delete полностью удаляет бронирование. Частичной отмены по комнатам нет:
// override снимает всю запись целиком.
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return ErrBookingNotFound
	}
	delete(r.bookings, id)

	for i, storedID := range r.order {
		if storedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// cloneBooking возвращает глубокую копию, чтобы вызывающий код
// не мог менять состояние хранилища через разделяемые срезы.
func cloneBooking(b *domain.Booking) *domain.Booking {
	clone := *b
	clone.RoomIDs = append([]string(nil), b.RoomIDs...)
	clone.RoomNames = append([]string(nil), b.RoomNames...)
	if b.Topic != nil {
		topic := *b.Topic
		clone.Topic = &topic
	}
	if b.Notes != nil {
		notes := *b.Notes
		clone.Notes = &notes
	}
	return &clone
}
