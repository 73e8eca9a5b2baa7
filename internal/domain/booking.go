package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a room booking in the system.
// A booking with more than one room ID is a multi-room booking: all listed
// rooms are reserved for the identical time range under one identity.
type Booking struct {
	ID       string
	UserID   string
	UserName string

	RoomIDs   []string // never empty
	RoomNames []string // denormalized for history

	Date     time.Time     // calendar day, time-of-day irrelevant
	TimeSlot TimeSlotLabel // single catalog label or legacy merged range

	Topic *string
	Notes *string

	Status BookingStatus

	CreatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsMultiRoom returns true if the booking spans more than one room
func (b *Booking) IsMultiRoom() bool {
	return len(b.RoomIDs) > 1
}

// CoversRoom reports whether the booking reserves the given room.
func (b *Booking) CoversRoom(roomID string) bool {
	for _, id := range b.RoomIDs {
		if id == roomID {
			return true
		}
	}
	return false
}

// IsOnDate reports whether the booking falls on the given calendar day.
func (b *Booking) IsOnDate(date time.Time) bool {
	return SameDay(b.Date, date)
}

// Overlaps решает, блокирует ли сохранённая метка слота кандидата.
// Две кодировки: метка каталога сравнивается только на точное равенство,
// legacy-диапазон блокирует кандидата S, если S.start >= R.start И
// S.start <= R.end.
//
// Включительная проверка правой границы legacy-диапазона может завысить
// конфликт ровно на граничном слоте. Это унаследованное поведение хранимых
// данных, сохраняем его как есть. На одиночные метки каталога правило
// диапазона не распространяется.
func (b *Booking) Overlaps(candidate TimeSlotLabel, catalog SlotCatalog) bool {
	if b.TimeSlot == candidate {
		return true
	}
	if catalog.Contains(b.TimeSlot) {
		return false
	}
	return candidate.Start() >= b.TimeSlot.Start() && candidate.Start() <= b.TimeSlot.End()
}

// Blocks reports whether this booking makes the room/date/slot combination
// unavailable: non-cancelled, covering the room, on the date, overlapping.
func (b *Booking) Blocks(roomID string, date time.Time, slot TimeSlotLabel, catalog SlotCatalog) bool {
	return !b.IsCancelled() &&
		b.CoversRoom(roomID) &&
		b.IsOnDate(date) &&
		b.Overlaps(slot, catalog)
}

// Occupies reports whether the booking fills the exact grid cell: the room
// is covered, the date matches and the stored label is either the slot
// itself or a legacy range whose decomposed run contains it. Unlike Blocks,
// the loose right boundary of the conflict detector never reaches the grid.
func (b *Booking) Occupies(roomID string, date time.Time, slot TimeSlotLabel, catalog SlotCatalog) bool {
	return !b.IsCancelled() &&
		b.CoversRoom(roomID) &&
		b.IsOnDate(date) &&
		b.coversSlot(slot, catalog)
}

func (b *Booking) coversSlot(slot TimeSlotLabel, catalog SlotCatalog) bool {
	if b.TimeSlot == slot {
		return true
	}
	run, ok := catalog.DecomposeRange(b.TimeSlot)
	if !ok {
		return false
	}
	for _, covered := range run {
		if covered == slot {
			return true
		}
	}
	return false
}

// SlotTaken is the pure conflict detector: it reports whether any booking in
// the list blocks the room for the candidate slot on the date. Maintenance
// rooms must be short-circuited by the caller before this check.
func SlotTaken(roomID string, date time.Time, slot TimeSlotLabel, catalog SlotCatalog, bookings []*Booking) bool {
	for _, booking := range bookings {
		if booking.Blocks(roomID, date, slot, catalog) {
			return true
		}
	}
	return false
}

// ValidBookingStatus reports whether the string names a known booking status.
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	default:
		return false
	}
}
