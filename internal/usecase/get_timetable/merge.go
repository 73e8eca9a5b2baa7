package get_timetable

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// rowGroup мультикомнатная группа одного бронирования в пределах строки
type rowGroup struct {
	bookingID string
	roomIDs   []string // отсортированы для поиска принадлежности
	emitted   bool
}

func (g *rowGroup) contains(roomID string) bool {
	i := sort.SearchStrings(g.roomIDs, roomID)
	return i < len(g.roomIDs) && g.roomIDs[i] == roomID
}

// buildRow собирает одну строку расписания: разрешает ячейки и
// объединяет мультикомнатные бронирования в одну ячейку с colspan.
func buildRow(slot domain.TimeSlotLabel, date time.Time, catalog domain.SlotCatalog, rooms []*domain.Room, bookings []*domain.Booking) Row {
	// 1. Разрешаем содержимое каждой колонки
	entries := make([]entry, len(rooms))
	for i, room := range rooms {
		entries[i] = resolveEntry(room, date, slot, catalog, bookings)
	}

	// 2. Группируем занятые колонки по бронированию; группы из одной
	// комнаты остаются обычными ячейками
	groups := collectGroups(rooms, entries)

	// 3. Обходим колонки слева направо; объединённая ячейка выходит в
	// первой колонке группы, остальные колонки группы пропускаются
	cells := make([]Cell, 0, len(rooms))
	for i, room := range rooms {
		e := entries[i]

		if group, ok := groups[groupKeyOf(e)]; ok && group.contains(room.ID) {
			if group.emitted {
				continue
			}
			group.emitted = true
			cells = append(cells, Cell{
				RoomID:    room.ID,
				ColSpan:   len(group.roomIDs),
				Status:    e.status,
				BookingID: e.booking.ID,
				Topic:     cellTopic(e.booking),
				UserName:  e.booking.UserName,
			})
			continue
		}

		cell := Cell{RoomID: room.ID, ColSpan: 1, Status: e.status}
		if e.booking != nil {
			cell.BookingID = e.booking.ID
			cell.Topic = cellTopic(e.booking)
			cell.UserName = e.booking.UserName
		}
		cells = append(cells, cell)
	}

	return Row{Slot: slot, Cells: cells}
}

// collectGroups выделяет мультикомнатные группы строки по ID бронирования
func collectGroups(rooms []*domain.Room, entries []entry) map[string]*rowGroup {
	byBooking := make(map[string][]string)
	for i, e := range entries {
		if e.booking == nil {
			continue
		}
		byBooking[e.booking.ID] = append(byBooking[e.booking.ID], rooms[i].ID)
	}

	groups := make(map[string]*rowGroup)
	for bookingID, roomIDs := range byBooking {
		if len(roomIDs) < 2 {
			continue
		}
		sort.Strings(roomIDs)
		groups[bookingID] = &rowGroup{bookingID: bookingID, roomIDs: roomIDs}
	}
	return groups
}

func groupKeyOf(e entry) string {
	if e.booking == nil {
		return ""
	}
	return e.booking.ID
}
