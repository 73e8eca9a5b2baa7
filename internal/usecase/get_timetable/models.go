package get_timetable

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// CellStatus статус ячейки расписания
type CellStatus string

const (
	CellAvailable   CellStatus = "available"
	CellBooked      CellStatus = "booked"
	CellPending     CellStatus = "pending"
	CellMaintenance CellStatus = "maintenance"
)

// Request модель запроса расписания
type Request struct {
	Date time.Time
}

// Cell ячейка строки расписания. Объединённая ячейка перекрывает
// ColSpan колонок; перекрытые колонки в строке не присутствуют.
type Cell struct {
	RoomID    string
	ColSpan   int
	Status    CellStatus
	BookingID string // пусто для available и maintenance
	Topic     string // пусто для available и maintenance
	UserName  string
}

// Row строка расписания: один слот каталога
type Row struct {
	Slot  domain.TimeSlotLabel
	Cells []Cell
}

// Column колонка расписания: комната в порядке каталога комнат
type Column struct {
	RoomID   string
	RoomName string
}

// Response модель ответа с расписанием на дату
type Response struct {
	Date    time.Time
	Columns []Column
	Rows    []Row
}
