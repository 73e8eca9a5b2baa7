package get_timetable

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getTimetable "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_timetable"
)

// CellResponse ячейка строки расписания; объединённая ячейка
// перекрывает colSpan колонок
type CellResponse struct {
	RoomID    string `json:"roomId"`
	ColSpan   int    `json:"colSpan"`
	Status    string `json:"status"`
	BookingID string `json:"bookingId,omitempty"`
	Topic     string `json:"topic,omitempty"`
	UserName  string `json:"userName,omitempty"`
}

// RowResponse строка расписания
type RowResponse struct {
	Slot  string         `json:"slot"`
	Cells []CellResponse `json:"cells"`
}

// ColumnResponse колонка расписания
type ColumnResponse struct {
	RoomID   string `json:"roomId"`
	RoomName string `json:"roomName"`
}

// TimetableResponse расписание на дату
type TimetableResponse struct {
	Date    string           `json:"date"`
	Columns []ColumnResponse `json:"columns"`
	Rows    []RowResponse    `json:"rows"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getTimetable.Response) *TimetableResponse {
	columns := make([]ColumnResponse, 0, len(resp.Columns))
	for _, col := range resp.Columns {
		columns = append(columns, ColumnResponse{RoomID: col.RoomID, RoomName: col.RoomName})
	}

	rows := make([]RowResponse, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		cells := make([]CellResponse, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, CellResponse{
				RoomID:    cell.RoomID,
				ColSpan:   cell.ColSpan,
				Status:    string(cell.Status),
				BookingID: cell.BookingID,
				Topic:     cell.Topic,
				UserName:  cell.UserName,
			})
		}
		rows = append(rows, RowResponse{Slot: row.Slot.String(), Cells: cells})
	}

	return &TimetableResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Columns: columns,
		Rows:    rows,
	}
}
