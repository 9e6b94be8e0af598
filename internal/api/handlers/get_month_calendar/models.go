package get_month_calendar

import (
	getMonthCalendar "github.com/m04kA/BMC-AppointmentService/internal/usecase/get_month_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	TenantID int64          `json:"tenantId"`
	Month    int            `json:"month"`
	Year     int            `json:"year"`
	Today    string         `json:"today"`
	Cells    []CalendarCell `json:"cells"`
}

// CalendarCell ячейка календаря. Ячейки-заполнители перед первым числом
// месяца сериализуются с пустой датой и isPlaceholder=true
type CalendarCell struct {
	Date               string `json:"date,omitempty"`
	IsPlaceholder      bool   `json:"isPlaceholder"`
	IsPast             bool   `json:"isPast"`
	IsAvailableWeekday bool   `json:"isAvailableWeekday"`
	BookingCount       int    `json:"bookingCount"`
	Selectable         bool   `json:"selectable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthCalendar.Response) *CalendarResponse {
	cells := make([]CalendarCell, len(resp.Cells))
	for i, cell := range resp.Cells {
		c := CalendarCell{
			IsPlaceholder:      cell.IsPlaceholder(),
			IsPast:             cell.IsPast,
			IsAvailableWeekday: cell.IsAvailableWeekday,
			BookingCount:       cell.BookingCount,
			Selectable:         cell.Selectable,
		}
		if !cell.IsPlaceholder() {
			c.Date = cell.Date.String()
		}
		cells[i] = c
	}

	return &CalendarResponse{
		TenantID: resp.TenantID,
		Month:    int(resp.Month),
		Year:     resp.Year,
		Today:    resp.Today.String(),
		Cells:    cells,
	}
}
