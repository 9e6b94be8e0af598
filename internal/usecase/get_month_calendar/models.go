package get_month_calendar

import (
	"time"

	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// Request модель запроса календаря месяца
type Request struct {
	TenantID  int64      // ID арендатора
	ServiceID *int64     // Опциональный фильтр по услуге
	Month     time.Month // Отображаемый месяц (1-12)
	Year      int        // Год отображаемого месяца
}

// Response модель ответа с ячейками календаря
// Cells начинается с пустых ячеек-заполнителей до дня недели первого числа,
// дальше - по одной ячейке на каждый день месяца по порядку
type Response struct {
	TenantID int64
	Month    time.Month
	Year     int
	Today    types.CivilDate // "Сегодня", от которого считались прошедшие дни
	Cells    []domain.DayCell
}
