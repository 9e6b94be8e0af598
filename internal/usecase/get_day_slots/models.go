package get_day_slots

import (
	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// Request модель запроса сетки слотов на день
type Request struct {
	TenantID  int64           // ID арендатора
	ServiceID int64           // ID услуги (её длительность задаёт шаг сетки)
	Date      types.CivilDate // Дата, на которую строится сетка
}

// Response модель ответа с сеткой слотов
type Response struct {
	Date      types.CivilDate // Дата, на которую строилась сетка
	TenantID  int64           // ID арендатора
	ServiceID int64           // ID услуги
	Slots     []Slot          // Сетка слотов в порядке возрастания времени
}

// Slot модель временного слота с его состоянием
type Slot struct {
	StartTime       types.TimeOfDay  // Минута начала слота
	DurationMinutes int              // Длительность слота в минутах
	Period          domain.DayPeriod // Часть дня (morning/afternoon/evening/night)
	IsBooked        bool             // Занят ли слот существующей записью
}
