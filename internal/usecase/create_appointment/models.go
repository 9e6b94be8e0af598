package create_appointment

import (
	"time"

	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    int64
	TenantID  int64
	ServiceID int64
	Date      types.CivilDate
	StartTime types.TimeOfDay
	Notes     *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	UserID          int64
	TenantID        int64
	ServiceID       int64
	Date            types.CivilDate
	StartTime       types.TimeOfDay
	DurationMinutes int
	Status          string
	ServiceName     string
	ServicePrice    float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
