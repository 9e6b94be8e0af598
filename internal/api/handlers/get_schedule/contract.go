package get_schedule

import (
	"context"

	"github.com/m04kA/BMC-AppointmentService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetByTenant(ctx context.Context, tenantID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
