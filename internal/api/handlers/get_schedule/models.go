package get_schedule

import (
	"github.com/m04kA/BMC-AppointmentService/internal/service/schedule/models"
)

// ScheduleResponse HTTP response model
// Stored = false означает, что арендатор работает на дефолтной конфигурации
type ScheduleResponse struct {
	TenantID            int64  `json:"tenantId"`
	OpenTime            string `json:"openTime"`
	CloseTime           string `json:"closeTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	AvailableWeekdays   []int  `json:"availableWeekdays"`
	AdvanceBookingDays  int    `json:"advanceBookingDays"`
	Stored              bool   `json:"stored"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ScheduleResponse) *ScheduleResponse {
	weekdays := make([]int, len(resp.AvailableWeekdays))
	for i, d := range resp.AvailableWeekdays {
		weekdays[i] = int(d)
	}

	return &ScheduleResponse{
		TenantID:            resp.TenantID,
		OpenTime:            resp.OpenTime.Display(),
		CloseTime:           resp.CloseTime.Display(),
		SlotDurationMinutes: resp.SlotDurationMinutes,
		AvailableWeekdays:   weekdays,
		AdvanceBookingDays:  resp.AdvanceBookingDays,
		Stored:              resp.Stored,
	}
}
