package update_schedule

import (
	"time"

	"github.com/m04kA/BMC-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	OpenTime            string `json:"openTime"`  // "09:00 am"
	CloseTime           string `json:"closeTime"` // "06:00 pm"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	AvailableWeekdays   []int  `json:"availableWeekdays"` // 0 = воскресенье ... 6 = суббота
	AdvanceBookingDays  int    `json:"advanceBookingDays"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	TenantID            int64  `json:"tenantId"`
	OpenTime            string `json:"openTime"`
	CloseTime           string `json:"closeTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	AvailableWeekdays   []int  `json:"availableWeekdays"`
	AdvanceBookingDays  int    `json:"advanceBookingDays"`
	Stored              bool   `json:"stored"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// (с парсингом времени открытия и закрытия)
func (r *UpdateScheduleRequest) ToServiceRequest(tenantID, userID int64) (*models.UpdateScheduleRequest, error) {
	openTime, err := types.ParseDisplayTime(r.OpenTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.ParseDisplayTime(r.CloseTime)
	if err != nil {
		return nil, err
	}

	weekdays := make([]time.Weekday, len(r.AvailableWeekdays))
	for i, d := range r.AvailableWeekdays {
		weekdays[i] = time.Weekday(d)
	}

	return &models.UpdateScheduleRequest{
		TenantID:            tenantID,
		UserID:              userID,
		OpenTime:            openTime,
		CloseTime:           closeTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		AvailableWeekdays:   weekdays,
		AdvanceBookingDays:  r.AdvanceBookingDays,
	}, nil
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
