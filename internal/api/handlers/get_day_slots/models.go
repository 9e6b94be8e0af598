package get_day_slots

import (
	getDaySlots "github.com/m04kA/BMC-AppointmentService/internal/usecase/get_day_slots"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date      string    `json:"date"`
	TenantID  int64     `json:"tenantId"`
	ServiceID int64     `json:"serviceId"`
	Slots     []DaySlot `json:"slots"`
}

// DaySlot модель временного слота
// StartTime отдаётся в 12-часовом формате ("09:30 am"), внутри сервиса
// время живёт как минута дня
type DaySlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Period          string `json:"period"`
	IsBooked        bool   `json:"isBooked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]DaySlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = DaySlot{
			StartTime:       slot.StartTime.Display(),
			DurationMinutes: slot.DurationMinutes,
			Period:          string(slot.Period),
			IsBooked:        slot.IsBooked,
		}
	}

	return &DaySlotsResponse{
		Date:      resp.Date.String(),
		TenantID:  resp.TenantID,
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(tenantID, serviceID int64, dateStr string) (*getDaySlots.Request, error) {
	// Парсим дату
	date, err := types.ParseCivilDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getDaySlots.Request{
		TenantID:  tenantID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
