package models

import (
	"time"

	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// ScheduleResponse модель расписания для внешних слоёв
// Stored = false означает, что арендатор работает на дефолтной конфигурации
type ScheduleResponse struct {
	TenantID            int64
	OpenTime            types.TimeOfDay
	CloseTime           types.TimeOfDay
	SlotDurationMinutes int
	AvailableWeekdays   []time.Weekday
	AdvanceBookingDays  int
	Stored              bool
}

// UpdateScheduleRequest запрос на обновление расписания арендатора
type UpdateScheduleRequest struct {
	TenantID            int64
	UserID              int64
	OpenTime            types.TimeOfDay
	CloseTime           types.TimeOfDay
	SlotDurationMinutes int
	AvailableWeekdays   []time.Weekday
	AdvanceBookingDays  int
}

// ToDomainConfig конвертирует запрос в доменную модель
func (r *UpdateScheduleRequest) ToDomainConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		TenantID:            r.TenantID,
		OpenTime:            r.OpenTime,
		CloseTime:           r.CloseTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		AvailableWeekdays:   domain.NewWeekdaySet(r.AvailableWeekdays...),
		AdvanceBookingDays:  r.AdvanceBookingDays,
	}
}

// FromDomainConfig конвертирует доменную модель в ответ сервиса
func FromDomainConfig(c *domain.ScheduleConfig, stored bool) *ScheduleResponse {
	return &ScheduleResponse{
		TenantID:            c.TenantID,
		OpenTime:            c.OpenTime,
		CloseTime:           c.CloseTime,
		SlotDurationMinutes: c.SlotDurationMinutes,
		AvailableWeekdays:   c.AvailableWeekdays.List(),
		AdvanceBookingDays:  c.AdvanceBookingDays,
		Stored:              stored,
	}
}
