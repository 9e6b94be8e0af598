package domain

import (
	"time"

	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending           AppointmentStatus = "pending"
	StatusConfirmed         AppointmentStatus = "confirmed"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelledByUser   AppointmentStatus = "cancelled_by_user"
	StatusCancelledByTenant AppointmentStatus = "cancelled_by_tenant"
	StatusNoShow            AppointmentStatus = "no_show"
)

// Appointment represents a booked service appointment in the system
type Appointment struct {
	ID              int64
	UserID          int64
	TenantID        int64
	ServiceID       int64
	Date            types.CivilDate
	StartTime       types.TimeOfDay
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByUser &&
		a.Status != StatusCancelledByTenant &&
		a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByUser || a.Status == StatusCancelledByTenant
}

// TenantAppointmentsFilter фильтр для выборки записей арендатора
type TenantAppointmentsFilter struct {
	TenantID        int64              // Обязательный параметр
	ServiceID       *int64             // Фильтр по услуге (опционально)
	StartDate       *types.CivilDate   // Начало периода (опционально)
	EndDate         *types.CivilDate   // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые и no-show записи
}
