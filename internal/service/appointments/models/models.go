package models

import (
	"fmt"
	"time"

	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// AppointmentResponse модель записи для внешних слоёв
type AppointmentResponse struct {
	ID                 int64
	UserID             int64
	TenantID           int64
	ServiceID          int64
	Date               types.CivilDate
	StartTime          types.TimeOfDay
	DurationMinutes    int
	Status             string
	ServiceName        string
	ServicePrice       float64
	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse
	Total        int
}

// GetUserAppointmentsRequest запрос истории записей пользователя
type GetUserAppointmentsRequest struct {
	UserID int64
	Status *string
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	AppointmentID int64
	UserID        int64
	Reason        string
}

// FromDomainAppointment конвертирует доменную модель в ответ сервиса
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 a.ID,
		UserID:             a.UserID,
		TenantID:           a.TenantID,
		ServiceID:          a.ServiceID,
		Date:               a.Date,
		StartTime:          a.StartTime,
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		ServiceName:        a.ServiceName,
		ServicePrice:       a.ServicePrice,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CancelledAt:        a.CancelledAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных моделей
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		result[i] = *FromDomainAppointment(a)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// ToDomainAppointmentStatus валидирует и конвертирует строковый статус
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	switch status {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByTenant,
		domain.StatusNoShow:
		return status, nil
	default:
		return "", fmt.Errorf("unknown appointment status: %q", s)
	}
}
