package get_user_appointments

import (
	"time"

	"github.com/m04kA/BMC-AppointmentService/internal/service/appointments/models"
)

// AppointmentListResponse HTTP response model
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"userId"`
	TenantID           int64   `json:"tenantId"`
	ServiceID          int64   `json:"serviceId"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	Status             string  `json:"status"`
	ServiceName        string  `json:"serviceName"`
	ServicePrice       float64 `json:"servicePrice"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	appointments := make([]AppointmentResponse, len(resp.Appointments))
	for i, a := range resp.Appointments {
		var cancelledAt *string
		if a.CancelledAt != nil {
			s := a.CancelledAt.Format(time.RFC3339)
			cancelledAt = &s
		}

		appointments[i] = AppointmentResponse{
			ID:                 a.ID,
			UserID:             a.UserID,
			TenantID:           a.TenantID,
			ServiceID:          a.ServiceID,
			Date:               a.Date.String(),
			StartTime:          a.StartTime.Display(),
			DurationMinutes:    a.DurationMinutes,
			Status:             a.Status,
			ServiceName:        a.ServiceName,
			ServicePrice:       a.ServicePrice,
			Notes:              a.Notes,
			CancellationReason: a.CancellationReason,
			CancelledAt:        cancelledAt,
			CreatedAt:          a.CreatedAt.Format(time.RFC3339),
			UpdatedAt:          a.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &AppointmentListResponse{
		Appointments: appointments,
		Total:        resp.Total,
	}
}
