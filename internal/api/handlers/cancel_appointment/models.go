package cancel_appointment

import (
	"time"

	"github.com/m04kA/BMC-AppointmentService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
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
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		s := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &s
	}

	return &AppointmentResponse{
		ID:                 resp.ID,
		UserID:             resp.UserID,
		TenantID:           resp.TenantID,
		ServiceID:          resp.ServiceID,
		Date:               resp.Date.String(),
		StartTime:          resp.StartTime.Display(),
		DurationMinutes:    resp.DurationMinutes,
		Status:             resp.Status,
		ServiceName:        resp.ServiceName,
		ServicePrice:       resp.ServicePrice,
		Notes:              resp.Notes,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
