package create_appointment

import (
	"fmt"

	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.StartTime.Valid() {
		return fmt.Errorf("%w: startTime out of range", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом и не выходит
// за горизонт advanceBookingDays
func validateDate(date, today types.CivilDate, advanceBookingDays int) error {
	if date.Before(today) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, date)
	}

	if advanceBookingDays > 0 {
		maxDate := today.AddDays(advanceBookingDays)
		if date.After(maxDate) {
			return fmt.Errorf("%w: date %s is beyond %d days limit", ErrDateTooFarInFuture, date, advanceBookingDays)
		}
	}

	return nil
}
