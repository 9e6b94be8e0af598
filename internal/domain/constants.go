package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultAdvanceBookingDays  = 0 // 0 = unlimited
	DefaultOpenMinute          = 9 * 60
	DefaultCloseMinute         = 18 * 60
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Day-period hour boundaries (half-open, 24-hour clock)
const (
	MorningStartHour   = 5
	AfternoonStartHour = 12
	EveningStartHour   = 17
	NightStartHour     = 20
)

// DateFormat is the wire format for dates (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// InactiveStatuses список статусов неактивных записей
// Используется для фильтрации при подсчёте занятых слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByUser,
	StatusCancelledByTenant,
	StatusNoShow,
}

// ActiveStatuses список статусов активных записей
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
