package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// ErrInvalidBusinessHours is returned when closing time is not after opening
// time. The slot generator refuses such a window instead of wrapping it past
// midnight.
var ErrInvalidBusinessHours = errors.New("domain: business hours end must be after start")

// BusinessHours is a same-day working window. Slots never cross midnight.
type BusinessHours struct {
	Open  types.TimeOfDay
	Close types.TimeOfDay
}

// Validate checks that both bounds are minutes of one day and Open < Close.
// Close may equal 1440 so an all-day window can end at midnight.
func (h BusinessHours) Validate() error {
	if !h.Open.Valid() || h.Close < 0 || h.Close > types.MinutesPerDay {
		return fmt.Errorf("%w: open=%d close=%d out of range", ErrInvalidBusinessHours, int(h.Open), int(h.Close))
	}
	if !h.Open.Before(h.Close) {
		return fmt.Errorf("%w: open=%s close=%s", ErrInvalidBusinessHours, h.Open, h.Close)
	}
	return nil
}

// WeekdaySet is a set of weekdays on which bookings are permitted.
// An empty (or nil) set means no day-of-week restriction.
type WeekdaySet map[time.Weekday]struct{}

// NewWeekdaySet builds a set from the listed weekdays.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	set := make(WeekdaySet, len(days))
	for _, day := range days {
		set[day] = struct{}{}
	}
	return set
}

// Contains reports set membership.
func (s WeekdaySet) Contains(day time.Weekday) bool {
	_, ok := s[day]
	return ok
}

// Allows reports whether bookings are permitted on the given weekday.
// An empty set permits every day.
func (s WeekdaySet) Allows(day time.Weekday) bool {
	return len(s) == 0 || s.Contains(day)
}

// List returns the members in Sunday-first order.
func (s WeekdaySet) List() []time.Weekday {
	days := make([]time.Weekday, 0, len(s))
	for day := time.Sunday; day <= time.Saturday; day++ {
		if s.Contains(day) {
			days = append(days, day)
		}
	}
	return days
}

// ScheduleConfig represents the booking schedule configuration of a tenant
type ScheduleConfig struct {
	ID                  int64
	TenantID            int64
	OpenTime            types.TimeOfDay
	CloseTime           types.TimeOfDay
	SlotDurationMinutes int
	AvailableWeekdays   WeekdaySet // empty = every day
	AdvanceBookingDays  int        // 0 = unlimited
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Hours returns the configured working window.
func (c *ScheduleConfig) Hours() BusinessHours {
	return BusinessHours{Open: c.OpenTime, Close: c.CloseTime}
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *ScheduleConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// HasWeekdayRestriction returns true if bookings are limited to specific weekdays
func (c *ScheduleConfig) HasWeekdayRestriction() bool {
	return len(c.AvailableWeekdays) > 0
}

// DefaultScheduleConfig returns the configuration used when a tenant has not
// stored one: 09:00-18:00, 30-minute slots, every weekday bookable.
func DefaultScheduleConfig(tenantID int64) *ScheduleConfig {
	return &ScheduleConfig{
		TenantID:            tenantID,
		OpenTime:            types.TimeOfDay(DefaultOpenMinute),
		CloseTime:           types.TimeOfDay(DefaultCloseMinute),
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		AvailableWeekdays:   nil,
		AdvanceBookingDays:  DefaultAdvanceBookingDays,
	}
}
