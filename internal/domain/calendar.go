package domain

import (
	"time"

	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// DayCell describes one cell of a resolved month grid. Cells with a zero
// Date are leading placeholders that pad the first week so day one lands on
// its weekday column.
type DayCell struct {
	Date               types.CivilDate
	IsPast             bool
	IsAvailableWeekday bool
	BookingCount       int
	Selectable         bool
}

// IsPlaceholder reports whether the cell pads the grid before day one.
func (c DayCell) IsPlaceholder() bool {
	return c.Date.IsZero()
}

// ResolveMonth derives the availability state of every day in the displayed
// month. The grid starts with one placeholder per weekday before the first of
// the month, then one cell per day in order.
//
// A day is past when it is strictly before today (today itself is not past).
// A day's weekday is available when the set is empty or contains it. Booking
// counts annotate the cell but never affect selectability: this is a
// multi-slot calendar, a day with bookings stays selectable unless it is past
// or off-availability.
//
// Pure: identical arguments always yield an identical grid, and nothing is
// cached between calls. The caller injects today instead of this function
// reading a clock.
func ResolveMonth(
	month time.Month,
	year int,
	today types.CivilDate,
	availability WeekdaySet,
	bookingCounts map[types.CivilDate]int,
) []DayCell {
	first := types.NewCivilDate(year, month, 1)
	daysInMonth := types.DaysInMonth(month, year)

	cells := make([]DayCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, DayCell{})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := types.NewCivilDate(year, month, day)
		isPast := date.Before(today)
		isAvailableWeekday := availability.Allows(date.Weekday())

		cells = append(cells, DayCell{
			Date:               date,
			IsPast:             isPast,
			IsAvailableWeekday: isAvailableWeekday,
			BookingCount:       bookingCounts[date],
			Selectable:         !isPast && isAvailableWeekday,
		})
	}

	return cells
}

// CountByDate groups active appointments into per-day totals for the
// BookingCount annotation.
func CountByDate(appointments []*Appointment) map[types.CivilDate]int {
	counts := make(map[types.CivilDate]int)
	for _, appointment := range appointments {
		if appointment.IsActive() {
			counts[appointment.Date]++
		}
	}
	return counts
}
