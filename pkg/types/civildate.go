package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CivilDateFormat is the wire format for calendar dates (YYYY-MM-DD).
const CivilDateFormat = "2006-01-02"

// CivilDate is a calendar date without a time component.
// The zero value means "no date". Two CivilDates compare by calendar day,
// never by time-of-day.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCivilDate builds a CivilDate from its components.
// Out-of-range components are normalized the same way time.Date normalizes them.
func NewCivilDate(year int, month time.Month, day int) CivilDate {
	return CivilDateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// CivilDateOf extracts the calendar day from t, discarding the time-of-day.
func CivilDateOf(t time.Time) CivilDate {
	year, month, day := t.Date()
	return CivilDate{Year: year, Month: month, Day: day}
}

// ParseCivilDate parses a YYYY-MM-DD string.
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse(CivilDateFormat, s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("%w: %v", ErrInvalidCivilDate, err)
	}
	return CivilDateOf(t), nil
}

// IsZero reports whether d is the empty date.
func (d CivilDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time returns midnight UTC of the date.
func (d CivilDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of week (Sunday = 0).
func (d CivilDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d is an earlier calendar day than other.
func (d CivilDate) Before(other CivilDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is a later calendar day than other.
func (d CivilDate) After(other CivilDate) bool {
	return other.Before(d)
}

// Equal reports calendar-day equality.
func (d CivilDate) Equal(other CivilDate) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// AddDays returns the date n days after d (n may be negative).
func (d CivilDate) AddDays(n int) CivilDate {
	return CivilDateOf(d.Time().AddDate(0, 0, n))
}

// String renders the date as YYYY-MM-DD.
func (d CivilDate) String() string {
	return d.Time().Format(CivilDateFormat)
}

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(month time.Month, year int) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Value implements driver.Valuer. Stored as a DATE.
func (d CivilDate) Value() (driver.Value, error) {
	return d.Time(), nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *CivilDate) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = CivilDateOf(v)
		return nil
	case []byte:
		parsed, err := ParseCivilDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseCivilDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = CivilDate{}
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into CivilDate", ErrInvalidCivilDate, value)
	}
}
