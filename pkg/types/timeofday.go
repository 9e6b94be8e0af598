package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// Meridiem markers of the 12-hour display format.
const (
	MeridiemAM = "am"
	MeridiemPM = "pm"
)

// TimeOfDay is a time within a day, counted in minutes since midnight.
// Valid values are in [0, 1440). This is the canonical representation for
// all slot arithmetic; the 12-hour "hh:mm am/pm" form exists only at the
// input/output boundary (see ParseDisplayTime and Display).
type TimeOfDay int

// TimeOfDayOf extracts the minute-of-day from t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// NewTimeOfDay builds a TimeOfDay from hour and minute components.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: hour=%d minute=%d", ErrInvalidTimeOfDay, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseDisplayTime parses a 12-hour "hh:mm am" / "hh:mm pm" string.
// Hour 12 maps to hour 0 for "am" and hour 12 for "pm"; all other hours gain
// 12 for "pm". Hour 00 is accepted as a synonym of 12. Malformed input is
// rejected with ErrInvalidTimeOfDay, never clamped or guessed.
func ParseDisplayTime(s string) (TimeOfDay, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: missing meridiem marker in %q", ErrInvalidTimeOfDay, s)
	}

	meridiem := fields[1]
	if meridiem != MeridiemAM && meridiem != MeridiemPM {
		return 0, fmt.Errorf("%w: unknown meridiem %q", ErrInvalidTimeOfDay, fields[1])
	}

	clock := strings.Split(fields[0], ":")
	if len(clock) != 2 {
		return 0, fmt.Errorf("%w: expected hh:mm, got %q", ErrInvalidTimeOfDay, fields[0])
	}

	hour, err := strconv.Atoi(clock[0])
	if err != nil {
		return 0, fmt.Errorf("%w: bad hour %q", ErrInvalidTimeOfDay, clock[0])
	}
	minute, err := strconv.Atoi(clock[1])
	if err != nil {
		return 0, fmt.Errorf("%w: bad minute %q", ErrInvalidTimeOfDay, clock[1])
	}

	if hour < 0 || hour > 12 {
		return 0, fmt.Errorf("%w: 12-hour clock hour out of range: %d", ErrInvalidTimeOfDay, hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: minute out of range: %d", ErrInvalidTimeOfDay, minute)
	}

	// 12 (and its synonym 00) is the start of the half-day: 12 am is hour 0,
	// 12 pm is hour 12. Every other pm hour gains 12.
	if hour == 12 || hour == 0 {
		hour = 0
	}
	if meridiem == MeridiemPM {
		hour += 12
	}

	return TimeOfDay(hour*60 + minute), nil
}

// Hour returns the 24-hour clock hour component.
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component.
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Valid reports whether t is within [0, 1440).
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Add returns t shifted by the given number of minutes. The result may fall
// outside the day; callers check Valid when that matters.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Before reports whether t is earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After reports whether t is later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// Display renders t in the 12-hour "hh:mm am/pm" form: hour 0 as "12 am",
// hours 1-11 as-is, hour 12 as "12 pm", hours 13-23 minus 12 with "pm".
// Display is the exact inverse of ParseDisplayTime.
func (t TimeOfDay) Display() string {
	hour := t.Hour()
	meridiem := MeridiemAM
	if hour >= 12 {
		meridiem = MeridiemPM
		hour -= 12
	}
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour, t.Minute(), meridiem)
}

// String renders t in the 24-hour "HH:MM" form, used for logs and storage dumps.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Value implements driver.Valuer. Stored as a minute-of-day integer.
func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTimeOfDay, int(t))
	}
	return int64(t), nil
}

// Scan implements sql.Scanner for minute-of-day integer columns.
func (t *TimeOfDay) Scan(value interface{}) error {
	switch v := value.(type) {
	case int64:
		parsed := TimeOfDay(v)
		if !parsed.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidTimeOfDay, v)
		}
		*t = parsed
		return nil
	case nil:
		*t = 0
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeOfDay", ErrInvalidTimeOfDay, value)
	}
}
