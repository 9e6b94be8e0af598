package types

import "errors"

var (
	// ErrInvalidTimeOfDay is returned for malformed 12-hour time strings and
	// for minute-of-day values outside [0, 1440).
	ErrInvalidTimeOfDay = errors.New("types: invalid time of day")

	// ErrInvalidCivilDate is returned for malformed date strings.
	ErrInvalidCivilDate = errors.New("types: invalid civil date")
)
