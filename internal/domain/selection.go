package domain

import "github.com/m04kA/BMC-AppointmentService/pkg/types"

// SelectionState is the current date/time choice of one booking flow.
// A set Time is only meaningful together with a set Date from the same
// computation cycle; the selection controller clears Time whenever Date
// changes or is cleared. Callers must not assume the pairing themselves.
type SelectionState struct {
	Date types.CivilDate  // zero = no date chosen
	Time *types.TimeOfDay // nil = no time chosen
}

// HasDate reports whether a date is chosen.
func (s SelectionState) HasDate() bool {
	return !s.Date.IsZero()
}

// HasTime reports whether a time is chosen.
func (s SelectionState) HasTime() bool {
	return s.Time != nil
}

// IsEmpty reports whether nothing is chosen.
func (s SelectionState) IsEmpty() bool {
	return !s.HasDate() && !s.HasTime()
}
