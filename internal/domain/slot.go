package domain

import "github.com/m04kA/BMC-AppointmentService/pkg/types"

// TimeSlot represents one bookable interval of a day grid
type TimeSlot struct {
	Start           types.TimeOfDay
	DurationMinutes int
	Period          DayPeriod
}

// End returns the minute the slot finishes. May equal 1440 for the last
// slot of a full-day grid.
func (s TimeSlot) End() types.TimeOfDay {
	return s.Start.Add(s.DurationMinutes)
}

// SlotAvailability pairs a slot with its booking state. Booked slots stay in
// the sequence so the caller can render them, but must not offer them for
// selection.
type SlotAvailability struct {
	Slot     TimeSlot
	IsBooked bool
}

// GenerateSlots produces the ordered slot grid for one day.
//
// A nil hours means the full day [0, 1440), for callers that apply their own
// windowing. A non-positive duration substitutes DefaultSlotDurationMinutes:
// a zero step would never terminate, so this is deliberate policy rather than
// an error. The grid steps from opening time in fixed increments; a partial
// trailing slot that would cross closing time is dropped, so every emitted
// slot covers a full service duration. Invalid hours (close not after open)
// return ErrInvalidBusinessHours and no slots.
func GenerateSlots(durationMinutes int, hours *BusinessHours) ([]TimeSlot, error) {
	if durationMinutes <= 0 {
		durationMinutes = DefaultSlotDurationMinutes
	}

	open, close := 0, types.MinutesPerDay
	if hours != nil {
		if err := hours.Validate(); err != nil {
			return nil, err
		}
		open, close = int(hours.Open), int(hours.Close)
	}

	slots := make([]TimeSlot, 0, (close-open)/durationMinutes)
	for start := open; start+durationMinutes <= close; start += durationMinutes {
		startTime := types.TimeOfDay(start)
		slots = append(slots, TimeSlot{
			Start:           startTime,
			DurationMinutes: durationMinutes,
			Period:          ClassifyPeriod(startTime),
		})
	}

	return slots, nil
}

// MarkBooked tags each slot with whether its start minute is already
// reserved. Matching is numeric by minute-of-day; 12-hour labels are parsed
// to TimeOfDay before they reach this function, so a relabelled grid cannot
// silently miss a booking. Pure: the input slice is not modified.
func MarkBooked(slots []TimeSlot, booked map[types.TimeOfDay]struct{}) []SlotAvailability {
	result := make([]SlotAvailability, len(slots))
	for i, slot := range slots {
		_, isBooked := booked[slot.Start]
		result[i] = SlotAvailability{Slot: slot, IsBooked: isBooked}
	}
	return result
}

// BookedSetOf collects the start minutes of the active appointments.
func BookedSetOf(appointments []*Appointment) map[types.TimeOfDay]struct{} {
	booked := make(map[types.TimeOfDay]struct{}, len(appointments))
	for _, appointment := range appointments {
		if appointment.IsActive() {
			booked[appointment.StartTime] = struct{}{}
		}
	}
	return booked
}
