package domain

import "github.com/m04kA/BMC-AppointmentService/pkg/types"

// DayPeriod is the part of the day a slot falls into.
type DayPeriod string

const (
	PeriodMorning   DayPeriod = "morning"
	PeriodAfternoon DayPeriod = "afternoon"
	PeriodEvening   DayPeriod = "evening"
	PeriodNight     DayPeriod = "night"
)

// ClassifyPeriod maps a time of day to its period, purely by hour:
// [5,12) morning, [12,17) afternoon, [17,20) evening, [20,24) and [0,5) night.
// The ranges are half-open and cover every hour exactly once.
func ClassifyPeriod(t types.TimeOfDay) DayPeriod {
	hour := t.Hour()
	switch {
	case hour >= MorningStartHour && hour < AfternoonStartHour:
		return PeriodMorning
	case hour >= AfternoonStartHour && hour < EveningStartHour:
		return PeriodAfternoon
	case hour >= EveningStartHour && hour < NightStartHour:
		return PeriodEvening
	default:
		return PeriodNight
	}
}
