package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

func TestClassifyPeriod(t *testing.T) {
	tests := []struct {
		name string
		hour int
		want DayPeriod
	}{
		{name: "midnight", hour: 0, want: PeriodNight},
		{name: "early morning", hour: 4, want: PeriodNight},
		{name: "morning start", hour: 5, want: PeriodMorning},
		{name: "late morning", hour: 11, want: PeriodMorning},
		{name: "noon", hour: 12, want: PeriodAfternoon},
		{name: "late afternoon", hour: 16, want: PeriodAfternoon},
		{name: "evening start", hour: 17, want: PeriodEvening},
		{name: "late evening", hour: 19, want: PeriodEvening},
		{name: "night start", hour: 20, want: PeriodNight},
		{name: "late night", hour: 23, want: PeriodNight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPeriod(types.TimeOfDay(tt.hour*60)))
		})
	}
}

// Каждый час суток попадает ровно в один период, минуты внутри часа
// классификацию не меняют
func TestClassifyPeriod_Total(t *testing.T) {
	valid := map[DayPeriod]bool{
		PeriodMorning:   true,
		PeriodAfternoon: true,
		PeriodEvening:   true,
		PeriodNight:     true,
	}

	for hour := 0; hour < 24; hour++ {
		onTheHour := ClassifyPeriod(types.TimeOfDay(hour * 60))
		assert.True(t, valid[onTheHour], "hour %d", hour)

		lastMinute := ClassifyPeriod(types.TimeOfDay(hour*60 + 59))
		assert.Equal(t, onTheHour, lastMinute, "hour %d", hour)
	}
}
