package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	tod, err := types.ParseDisplayTime(s)
	require.NoError(t, err)
	return tod
}

func TestGenerateSlots_StandardDay(t *testing.T) {
	// 09:00 - 17:00 шагом 30 минут дают ровно 16 слотов
	hours := BusinessHours{Open: mustTime(t, "09:00 am"), Close: mustTime(t, "05:00 pm")}

	slots, err := GenerateSlots(30, &hours)
	require.NoError(t, err)
	require.Len(t, slots, 16)

	assert.Equal(t, mustTime(t, "09:00 am"), slots[0].Start)
	assert.Equal(t, mustTime(t, "09:30 am"), slots[1].Start)
	assert.Equal(t, mustTime(t, "04:30 pm"), slots[15].Start)

	// Сетка строго возрастает и не выходит за закрытие
	for i, slot := range slots {
		assert.Equal(t, 30, slot.DurationMinutes)
		assert.LessOrEqual(t, int(slot.End()), int(hours.Close))
		if i > 0 {
			assert.True(t, slots[i-1].Start.Before(slot.Start))
		}
	}
}

func TestGenerateSlots_HourStep(t *testing.T) {
	hours := BusinessHours{Open: mustTime(t, "09:00 am"), Close: mustTime(t, "06:00 pm")}

	slots, err := GenerateSlots(60, &hours)
	require.NoError(t, err)
	require.Len(t, slots, 9)

	assert.Equal(t, mustTime(t, "09:00 am"), slots[0].Start)
	assert.Equal(t, mustTime(t, "05:00 pm"), slots[8].Start)
}

func TestGenerateSlots_DropsPartialTrailingSlot(t *testing.T) {
	// 09:00 - 10:45 шагом 30 минут: последний неполный слот 10:30-11:00 отбрасывается
	hours := BusinessHours{Open: types.TimeOfDay(9 * 60), Close: types.TimeOfDay(10*60 + 45)}

	slots, err := GenerateSlots(30, &hours)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, types.TimeOfDay(10*60), slots[2].Start)
}

func TestGenerateSlots_DefaultDuration(t *testing.T) {
	hours := BusinessHours{Open: types.TimeOfDay(9 * 60), Close: types.TimeOfDay(10 * 60)}

	for _, duration := range []int{0, -15} {
		slots, err := GenerateSlots(duration, &hours)
		require.NoError(t, err)
		require.Len(t, slots, 2, "duration %d", duration)
		assert.Equal(t, DefaultSlotDurationMinutes, slots[0].DurationMinutes)
	}
}

func TestGenerateSlots_InvalidHours(t *testing.T) {
	tests := []struct {
		name  string
		hours BusinessHours
	}{
		{name: "close before open", hours: BusinessHours{Open: types.TimeOfDay(18 * 60), Close: types.TimeOfDay(9 * 60)}},
		{name: "close equals open", hours: BusinessHours{Open: types.TimeOfDay(9 * 60), Close: types.TimeOfDay(9 * 60)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(30, &tt.hours)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidBusinessHours)
			assert.Nil(t, slots)
		})
	}
}

func TestGenerateSlots_FullDayWindow(t *testing.T) {
	slots, err := GenerateSlots(60, nil)
	require.NoError(t, err)
	require.Len(t, slots, 24)
	assert.Equal(t, types.TimeOfDay(0), slots[0].Start)
	assert.Equal(t, types.TimeOfDay(23*60), slots[23].Start)
}

func TestGenerateSlots_AssignsPeriods(t *testing.T) {
	hours := BusinessHours{Open: types.TimeOfDay(11 * 60), Close: types.TimeOfDay(13 * 60)}

	slots, err := GenerateSlots(60, &hours)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, PeriodMorning, slots[0].Period)
	assert.Equal(t, PeriodAfternoon, slots[1].Period)
}

func TestMarkBooked(t *testing.T) {
	hours := BusinessHours{Open: types.TimeOfDay(9 * 60), Close: types.TimeOfDay(11 * 60)}
	slots, err := GenerateSlots(30, &hours)
	require.NoError(t, err)

	booked := map[types.TimeOfDay]struct{}{
		types.TimeOfDay(9*60 + 30): {},
	}

	marked := MarkBooked(slots, booked)
	require.Len(t, marked, 4)
	assert.False(t, marked[0].IsBooked)
	assert.True(t, marked[1].IsBooked)
	assert.False(t, marked[2].IsBooked)
	assert.False(t, marked[3].IsBooked)

	// Занятые слоты остаются в сетке, а порядок не меняется
	for i, sa := range marked {
		assert.Equal(t, slots[i], sa.Slot)
	}
}

func TestMarkBooked_Idempotent(t *testing.T) {
	hours := BusinessHours{Open: types.TimeOfDay(9 * 60), Close: types.TimeOfDay(10 * 60)}
	slots, err := GenerateSlots(30, &hours)
	require.NoError(t, err)

	booked := map[types.TimeOfDay]struct{}{types.TimeOfDay(9 * 60): {}}

	first := MarkBooked(slots, booked)
	second := MarkBooked(slots, booked)
	assert.Equal(t, first, second)
}

func TestBookedSetOf_SkipsInactive(t *testing.T) {
	appointments := []*Appointment{
		{StartTime: types.TimeOfDay(9 * 60), Status: StatusPending},
		{StartTime: types.TimeOfDay(10 * 60), Status: StatusConfirmed},
		{StartTime: types.TimeOfDay(11 * 60), Status: StatusCancelledByUser},
		{StartTime: types.TimeOfDay(12 * 60), Status: StatusCancelledByTenant},
		{StartTime: types.TimeOfDay(13 * 60), Status: StatusNoShow},
	}

	booked := BookedSetOf(appointments)
	assert.Contains(t, booked, types.TimeOfDay(9*60))
	assert.Contains(t, booked, types.TimeOfDay(10*60))
	assert.NotContains(t, booked, types.TimeOfDay(11*60))
	assert.NotContains(t, booked, types.TimeOfDay(12*60))
	assert.NotContains(t, booked, types.TimeOfDay(13*60))
}
