package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

func TestResolveMonth_Layout(t *testing.T) {
	// 2026-01-01 - четверг, перед ним 4 ячейки-заполнителя
	today := types.NewCivilDate(2026, time.January, 16)

	cells := ResolveMonth(time.January, 2026, today, nil, nil)
	require.Len(t, cells, 4+31)

	for i := 0; i < 4; i++ {
		assert.True(t, cells[i].IsPlaceholder(), "cell %d", i)
		assert.False(t, cells[i].Selectable, "cell %d", i)
	}

	first := cells[4]
	assert.Equal(t, types.NewCivilDate(2026, time.January, 1), first.Date)
	assert.Equal(t, time.Thursday, first.Date.Weekday())

	last := cells[len(cells)-1]
	assert.Equal(t, types.NewCivilDate(2026, time.January, 31), last.Date)
}

func TestResolveMonth_PastDays(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)

	cells := ResolveMonth(time.January, 2026, today, nil, nil)

	byDate := make(map[types.CivilDate]DayCell)
	for _, cell := range cells {
		if !cell.IsPlaceholder() {
			byDate[cell.Date] = cell
		}
	}

	// День до "сегодня" прошёл и не выбирается
	jan15 := byDate[types.NewCivilDate(2026, time.January, 15)]
	assert.True(t, jan15.IsPast)
	assert.False(t, jan15.Selectable)

	// "Сегодня" не считается прошедшим
	jan16 := byDate[types.NewCivilDate(2026, time.January, 16)]
	assert.False(t, jan16.IsPast)
	assert.True(t, jan16.Selectable)

	jan17 := byDate[types.NewCivilDate(2026, time.January, 17)]
	assert.False(t, jan17.IsPast)
	assert.True(t, jan17.Selectable)
}

func TestResolveMonth_WeekdayRestriction(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 1)
	availability := NewWeekdaySet(time.Monday, time.Wednesday)

	cells := ResolveMonth(time.January, 2026, today, availability, nil)

	for _, cell := range cells {
		if cell.IsPlaceholder() {
			continue
		}
		switch cell.Date.Weekday() {
		case time.Monday, time.Wednesday:
			assert.True(t, cell.IsAvailableWeekday, "date %s", cell.Date)
			assert.True(t, cell.Selectable, "date %s", cell.Date)
		default:
			assert.False(t, cell.IsAvailableWeekday, "date %s", cell.Date)
			assert.False(t, cell.Selectable, "date %s", cell.Date)
		}
	}
}

func TestResolveMonth_EmptySetAllowsAll(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 1)

	cells := ResolveMonth(time.January, 2026, today, NewWeekdaySet(), nil)

	for _, cell := range cells {
		if !cell.IsPlaceholder() {
			assert.True(t, cell.IsAvailableWeekday, "date %s", cell.Date)
		}
	}
}

func TestResolveMonth_BookingCounts(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 1)
	busyDay := types.NewCivilDate(2026, time.January, 20)

	counts := map[types.CivilDate]int{busyDay: 5}

	cells := ResolveMonth(time.January, 2026, today, nil, counts)

	for _, cell := range cells {
		if cell.IsPlaceholder() {
			continue
		}
		if cell.Date.Equal(busyDay) {
			assert.Equal(t, 5, cell.BookingCount)
			// Записи дня не лишают его выбираемости
			assert.True(t, cell.Selectable)
		} else {
			assert.Zero(t, cell.BookingCount)
		}
	}
}

// Одинаковые входы всегда дают одинаковую сетку
func TestResolveMonth_Deterministic(t *testing.T) {
	today := types.NewCivilDate(2026, time.March, 10)
	availability := NewWeekdaySet(time.Monday, time.Tuesday, time.Friday)
	counts := map[types.CivilDate]int{
		types.NewCivilDate(2026, time.March, 16): 2,
	}

	first := ResolveMonth(time.March, 2026, today, availability, counts)
	second := ResolveMonth(time.March, 2026, today, availability, counts)
	assert.Equal(t, first, second)
}

func TestCountByDate(t *testing.T) {
	day1 := types.NewCivilDate(2026, time.January, 10)
	day2 := types.NewCivilDate(2026, time.January, 11)

	appointments := []*Appointment{
		{Date: day1, Status: StatusPending},
		{Date: day1, Status: StatusConfirmed},
		{Date: day1, Status: StatusCancelledByUser},
		{Date: day2, Status: StatusCompleted},
	}

	counts := CountByDate(appointments)
	assert.Equal(t, 2, counts[day1])
	assert.Equal(t, 1, counts[day2])
}
