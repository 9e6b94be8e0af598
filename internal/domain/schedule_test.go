package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

func TestBusinessHours_Validate(t *testing.T) {
	tests := []struct {
		name    string
		hours   BusinessHours
		wantErr bool
	}{
		{name: "valid", hours: BusinessHours{Open: types.TimeOfDay(9 * 60), Close: types.TimeOfDay(18 * 60)}},
		{name: "close before open", hours: BusinessHours{Open: types.TimeOfDay(18 * 60), Close: types.TimeOfDay(9 * 60)}, wantErr: true},
		{name: "close equals open", hours: BusinessHours{Open: types.TimeOfDay(9 * 60), Close: types.TimeOfDay(9 * 60)}, wantErr: true},
		{name: "open out of range", hours: BusinessHours{Open: types.TimeOfDay(-1), Close: types.TimeOfDay(9 * 60)}, wantErr: true},
		{name: "close out of range", hours: BusinessHours{Open: types.TimeOfDay(9 * 60), Close: types.TimeOfDay(types.MinutesPerDay + 1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hours.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidBusinessHours)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestWeekdaySet_Allows(t *testing.T) {
	set := NewWeekdaySet(time.Monday, time.Wednesday)

	assert.True(t, set.Allows(time.Monday))
	assert.True(t, set.Allows(time.Wednesday))
	assert.False(t, set.Allows(time.Sunday))
	assert.False(t, set.Allows(time.Saturday))

	// Пустой набор разрешает любой день
	empty := NewWeekdaySet()
	for day := time.Sunday; day <= time.Saturday; day++ {
		assert.True(t, empty.Allows(day), "day %s", day)
	}
}

func TestWeekdaySet_List(t *testing.T) {
	set := NewWeekdaySet(time.Friday, time.Monday, time.Wednesday)

	// Список отсортирован начиная с воскресенья
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, set.List())
}

func TestDefaultScheduleConfig(t *testing.T) {
	cfg := DefaultScheduleConfig(42)

	assert.Equal(t, int64(42), cfg.TenantID)
	assert.Equal(t, types.TimeOfDay(DefaultOpenMinute), cfg.OpenTime)
	assert.Equal(t, types.TimeOfDay(DefaultCloseMinute), cfg.CloseTime)
	assert.Equal(t, DefaultSlotDurationMinutes, cfg.SlotDurationMinutes)
	assert.False(t, cfg.HasWeekdayRestriction())
	assert.False(t, cfg.HasAdvanceBookingLimit())

	hours := cfg.Hours()
	require.NoError(t, hours.Validate())
}
