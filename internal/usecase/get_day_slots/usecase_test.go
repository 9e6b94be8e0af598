package get_day_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/BMC-AppointmentService/internal/infra/storage/schedule"
	"github.com/m04kA/BMC-AppointmentService/internal/integrations/tenantservice"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type stubTimeProvider struct {
	now time.Time
}

func (p *stubTimeProvider) Now() time.Time { return p.now }

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	gotFilter    domain.TenantAppointmentsFilter
}

func (r *stubAppointmentRepo) GetByTenantWithFilter(_ context.Context, filter domain.TenantAppointmentsFilter) ([]*domain.Appointment, error) {
	r.gotFilter = filter
	return r.appointments, r.err
}

type stubScheduleRepo struct {
	schedule *domain.ScheduleConfig
	err      error
}

func (r *stubScheduleRepo) GetByTenant(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.schedule, nil
}

type stubTenantClient struct {
	tenant     *tenantservice.Tenant
	tenantErr  error
	service    *tenantservice.Service
	serviceErr error
}

func (c *stubTenantClient) GetTenant(_ context.Context, _ int64) (*tenantservice.Tenant, error) {
	return c.tenant, c.tenantErr
}

func (c *stubTenantClient) GetService(_ context.Context, _, _ int64) (*tenantservice.Service, error) {
	return c.service, c.serviceErr
}

func newTestUseCase(
	appointments *stubAppointmentRepo,
	schedules *stubScheduleRepo,
	tenants *stubTenantClient,
	today types.CivilDate,
) *UseCase {
	uc := NewUseCase(appointments, schedules, tenants, stubLogger{})
	uc.timeProvider = &stubTimeProvider{now: today.Time().Add(8 * time.Hour)}
	return uc
}

func testSchedule(tenantID int64) *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		TenantID:            tenantID,
		OpenTime:            types.TimeOfDay(9 * 60),
		CloseTime:           types.TimeOfDay(17 * 60),
		SlotDurationMinutes: 30,
	}
}

func TestExecute_GeneratesGrid(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)
	date := types.NewCivilDate(2026, time.January, 20)

	appointments := &stubAppointmentRepo{}
	uc := newTestUseCase(
		appointments,
		&stubScheduleRepo{schedule: testSchedule(1)},
		&stubTenantClient{
			tenant:  &tenantservice.Tenant{ID: 1},
			service: &tenantservice.Service{ID: 2, DurationMinutes: 30},
		},
		today,
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 1, ServiceID: 2, Date: date})
	require.NoError(t, err)

	// 09:00 - 17:00 шагом 30 минут
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, types.TimeOfDay(9*60), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeOfDay(16*60+30), resp.Slots[15].StartTime)
	for _, slot := range resp.Slots {
		assert.False(t, slot.IsBooked)
	}

	// Запрашивались записи ровно на эту дату
	require.NotNil(t, appointments.gotFilter.StartDate)
	assert.True(t, appointments.gotFilter.StartDate.Equal(date))
	require.NotNil(t, appointments.gotFilter.EndDate)
	assert.True(t, appointments.gotFilter.EndDate.Equal(date))
}

func TestExecute_MarksBookedSlots(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)
	date := types.NewCivilDate(2026, time.January, 20)

	uc := newTestUseCase(
		&stubAppointmentRepo{appointments: []*domain.Appointment{
			{Date: date, StartTime: types.TimeOfDay(14 * 60), Status: domain.StatusConfirmed},
			{Date: date, StartTime: types.TimeOfDay(15 * 60), Status: domain.StatusCancelledByUser},
		}},
		&stubScheduleRepo{schedule: testSchedule(1)},
		&stubTenantClient{
			tenant:  &tenantservice.Tenant{ID: 1},
			service: &tenantservice.Service{ID: 2, DurationMinutes: 60},
		},
		today,
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 1, ServiceID: 2, Date: date})
	require.NoError(t, err)

	// 09:00 - 17:00 шагом 60 минут
	require.Len(t, resp.Slots, 8)

	byStart := make(map[types.TimeOfDay]Slot)
	for _, slot := range resp.Slots {
		byStart[slot.StartTime] = slot
	}

	assert.True(t, byStart[types.TimeOfDay(14*60)].IsBooked)
	// Отменённая запись слот не занимает
	assert.False(t, byStart[types.TimeOfDay(15*60)].IsBooked)
	assert.False(t, byStart[types.TimeOfDay(9*60)].IsBooked)
}

func TestExecute_DefaultScheduleWhenNotStored(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)
	date := types.NewCivilDate(2026, time.January, 20)

	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&stubTenantClient{
			tenant:  &tenantservice.Tenant{ID: 1},
			service: &tenantservice.Service{ID: 2, DurationMinutes: 30},
		},
		today,
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 1, ServiceID: 2, Date: date})
	require.NoError(t, err)

	// Дефолт 09:00 - 18:00 шагом 30 минут
	require.Len(t, resp.Slots, 18)
}

func TestExecute_ClosedWeekdayReturnsEmptyGrid(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)
	// 2026-01-18 - воскресенье
	sunday := types.NewCivilDate(2026, time.January, 18)

	schedule := testSchedule(1)
	schedule.AvailableWeekdays = domain.NewWeekdaySet(time.Monday, time.Wednesday)

	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubScheduleRepo{schedule: schedule},
		&stubTenantClient{
			tenant:  &tenantservice.Tenant{ID: 1},
			service: &tenantservice.Service{ID: 2, DurationMinutes: 30},
		},
		today,
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 1, ServiceID: 2, Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DateValidation(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)

	schedule := testSchedule(1)
	schedule.AdvanceBookingDays = 30

	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubScheduleRepo{schedule: schedule},
		&stubTenantClient{
			tenant:  &tenantservice.Tenant{ID: 1},
			service: &tenantservice.Service{ID: 2, DurationMinutes: 30},
		},
		today,
	)

	tests := []struct {
		name    string
		date    types.CivilDate
		wantErr error
	}{
		{name: "past date", date: today.AddDays(-1), wantErr: ErrInvalidDate},
		{name: "beyond advance limit", date: today.AddDays(31), wantErr: ErrDateTooFarInFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{TenantID: 1, ServiceID: 2, Date: tt.date})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Граница горизонта включительно
	_, err := uc.Execute(context.Background(), &Request{TenantID: 1, ServiceID: 2, Date: today.AddDays(30)})
	require.NoError(t, err)
}

func TestExecute_TenantAndServiceErrors(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)
	date := types.NewCivilDate(2026, time.January, 20)

	t.Run("tenant not found", func(t *testing.T) {
		uc := newTestUseCase(
			&stubAppointmentRepo{},
			&stubScheduleRepo{schedule: testSchedule(1)},
			&stubTenantClient{tenantErr: tenantservice.ErrTenantNotFound},
			today,
		)

		_, err := uc.Execute(context.Background(), &Request{TenantID: 1, ServiceID: 2, Date: date})
		require.ErrorIs(t, err, ErrTenantNotFound)
	})

	t.Run("service not found", func(t *testing.T) {
		uc := newTestUseCase(
			&stubAppointmentRepo{},
			&stubScheduleRepo{schedule: testSchedule(1)},
			&stubTenantClient{
				tenant:     &tenantservice.Tenant{ID: 1},
				serviceErr: tenantservice.ErrServiceNotFound,
			},
			today,
		)

		_, err := uc.Execute(context.Background(), &Request{TenantID: 1, ServiceID: 2, Date: date})
		require.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestExecute_InvalidInput(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)

	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubScheduleRepo{schedule: testSchedule(1)},
		&stubTenantClient{},
		today,
	)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero tenant", req: &Request{TenantID: 0, ServiceID: 2, Date: today}},
		{name: "zero service", req: &Request{TenantID: 1, ServiceID: 0, Date: today}},
		{name: "zero date", req: &Request{TenantID: 1, ServiceID: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
