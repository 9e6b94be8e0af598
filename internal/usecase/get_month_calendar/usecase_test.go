package get_month_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/BMC-AppointmentService/internal/infra/storage/schedule"
	"github.com/m04kA/BMC-AppointmentService/internal/integrations/tenantservice"
	"github.com/m04kA/BMC-AppointmentService/pkg/ptr"
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
	counts       map[types.CivilDate]int
	gotServiceID *int64
}

func (r *stubAppointmentRepo) CountActiveByDate(_ context.Context, _ int64, serviceID *int64, _, _ types.CivilDate) (map[types.CivilDate]int, error) {
	r.gotServiceID = serviceID
	return r.counts, nil
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
	err error
}

func (c *stubTenantClient) GetTenant(_ context.Context, tenantID int64) (*tenantservice.Tenant, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &tenantservice.Tenant{ID: tenantID}, nil
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

func TestExecute_ResolvesMonth(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)
	busyDay := types.NewCivilDate(2026, time.January, 20)

	schedule := domain.DefaultScheduleConfig(1)
	schedule.AvailableWeekdays = domain.NewWeekdaySet(time.Monday, time.Wednesday)

	uc := newTestUseCase(
		&stubAppointmentRepo{counts: map[types.CivilDate]int{busyDay: 3}},
		&stubScheduleRepo{schedule: schedule},
		&stubTenantClient{},
		today,
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 1, Month: time.January, Year: 2026})
	require.NoError(t, err)

	assert.True(t, resp.Today.Equal(today))
	// 4 заполнителя перед четвергом 1 января + 31 день
	require.Len(t, resp.Cells, 35)

	byDate := make(map[types.CivilDate]domain.DayCell)
	for _, cell := range resp.Cells {
		if !cell.IsPlaceholder() {
			byDate[cell.Date] = cell
		}
	}

	// 2026-01-20 - вторник: день с записями, но недоступный по дню недели
	jan20 := byDate[busyDay]
	assert.Equal(t, 3, jan20.BookingCount)
	assert.False(t, jan20.Selectable)

	// 2026-01-19 - понедельник после "сегодня"
	jan19 := byDate[types.NewCivilDate(2026, time.January, 19)]
	assert.True(t, jan19.Selectable)

	// Понедельник до "сегодня" прошёл
	jan12 := byDate[types.NewCivilDate(2026, time.January, 12)]
	assert.True(t, jan12.IsPast)
	assert.False(t, jan12.Selectable)
}

func TestExecute_ServiceFilterPassedToRepo(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)
	repo := &stubAppointmentRepo{}

	uc := newTestUseCase(repo, &stubScheduleRepo{schedule: domain.DefaultScheduleConfig(1)}, &stubTenantClient{}, today)

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:  1,
		ServiceID: ptr.Ptr(int64(2)),
		Month:     time.January,
		Year:      2026,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.gotServiceID)
	assert.Equal(t, int64(2), *repo.gotServiceID)
}

func TestExecute_DefaultScheduleWhenNotStored(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)

	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&stubTenantClient{},
		today,
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 1, Month: time.January, Year: 2026})
	require.NoError(t, err)

	// Без сохранённого расписания любой будущий день доступен
	for _, cell := range resp.Cells {
		if !cell.IsPlaceholder() && !cell.IsPast {
			assert.True(t, cell.Selectable, "date %s", cell.Date)
		}
	}
}

func TestExecute_TenantNotFound(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)

	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubScheduleRepo{},
		&stubTenantClient{err: tenantservice.ErrTenantNotFound},
		today,
	)

	_, err := uc.Execute(context.Background(), &Request{TenantID: 1, Month: time.January, Year: 2026})
	require.ErrorIs(t, err, ErrTenantNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	today := types.NewCivilDate(2026, time.January, 16)

	uc := newTestUseCase(&stubAppointmentRepo{}, &stubScheduleRepo{}, &stubTenantClient{}, today)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero tenant", req: &Request{TenantID: 0, Month: time.January, Year: 2026}},
		{name: "zero service", req: &Request{TenantID: 1, ServiceID: ptr.Ptr(int64(0)), Month: time.January, Year: 2026}},
		{name: "month out of range", req: &Request{TenantID: 1, Month: 13, Year: 2026}},
		{name: "year out of range", req: &Request{TenantID: 1, Month: time.January, Year: 1800}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
