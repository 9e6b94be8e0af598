package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/BMC-AppointmentService/internal/infra/storage/schedule"
	"github.com/m04kA/BMC-AppointmentService/internal/integrations/tenantservice"
	"github.com/m04kA/BMC-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type stubRepo struct {
	stored   *domain.ScheduleConfig
	upserted *domain.ScheduleConfig
}

func (r *stubRepo) GetByTenant(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	if r.stored == nil {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return r.stored, nil
}

func (r *stubRepo) Upsert(_ context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	stored := *config
	stored.ID = 11
	r.upserted = &stored
	return &stored, nil
}

func (r *stubRepo) Delete(_ context.Context, _ int64) error {
	return nil
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

func validUpdateRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		TenantID:            1,
		UserID:              7,
		OpenTime:            types.TimeOfDay(10 * 60),
		CloseTime:           types.TimeOfDay(19 * 60),
		SlotDurationMinutes: 45,
		AvailableWeekdays:   []time.Weekday{time.Monday, time.Tuesday},
		AdvanceBookingDays:  60,
	}
}

func TestGetByTenant(t *testing.T) {
	t.Run("stored schedule", func(t *testing.T) {
		repo := &stubRepo{stored: &domain.ScheduleConfig{
			ID:                  11,
			TenantID:            1,
			OpenTime:            types.TimeOfDay(10 * 60),
			CloseTime:           types.TimeOfDay(19 * 60),
			SlotDurationMinutes: 45,
		}}
		svc := NewService(repo, &stubTenantClient{}, stubLogger{})

		resp, err := svc.GetByTenant(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, resp.Stored)
		assert.Equal(t, types.TimeOfDay(10*60), resp.OpenTime)
	})

	t.Run("defaults when not stored", func(t *testing.T) {
		svc := NewService(&stubRepo{}, &stubTenantClient{}, stubLogger{})

		resp, err := svc.GetByTenant(context.Background(), 1)
		require.NoError(t, err)
		assert.False(t, resp.Stored)
		assert.Equal(t, types.TimeOfDay(domain.DefaultOpenMinute), resp.OpenTime)
		assert.Equal(t, types.TimeOfDay(domain.DefaultCloseMinute), resp.CloseTime)
		assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	})
}

func TestUpdate(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, &stubTenantClient{}, stubLogger{})

	resp, err := svc.Update(context.Background(), validUpdateRequest())
	require.NoError(t, err)

	assert.True(t, resp.Stored)
	assert.Equal(t, 45, resp.SlotDurationMinutes)
	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday}, resp.AvailableWeekdays)

	require.NotNil(t, repo.upserted)
	assert.True(t, repo.upserted.AvailableWeekdays.Contains(time.Monday))
	assert.False(t, repo.upserted.AvailableWeekdays.Contains(time.Sunday))
}

func TestUpdate_TenantNotFound(t *testing.T) {
	svc := NewService(&stubRepo{}, &stubTenantClient{err: tenantservice.ErrTenantNotFound}, stubLogger{})

	_, err := svc.Update(context.Background(), validUpdateRequest())
	require.ErrorIs(t, err, ErrTenantNotFound)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(&stubRepo{}, &stubTenantClient{}, stubLogger{})

	tests := []struct {
		name    string
		mutate  func(req *models.UpdateScheduleRequest)
		wantErr error
	}{
		{
			name:    "close before open",
			mutate:  func(req *models.UpdateScheduleRequest) { req.OpenTime, req.CloseTime = req.CloseTime, req.OpenTime },
			wantErr: ErrInvalidHours,
		},
		{
			name:    "close equals open",
			mutate:  func(req *models.UpdateScheduleRequest) { req.CloseTime = req.OpenTime },
			wantErr: ErrInvalidHours,
		},
		{
			name:    "open out of day",
			mutate:  func(req *models.UpdateScheduleRequest) { req.OpenTime = types.TimeOfDay(types.MinutesPerDay) },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "slot duration too short",
			mutate:  func(req *models.UpdateScheduleRequest) { req.SlotDurationMinutes = 1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "slot duration too long",
			mutate:  func(req *models.UpdateScheduleRequest) { req.SlotDurationMinutes = 9 * 60 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "advance days negative",
			mutate:  func(req *models.UpdateScheduleRequest) { req.AdvanceBookingDays = -1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "advance days too big",
			mutate:  func(req *models.UpdateScheduleRequest) { req.AdvanceBookingDays = 1000 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "weekday out of range",
			mutate:  func(req *models.UpdateScheduleRequest) { req.AvailableWeekdays = []time.Weekday{7} },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdateRequest()
			tt.mutate(req)

			_, err := svc.Update(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
