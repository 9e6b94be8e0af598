package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/BMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/BMC-AppointmentService/internal/integrations/tenantservice"
	"github.com/m04kA/BMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type stubRepo struct {
	byID      map[int64]*domain.Appointment
	byUser    []*domain.Appointment
	gotStatus *domain.AppointmentStatus

	cancelledID     int64
	cancelledStatus domain.AppointmentStatus
	cancelledReason string
}

func (r *stubRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appointment, ok := r.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appointment, nil
}

func (r *stubRepo) GetByUserID(_ context.Context, _ int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	r.gotStatus = status
	return r.byUser, nil
}

func (r *stubRepo) GetByTenantWithFilter(_ context.Context, _ domain.TenantAppointmentsFilter) ([]*domain.Appointment, error) {
	return nil, nil
}

func (r *stubRepo) Cancel(_ context.Context, id int64, status domain.AppointmentStatus, reason string) error {
	r.cancelledID = id
	r.cancelledStatus = status
	r.cancelledReason = reason

	appointment := r.byID[id]
	appointment.Status = status
	appointment.CancellationReason = &reason
	now := time.Now()
	appointment.CancelledAt = &now
	return nil
}

type stubTenantClient struct{}

func (stubTenantClient) GetTenant(_ context.Context, tenantID int64) (*tenantservice.Tenant, error) {
	return &tenantservice.Tenant{ID: tenantID}, nil
}

func testAppointment(id, userID int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		UserID:    userID,
		TenantID:  1,
		ServiceID: 2,
		Date:      types.NewCivilDate(2026, time.February, 10),
		StartTime: types.TimeOfDay(10 * 60),
		Status:    status,
	}
}

func TestGetByID(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*domain.Appointment{
		5: testAppointment(5, 7, domain.StatusPending),
	}}
	svc := NewService(repo, stubTenantClient{}, stubLogger{})

	t.Run("owner", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 5, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99, 7)
		require.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("foreign appointment", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 5, 8)
		require.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetUserAppointments(t *testing.T) {
	repo := &stubRepo{byUser: []*domain.Appointment{
		testAppointment(1, 7, domain.StatusPending),
		testAppointment(2, 7, domain.StatusCompleted),
	}}
	svc := NewService(repo, stubTenantClient{}, stubLogger{})

	t.Run("no filter", func(t *testing.T) {
		resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{UserID: 7})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Nil(t, repo.gotStatus)
	})

	t.Run("status filter", func(t *testing.T) {
		status := "pending"
		_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{UserID: 7, Status: &status})
		require.NoError(t, err)
		require.NotNil(t, repo.gotStatus)
		assert.Equal(t, domain.StatusPending, *repo.gotStatus)
	})

	t.Run("unknown status", func(t *testing.T) {
		status := "abandoned"
		_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{UserID: 7, Status: &status})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	newService := func(status domain.AppointmentStatus) (*Service, *stubRepo) {
		repo := &stubRepo{byID: map[int64]*domain.Appointment{
			5: testAppointment(5, 7, status),
		}}
		return NewService(repo, stubTenantClient{}, stubLogger{}), repo
	}

	t.Run("pending appointment", func(t *testing.T) {
		svc, repo := newService(domain.StatusPending)

		resp, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
			AppointmentID: 5,
			UserID:        7,
			Reason:        "не смогу прийти",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(5), repo.cancelledID)
		assert.Equal(t, domain.StatusCancelledByUser, repo.cancelledStatus)
		assert.Equal(t, "не смогу прийти", repo.cancelledReason)
		assert.Equal(t, string(domain.StatusCancelledByUser), resp.Status)
		require.NotNil(t, resp.CancellationReason)
	})

	t.Run("already cancelled", func(t *testing.T) {
		svc, _ := newService(domain.StatusCancelledByUser)

		_, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{AppointmentID: 5, UserID: 7})
		require.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("completed", func(t *testing.T) {
		svc, _ := newService(domain.StatusCompleted)

		_, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{AppointmentID: 5, UserID: 7})
		require.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("foreign appointment", func(t *testing.T) {
		svc, _ := newService(domain.StatusPending)

		_, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{AppointmentID: 5, UserID: 8})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("reason too long", func(t *testing.T) {
		svc, _ := newService(domain.StatusPending)

		long := make([]byte, domain.MaxCancellationReasonLength+1)
		for i := range long {
			long[i] = 'a'
		}

		_, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
			AppointmentID: 5,
			UserID:        7,
			Reason:        string(long),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
