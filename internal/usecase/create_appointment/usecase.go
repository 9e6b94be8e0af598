package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/BMC-AppointmentService/internal/infra/storage/schedule"
	tenantClient "github.com/m04kA/BMC-AppointmentService/internal/integrations/tenantservice"
	"github.com/m04kA/BMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// UseCase use case создания записи на услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	tenantClient    TenantServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	tenantClient TenantServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		tenantClient:    tenantClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
//
// Проверка занятости слота и вставка выполняются в одной serializable
// транзакции, записи дня блокируются через FOR UPDATE. Конкурентные запросы
// на один слот получат ErrSlotNotAvailable, а не двойную запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, tenant=%d, service=%d, date=%s, time=%s",
		req.UserID, req.TenantID, req.ServiceID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование арендатора
	if _, err := uc.tenantClient.GetTenant(ctx, req.TenantID); err != nil {
		if errors.Is(err, tenantClient.ErrTenantNotFound) {
			uc.logger.Warn("CreateAppointment: tenant id=%d not found", req.TenantID)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get tenant id=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	// 3. Получаем услугу (название, цена и длительность денормализуются в запись)
	service, err := uc.tenantClient.GetService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, tenantClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found for tenant=%d", req.ServiceID, req.TenantID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var created *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4. Получаем расписание арендатора (дефолтное, если не сохранено)
		schedule, err := uc.scheduleRepo.GetByTenant(txCtx, req.TenantID)
		if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		if schedule == nil {
			schedule = domain.DefaultScheduleConfig(req.TenantID)
		}

		// 5. Фиксируем "сегодня" и проверяем дату
		today := types.CivilDateOf(uc.timeProvider.Now())
		if err := validateDate(req.Date, today, schedule.AdvanceBookingDays); err != nil {
			return err
		}

		// 6. День недели должен быть рабочим
		if !schedule.AvailableWeekdays.Allows(req.Date.Weekday()) {
			return fmt.Errorf("%w: %s", ErrTenantClosed, req.Date.Weekday())
		}

		// 7. Строим сетку слотов и проверяем, что запрошенное время из неё
		durationMinutes := schedule.SlotDurationMinutes
		if service.DurationMinutes > 0 {
			durationMinutes = service.DurationMinutes
		}

		hours := schedule.Hours()
		slots, err := domain.GenerateSlots(durationMinutes, &hours)
		if err != nil {
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		if !slotExists(slots, req.StartTime) {
			return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.StartTime)
		}

		// 8. Читаем записи дня с блокировкой и проверяем занятость
		dayAppointments, err := uc.appointmentRepo.GetByTenantWithFilter(txCtx, domain.TenantAppointmentsFilter{
			TenantID:  req.TenantID,
			StartDate: ptr.Ptr(req.Date),
			EndDate:   ptr.Ptr(req.Date),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get day appointments: %v", ErrInternal, err)
		}

		booked := domain.BookedSetOf(dayAppointments)
		if _, taken := booked[req.StartTime]; taken {
			return fmt.Errorf("%w: %s on %s", ErrSlotNotAvailable, req.StartTime, req.Date)
		}

		// 9. Создаем запись
		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			UserID:          req.UserID,
			TenantID:        req.TenantID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: durationMinutes,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Warn("CreateAppointment: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for user=%d, slot %s %s",
		created.ID, created.UserID, created.Date, created.StartTime)

	return &Response{
		ID:              created.ID,
		UserID:          created.UserID,
		TenantID:        created.TenantID,
		ServiceID:       created.ServiceID,
		Date:            created.Date,
		StartTime:       created.StartTime,
		DurationMinutes: created.DurationMinutes,
		Status:          string(created.Status),
		ServiceName:     created.ServiceName,
		ServicePrice:    created.ServicePrice,
		Notes:           created.Notes,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}

// slotExists проверяет, что время начала совпадает с одним из слотов сетки
func slotExists(slots []domain.TimeSlot, start types.TimeOfDay) bool {
	for _, slot := range slots {
		if slot.Start == start {
			return true
		}
	}
	return false
}
