package get_month_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/BMC-AppointmentService/internal/infra/storage/schedule"
	tenantClient "github.com/m04kA/BMC-AppointmentService/internal/integrations/tenantservice"
	"github.com/m04kA/BMC-AppointmentService/pkg/types"
)

// UseCase use case построения календаря месяца
// Собирает входы (расписание, записи) и отдаёт их чистому domain.ResolveMonth
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	tenantClient    TenantServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	tenantClient TenantServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		tenantClient:    tenantClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthCalendar: tenant=%d, month=%d, year=%d", req.TenantID, req.Month, req.Year)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Фиксируем "сегодня" один раз на весь расчёт
	today := types.CivilDateOf(uc.timeProvider.Now())

	// 3. Проверяем существование арендатора
	if _, err := uc.tenantClient.GetTenant(ctx, req.TenantID); err != nil {
		if errors.Is(err, tenantClient.ErrTenantNotFound) {
			uc.logger.Warn("GetMonthCalendar: tenant id=%d not found", req.TenantID)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetMonthCalendar: failed to get tenant id=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	// 4. Получаем расписание арендатора (дефолтное, если не сохранено)
	schedule, err := uc.scheduleRepo.GetByTenant(ctx, req.TenantID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetMonthCalendar: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if schedule == nil {
		schedule = domain.DefaultScheduleConfig(req.TenantID)
		uc.logger.Info("GetMonthCalendar: using default schedule for tenant=%d", req.TenantID)
	}

	// 5. Считаем активные записи по дням месяца для аннотации ячеек
	firstDay := types.NewCivilDate(req.Year, req.Month, 1)
	lastDay := types.NewCivilDate(req.Year, req.Month, types.DaysInMonth(req.Month, req.Year))

	counts, err := uc.appointmentRepo.CountActiveByDate(ctx, req.TenantID, req.ServiceID, firstDay, lastDay)
	if err != nil {
		uc.logger.Error("GetMonthCalendar: failed to count appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
	}

	// 6. Разрешаем месяц в ячейки
	cells := domain.ResolveMonth(req.Month, req.Year, today, schedule.AvailableWeekdays, counts)

	uc.logger.Info("GetMonthCalendar: resolved %d cells for tenant=%d, month=%d-%02d",
		len(cells), req.TenantID, req.Year, req.Month)

	return &Response{
		TenantID: req.TenantID,
		Month:    req.Month,
		Year:     req.Year,
		Today:    today,
		Cells:    cells,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	if req.Year < 2000 || req.Year > 2200 {
		return fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}

	return nil
}
