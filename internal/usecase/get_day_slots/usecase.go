package get_day_slots

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

// UseCase use case построения сетки слотов на день
// Чистая часть (генерация, классификация, фильтрация) живёт в domain;
// здесь - только сбор входных данных и порядок вызовов
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

// Execute выполняет use case построения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: tenant=%d, service=%d, date=%s",
		req.TenantID, req.ServiceID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Фиксируем "сегодня" один раз на весь расчёт
	today := types.CivilDateOf(uc.timeProvider.Now())

	// 3. Проверяем существование арендатора
	if _, err := uc.tenantClient.GetTenant(ctx, req.TenantID); err != nil {
		if errors.Is(err, tenantClient.ErrTenantNotFound) {
			uc.logger.Warn("GetDaySlots: tenant id=%d not found", req.TenantID)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get tenant id=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	// 4. Получаем услугу - её длительность задаёт шаг сетки
	service, err := uc.tenantClient.GetService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, tenantClient.ErrServiceNotFound) {
			uc.logger.Warn("GetDaySlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Получаем расписание арендатора (дефолтное, если не сохранено)
	schedule, err := uc.scheduleRepo.GetByTenant(ctx, req.TenantID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetDaySlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if schedule == nil {
		schedule = domain.DefaultScheduleConfig(req.TenantID)
		uc.logger.Info("GetDaySlots: using default schedule for tenant=%d", req.TenantID)
	}

	// 6. Валидация даты с учетом конфигурации
	if err := validateDate(req.Date, today, schedule.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetDaySlots: date validation failed: %v", err)
		return nil, err
	}

	// 7. Если день недели недоступен для записи - возвращаем пустую сетку
	if !schedule.AvailableWeekdays.Allows(req.Date.Weekday()) {
		uc.logger.Info("GetDaySlots: tenant=%d does not take bookings on %s", req.TenantID, req.Date.Weekday())
		return &Response{
			Date:      req.Date,
			TenantID:  req.TenantID,
			ServiceID: req.ServiceID,
			Slots:     []Slot{},
		}, nil
	}

	// 8. Генерируем сетку слотов
	// Шаг сетки - длительность услуги; при её отсутствии GenerateSlots
	// подставит дефолтные 30 минут
	duration := service.DurationMinutes
	if duration <= 0 {
		duration = schedule.SlotDurationMinutes
	}

	hours := schedule.Hours()
	slots, err := domain.GenerateSlots(duration, &hours)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 9. Получаем активные записи на эту дату
	filter := domain.TenantAppointmentsFilter{
		TenantID:        req.TenantID,
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: false, // Только активные записи занимают слоты
	}

	appointments, err := uc.appointmentRepo.GetByTenantWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 10. Помечаем занятые слоты (сравнение по минуте дня, не по меткам)
	marked := domain.MarkBooked(slots, domain.BookedSetOf(appointments))

	result := make([]Slot, len(marked))
	for i, sa := range marked {
		result[i] = Slot{
			StartTime:       sa.Slot.Start,
			DurationMinutes: sa.Slot.DurationMinutes,
			Period:          sa.Slot.Period,
			IsBooked:        sa.IsBooked,
		}
	}

	uc.logger.Info("GetDaySlots: generated %d slots for tenant=%d, service=%d, date=%s",
		len(result), req.TenantID, req.ServiceID, req.Date)

	return &Response{
		Date:      req.Date,
		TenantID:  req.TenantID,
		ServiceID: req.ServiceID,
		Slots:     result,
	}, nil
}
