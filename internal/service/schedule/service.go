package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/BMC-AppointmentService/internal/infra/storage/schedule"
	tenantClient "github.com/m04kA/BMC-AppointmentService/internal/integrations/tenantservice"
	"github.com/m04kA/BMC-AppointmentService/internal/service/schedule/models"
)

// Service сервис для работы с расписанием арендатора
type Service struct {
	scheduleRepo ScheduleRepository
	tenantClient TenantServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	tenantClient TenantServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		tenantClient: tenantClient,
		logger:       logger,
	}
}

// GetByTenant получает расписание арендатора
// Если расписание не сохранено, возвращает дефолтную конфигурацию
func (s *Service) GetByTenant(ctx context.Context, tenantID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByTenant: fetching schedule for tenant=%d", tenantID)

	config, err := s.scheduleRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("GetByTenant: no stored schedule for tenant=%d, using defaults", tenantID)
			return models.FromDomainConfig(domain.DefaultScheduleConfig(tenantID), false), nil
		}
		s.logger.Error("GetByTenant: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetByTenant - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByTenant: successfully fetched schedule id=%d", config.ID)
	return models.FromDomainConfig(config, true), nil
}

// Update создает или обновляет расписание арендатора
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for tenant=%d by user=%d", req.TenantID, req.UserID)

	// 1. Валидируем входные данные
	if err := validateScheduleData(req); err != nil {
		s.logger.Warn("Update: validation failed for tenant=%d: %v", req.TenantID, err)
		return nil, err
	}

	// 2. Проверяем существование арендатора
	if _, err := s.tenantClient.GetTenant(ctx, req.TenantID); err != nil {
		if errors.Is(err, tenantClient.ErrTenantNotFound) {
			s.logger.Warn("Update: tenant id=%d not found", req.TenantID)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("Update: failed to get tenant id=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	// 3. Сохраняем конфигурацию
	config, err := s.scheduleRepo.Upsert(ctx, req.ToDomainConfig())
	if err != nil {
		s.logger.Error("Update: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully stored schedule id=%d for tenant=%d", config.ID, req.TenantID)
	return models.FromDomainConfig(config, true), nil
}

// validateScheduleData проверяет бизнес-ограничения конфигурации расписания
func validateScheduleData(req *models.UpdateScheduleRequest) error {
	if !req.OpenTime.Valid() || !req.CloseTime.Valid() {
		return fmt.Errorf("%w: open and close times must be within the day", ErrInvalidInput)
	}

	if !req.OpenTime.Before(req.CloseTime) {
		return fmt.Errorf("%w: open=%s close=%s", ErrInvalidHours, req.OpenTime, req.CloseTime)
	}

	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if req.AdvanceBookingDays < domain.MinAdvanceBookingDays ||
		req.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advance booking days must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	for _, day := range req.AvailableWeekdays {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("%w: weekday out of range: %d", ErrInvalidInput, day)
		}
	}

	return nil
}
