package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BMC-AppointmentService/internal/domain"
	"github.com/m04kA/BMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/BMC-AppointmentService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий конфигурации расписания арендатора
// Недельная доступность хранится массивом номеров дней недели (0 = воскресенье);
// пустой массив означает отсутствие ограничений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenant получает конфигурацию расписания арендатора
func (r *Repository) GetByTenant(ctx context.Context, tenantID int64) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"open_minute",
		"close_minute",
		"slot_duration_minutes",
		"available_weekdays",
		"advance_booking_days",
		"created_at",
		"updated_at",
	).
		From("tenant_schedule").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.ScheduleConfig
	var weekdays pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.TenantID,
		&config.OpenTime,
		&config.CloseTime,
		&config.SlotDurationMinutes,
		&weekdays,
		&config.AdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - scan schedule: %v", ErrScanRow, err)
	}

	config.AvailableWeekdays = weekdaySetFromArray(weekdays)
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert создает или обновляет конфигурацию расписания арендатора
func (r *Repository) Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tenant_schedule").
		Columns(
			"tenant_id",
			"open_minute",
			"close_minute",
			"slot_duration_minutes",
			"available_weekdays",
			"advance_booking_days",
		).
		Values(
			config.TenantID,
			config.OpenTime,
			config.CloseTime,
			config.SlotDurationMinutes,
			weekdayArrayFromSet(config.AvailableWeekdays),
			config.AdvanceBookingDays,
		).
		Suffix(`ON CONFLICT (tenant_id) DO UPDATE SET
			open_minute = EXCLUDED.open_minute,
			close_minute = EXCLUDED.close_minute,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			available_weekdays = EXCLUDED.available_weekdays,
			advance_booking_days = EXCLUDED.advance_booking_days,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// Delete удаляет конфигурацию расписания (арендатор возвращается к дефолтам)
func (r *Repository) Delete(ctx context.Context, tenantID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tenant_schedule").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func weekdaySetFromArray(arr pq.Int64Array) domain.WeekdaySet {
	if len(arr) == 0 {
		return nil
	}
	set := make(domain.WeekdaySet, len(arr))
	for _, day := range arr {
		set[time.Weekday(day)] = struct{}{}
	}
	return set
}

func weekdayArrayFromSet(set domain.WeekdaySet) pq.Int64Array {
	arr := make(pq.Int64Array, 0, len(set))
	for _, day := range set.List() {
		arr = append(arr, int64(day))
	}
	return arr
}
