package get_month_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMC-AppointmentService/internal/api/handlers"
	getMonthCalendar "github.com/m04kA/BMC-AppointmentService/internal/usecase/get_month_calendar"
	"github.com/m04kA/BMC-AppointmentService/pkg/ptr"
)

const (
	msgInvalidTenantID = "некорректный ID арендатора"
	msgMissingMonth    = "месяц обязателен"
	msgInvalidMonth    = "некорректный месяц, ожидается число от 1 до 12"
	msgMissingYear     = "год обязателен"
	msgInvalidYear     = "некорректный год"
	msgInvalidService  = "некорректный ID услуги"
	msgTenantNotFound  = "арендатор не найден"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetMonthCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/calendar
// Query params: month (required, 1-12), year (required), serviceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем tenantId из URL
	tenantIDStr := vars["tenantId"]
	tenantID, err := strconv.ParseInt(tenantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/calendar - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	// Извлекаем month из query параметров
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /tenants/{id}/calendar - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /tenants/{id}/calendar - Invalid month: %q", monthStr)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	// Извлекаем year из query параметров
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /tenants/{id}/calendar - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/calendar - Invalid year: %q", yearStr)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	// Извлекаем опциональный serviceId из query параметров
	var serviceID *int64
	if serviceIDStr := r.URL.Query().Get("serviceId"); serviceIDStr != "" {
		id, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /tenants/{id}/calendar - Invalid service ID: %q", serviceIDStr)
			handlers.RespondBadRequest(w, msgInvalidService)
			return
		}
		serviceID = ptr.Ptr(id)
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getMonthCalendar.Request{
		TenantID:  tenantID,
		ServiceID: serviceID,
		Month:     time.Month(month),
		Year:      year,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthCalendar.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{id}/calendar - Tenant not found: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, getMonthCalendar.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/calendar - Invalid params: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /tenants/{id}/calendar - Failed to resolve calendar: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tenants/{id}/calendar - Calendar resolved successfully: tenant_id=%d, month=%d-%02d, cells_count=%d",
		tenantID, year, month, len(result.Cells))
	handlers.RespondJSON(w, http.StatusOK, response)
}
