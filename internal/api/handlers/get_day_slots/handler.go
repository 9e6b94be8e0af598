package get_day_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMC-AppointmentService/internal/api/handlers"
	getDaySlots "github.com/m04kA/BMC-AppointmentService/internal/usecase/get_day_slots"
)

const (
	msgInvalidTenantID  = "некорректный ID арендатора"
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingServiceID = "ID услуги обязателен"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTenantNotFound   = "арендатор не найден"
	msgServiceNotFound  = "услуга не найдена"
	msgPastDate         = "дата уже прошла"
	msgDateTooFar       = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем tenantId из URL
	tenantIDStr := vars["tenantId"]
	tenantID, err := strconv.ParseInt(tenantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/slots - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /tenants/{id}/slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tenants/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(tenantID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{id}/slots - Tenant not found: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, getDaySlots.ErrServiceNotFound):
			h.logger.Warn("GET /tenants/{id}/slots - Service not found: tenant_id=%d, service_id=%d", tenantID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getDaySlots.ErrInvalidDate):
			h.logger.Warn("GET /tenants/{id}/slots - Past date: tenant_id=%d, date=%s", tenantID, dateStr)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getDaySlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /tenants/{id}/slots - Date too far in future: tenant_id=%d, date=%s", tenantID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/slots - Invalid params: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /tenants/{id}/slots - Failed to get slots: tenant_id=%d, service_id=%d, error=%v",
				tenantID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tenants/{id}/slots - Slots retrieved successfully: tenant_id=%d, service_id=%d, slots_count=%d",
		tenantID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
