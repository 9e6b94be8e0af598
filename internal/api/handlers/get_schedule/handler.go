package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/BMC-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidTenantID = "некорректный ID арендатора"
	msgTenantNotFound  = "арендатор не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем tenantId из URL
	vars := mux.Vars(r)
	tenantIDStr := vars["tenantId"]

	tenantID, err := strconv.ParseInt(tenantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/schedule - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	// Получаем расписание (дефолтное, если не сохранено)
	result, err := h.service.GetByTenant(r.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{id}/schedule - Tenant not found: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("GET /tenants/{id}/schedule - Failed to get schedule: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/schedule - Schedule retrieved successfully: tenant_id=%d, stored=%t",
		tenantID, result.Stored)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
