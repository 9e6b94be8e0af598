package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-AppointmentService/pkg/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New("test")

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/tenants/{tenantId}/slots", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/tenants/1/slots", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	// Статус обработчика проходит через recorder без искажений
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Запрос учтён в счётчике с шаблоном маршрута вместо сырого URL
	count, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
