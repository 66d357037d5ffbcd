package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tableorders/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewServerMetrics(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/items/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "no")
	})

	for _, path := range []string{"/items/1", "/items/2", "/fail"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	body := scrape(t, reg)
	assert.Contains(t, body, `tableorders_http_requests_total{handler="/items/:id",status="204"} 2`)
	assert.Contains(t, body, `tableorders_http_requests_total{handler="/fail",status="418"} 1`)
	assert.Contains(t, body, `tableorders_http_request_duration_ms_count{handler="/items/:id"} 2`)
}

func TestHandler_ExposesOrderGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewOrderMetrics(reg)
	m.ByStatus.WithLabelValues("Pending").Set(3)
	m.CartsSwept.Add(2)

	body := scrape(t, reg)
	assert.Contains(t, body, `tableorders_orders_by_status{status="Pending"} 3`)
	assert.Contains(t, body, "tableorders_carts_swept_total 2")
}

func scrape(t *testing.T, g prometheus.Gatherer) string {
	t.Helper()
	rec := httptest.NewRecorder()
	metrics.Handler(g).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}
