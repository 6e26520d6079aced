package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"enroll/config"
	deliverycontext "enroll/internal/delivery/context"
	"enroll/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)

	var fromContext, fromEcho string
	e.GET("/", func(c echo.Context) error {
		fromContext = deliverycontext.RequestID(c.Request().Context())
		fromEcho = deliverycontext.RequestIDFromEcho(c)
		deliverycontext.Logger(c.Request().Context(), nil).Info("inside handler")

		return c.NoContent(http.StatusOK)
	})

	t.Run("reuses caller id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "caller-id")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "caller-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "caller-id", fromContext)
		assert.Equal(t, "caller-id", fromEcho)
		assert.Contains(t, buf.String(), `"request_id":"caller-id"`)
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEmpty(t, generated)
		assert.Equal(t, generated, fromContext)
	})
}

func TestLoggerMiddleware(t *testing.T) {
	newServer := func(debug bool, buf *bytes.Buffer) *echo.Echo {
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		logger := slog.New(slog.NewJSONHandler(buf, nil))

		e := echo.New()
		e.Use(NewLoggerMiddleware(logger, cfg).Handle)
		e.GET("/ok", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		e.GET("/missing", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound, "gone")
		})

		return e
	}

	t.Run("silent without debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(false, &buf)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, buf.String())
	})

	t.Run("logs final status in debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(true, &buf)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, buf.String(), `"status":404`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"uri":"/missing"`)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)

	e := echo.New()
	e.Use(NewMetricsMiddleware(httpMetrics).Handle)
	e.POST("/api/login", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnauthorized)
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for range 2 {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/login", nil))
	}
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.InDelta(t, 2, testutil.ToFloat64(httpMetrics.RequestsTotal.WithLabelValues("POST", "/api/login", "401")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(httpMetrics.RequestsTotal.WithLabelValues("GET", "/health", "200")), 0)

	count, err := testutil.GatherAndCount(reg, "enroll_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
