package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"enroll/config"
	"enroll/internal/delivery/worker/handler"
	mockSvc "enroll/internal/mocks/service"

	"github.com/stretchr/testify/assert"
)

func TestWorkerEcho_Routes(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config: cfg,
		Logger: logger,
		Mailer: mockSvc.NewMockMailer(t),
	})
	e := newEcho(cfg, logger, pushHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/push", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
