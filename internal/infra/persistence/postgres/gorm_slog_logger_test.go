package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"enroll/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "users" WHERE email = 'jo@x.com'`, 1
}

func TestGormSlogLogger_QueryOnlyInDebug(t *testing.T) {
	quiet, quietBuf := newBufferedGormLogger(false)
	quiet.Trace(context.Background(), time.Now(), sqlAndRows, nil)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newBufferedGormLogger(true)
	verbose.Trace(context.Background(), time.Now(), sqlAndRows, nil)
	assert.Contains(t, verboseBuf.String(), "store query")
	assert.Contains(t, verboseBuf.String(), "component=store")
	assert.Contains(t, verboseBuf.String(), "rows=1")
}

func TestGormSlogLogger_ErrorsExceptRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "store query failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)
	assert.Contains(t, buf.String(), "store slow query")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	l, buf := newBufferedGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))
	assert.Empty(t, buf.String())
}
