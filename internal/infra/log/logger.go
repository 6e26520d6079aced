// Package logs builds the process-wide slog.Logger from the env section of the config.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"enroll/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger.
type Params struct {
	fx.In

	Config *config.Config
	// Output defaults to stdout.
	Output io.Writer `optional:"true"`
}

// New returns a logger whose records all carry the service name and env,
// so lines from the API, the mail worker and migrations can be told apart.
func New(params Params) (*slog.Logger, error) {
	envCfg := params.Config.Env

	level, err := parseLogLevel(envCfg.Log.Level)
	if err != nil {
		return nil, err
	}

	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: envCfg.Debug}

	var handler slog.Handler
	if envCfg.Log.Pretty {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler)
	if envCfg.ServiceName != "" {
		logger = logger.With(slog.String("service", envCfg.ServiceName))
	}
	if envCfg.Env != "" {
		logger = logger.With(slog.String("env", envCfg.Env))
	}

	return logger, nil
}

// parseLogLevel converts a config level name to slog.Level. Empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
