// Package notification provides the confirmation-code notifiers.
package notification

import (
	"context"
	"log/slog"

	"enroll/config"
	"enroll/internal/domain/constants"
	"enroll/internal/domain/service"
	"enroll/internal/infra/mail"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier selects a Notifier from notifier.provider
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Notifier
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Notifier not configured, confirmation codes will not be delivered")

		return &noopNotifier{logger: logger}, nil
	}

	var notifier service.Notifier

	switch cfg.Provider {
	case constants.NotifierProviderSMTP:
		mailer, err := mail.NewSMTPMailer(params.Config, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using SMTP notifier", slog.String("host", params.Config.Mail.Host))

		notifier = NewSMTPNotifier(mailer, logger)

	case constants.NotifierProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP notifier", slog.String("endpoint", cfg.LocalEndpoint))

		notifier = NewLocalHTTPNotifier(cfg.LocalEndpoint, logger)

	case constants.NotifierProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		var err error
		notifier, err = NewGooglePubSubNotifier(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown notifier provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Notifier")

			return notifier.Close()
		},
	})

	return notifier, nil
}

// Module provides the notifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
