package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "enroll/internal/delivery/context"
	"enroll/internal/domain/lifecycle"
	"enroll/internal/domain/service"

	"go.uber.org/fx"
)

// ConfirmationDispatcher hands confirmation events to the Notifier in the
// background. Registration never waits for, or fails on, delivery.
type ConfirmationDispatcher struct {
	notifier service.Notifier
	logger   *slog.Logger
	inflight sync.WaitGroup
}

// DispatcherParams holds dependencies for ConfirmationDispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Lc       fx.Lifecycle
	Notifier service.Notifier
	Logger   *slog.Logger
}

// NewConfirmationDispatcher creates the dispatcher and drains it on shutdown.
func NewConfirmationDispatcher(params DispatcherParams) *ConfirmationDispatcher {
	dispatcher := &ConfirmationDispatcher{
		notifier: params.Notifier,
		logger:   params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Waiting for in-flight confirmation deliveries")

			return dispatcher.Wait(ctx)
		},
	})

	return dispatcher
}

// Dispatch sends the event on a context that outlives the request.
func (d *ConfirmationDispatcher) Dispatch(ctx context.Context, event *service.ConfirmationEvent) {
	logger := deliverycontext.Logger(ctx, d.logger)
	sendCtx := context.WithoutCancel(ctx)

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()

		sendCtx, cancel := context.WithTimeout(sendCtx, lifecycle.DefaultTimeout)
		defer cancel()

		if err := d.notifier.SendConfirmationCode(sendCtx, event); err != nil {
			logger.Error("Failed to deliver confirmation code",
				slog.String("email", event.Email),
				slog.Any("error", err),
			)

			return
		}

		logger.Debug("Confirmation code handed to notifier", slog.String("email", event.Email))
	}()
}

// Wait blocks until every dispatched event finished or ctx is done.
func (d *ConfirmationDispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
