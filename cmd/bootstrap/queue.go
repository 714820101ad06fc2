package bootstrap

import (
	"context"
	"log/slog"

	"resort-booking/internal/infra/queue"
	"resort-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*queue.Publisher, error) {
	pub, cleanup, err := queue.NewPublisher(cfg.AMQP, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pub, nil
}
