package components

import (
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewBookingUseCase,
		usecase.NewEventUseCase,
		usecase.NewReviewUseCase,
		usecase.NewOrderUseCase,
		usecase.NewProfileUseCase,
		usecase.NewStatsUseCase,
		fx.Annotate(
			func(a usecase.AuthUseCase) usecase.AuthUseCase { return a },
			fx.As(new(usecase.TokenValidator)),
		),
	),
)
