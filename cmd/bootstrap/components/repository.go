package components

import (
	infracart "resort-booking/internal/infra/cart"
	"resort-booking/internal/infra/queue"
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(usecase.ServiceRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
			fx.As(new(usecase.ReviewEligibility)),
		),
		fx.Annotate(
			repository.NewEventRepository,
			fx.As(new(usecase.EventRepository)),
		),
		fx.Annotate(
			repository.NewReviewRepository,
			fx.As(new(usecase.ReviewRepository)),
		),
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(usecase.ProductRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			repository.NewStatsRepository,
			fx.As(new(usecase.StatsRepository)),
		),
		fx.Annotate(
			func(s *infracart.Store) *infracart.Store { return s },
			fx.As(new(usecase.CartStore)),
		),
		fx.Annotate(
			func(p *queue.Publisher) *queue.Publisher { return p },
			fx.As(new(usecase.Notifier)),
		),
	),
)
