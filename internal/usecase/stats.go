package usecase

import (
	"context"
	"time"

	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/pkg/clock"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository interface {
	Occupancy(ctx context.Context, dbtx db.DBTX, now time.Time) (repository.OccupancyStats, error)
}

type StatsUseCase interface {
	Occupancy(ctx context.Context) (repository.OccupancyStats, error)
}

type statsUseCaseImpl struct {
	pool      *pgxpool.Pool
	statsRepo StatsRepository
	clock     clock.Clock
}

func NewStatsUseCase(pool *pgxpool.Pool, statsRepo StatsRepository, clk clock.Clock) StatsUseCase {
	return &statsUseCaseImpl{pool: pool, statsRepo: statsRepo, clock: clk}
}

func (u *statsUseCaseImpl) Occupancy(ctx context.Context) (repository.OccupancyStats, error) {
	return u.statsRepo.Occupancy(ctx, u.pool, u.clock.Now())
}
