package repository

import (
	"context"
	"time"

	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
)

type StatsRepository struct{}

func NewStatsRepository() *StatsRepository {
	return &StatsRepository{}
}

// OccupancyStats is the staff dashboard snapshot.
type OccupancyStats struct {
	RegisteredUsers    int
	ActiveReservations int
	UpcomingStays      int
	EventSeatsTaken    int
	OrderRevenueCents  int64
}

func (r *StatsRepository) Occupancy(ctx context.Context, dbtx db.DBTX, now time.Time) (OccupancyStats, error) {
	var s OccupancyStats

	err := dbtx.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(DISTINCT reservation_id) FROM reservation_details WHERE end_at > $1),
			(SELECT COUNT(*) FROM reservation_details WHERE start_at > $1),
			(SELECT COALESCE(SUM(s.participants), 0)
			   FROM event_subscriptions s
			   JOIN events e ON e.id = s.event_id
			  WHERE e.event_date >= $1::date),
			(SELECT COALESCE(SUM(l.quantity * l.unit_price_cents), 0) FROM order_lines l)`,
		now).Scan(&s.RegisteredUsers, &s.ActiveReservations, &s.UpcomingStays, &s.EventSeatsTaken, &s.OrderRevenueCents)
	if err != nil {
		return OccupancyStats{}, infra.WrapRepoErr("failed to query occupancy stats", err)
	}
	return s, nil
}
