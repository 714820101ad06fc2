package response

import (
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/usecase"
)

type ProfileResponse struct {
	User          *UserResponse           `json:"user"`
	Reservations  []*ReservationResponse  `json:"reservations"`
	Subscriptions []*SubscriptionResponse `json:"subscriptions"`
	Orders        []*OrderResponse        `json:"orders"`
}

func FromProfile(p usecase.Profile) *ProfileResponse {
	reservations := make([]*ReservationResponse, len(p.Reservations))
	for i, v := range p.Reservations {
		reservations[i] = FromReservationView(v)
	}
	return &ProfileResponse{
		User:          FromUser(p.User),
		Reservations:  reservations,
		Subscriptions: FromSubscriptions(p.Subscriptions),
		Orders:        FromOrders(p.Orders),
	}
}

type StatsResponse struct {
	RegisteredUsers    int   `json:"registered_users"`
	ActiveReservations int   `json:"active_reservations"`
	UpcomingStays      int   `json:"upcoming_stays"`
	EventSeatsTaken    int   `json:"event_seats_taken"`
	OrderRevenueCents  int64 `json:"order_revenue_cents"`
}

func FromStats(s repository.OccupancyStats) *StatsResponse {
	return &StatsResponse{
		RegisteredUsers:    s.RegisteredUsers,
		ActiveReservations: s.ActiveReservations,
		UpcomingStays:      s.UpcomingStays,
		EventSeatsTaken:    s.EventSeatsTaken,
		OrderRevenueCents:  s.OrderRevenueCents,
	}
}
