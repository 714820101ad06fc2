package usecase

import (
	"context"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/order"
	"resort-booking/internal/domain/user"
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationView decorates a reservation with per-detail cancellation and
// review state computed at read time.
type ReservationView struct {
	Reservation *booking.Reservation
	CanCancel   map[int64]bool
	CanReview   map[int64]bool
}

// SubscriptionView is a subscribed event with the user's seat count and
// whether the event can already be reviewed.
type SubscriptionView struct {
	repository.EventWithTaken
	CanReview bool
}

// Profile is the signed-in user's dashboard snapshot.
type Profile struct {
	User          *user.User
	Reservations  []ReservationView
	Subscriptions []SubscriptionView
	Orders        []*order.Order
}

type ProfileUseCase interface {
	Get(ctx context.Context, userID uuid.UUID) (Profile, error)
}

type profileUseCaseImpl struct {
	pool        *pgxpool.Pool
	userRepo    UserRepository
	bookingRepo BookingRepository
	eventRepo   EventRepository
	orderRepo   OrderRepository
	clock       clock.Clock
}

func NewProfileUseCase(pool *pgxpool.Pool, userRepo UserRepository, bookingRepo BookingRepository, eventRepo EventRepository, orderRepo OrderRepository, clk clock.Clock) ProfileUseCase {
	return &profileUseCaseImpl{
		pool:        pool,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		orderRepo:   orderRepo,
		clock:       clk,
	}
}

func (u *profileUseCaseImpl) Get(ctx context.Context, userID uuid.UUID) (Profile, error) {
	usr, err := u.userRepo.FindByID(ctx, u.pool, userID)
	if err != nil {
		return Profile{}, ErrUserNotFound
	}

	reservations, err := u.bookingRepo.FindByUser(ctx, u.pool, userID)
	if err != nil {
		return Profile{}, err
	}

	subscriptions, err := u.eventRepo.FindSubscriptionsByUser(ctx, u.pool, userID)
	if err != nil {
		return Profile{}, err
	}

	orders, err := u.orderRepo.FindByUser(ctx, u.pool, userID)
	if err != nil {
		return Profile{}, err
	}

	now := u.clock.Now()
	views := make([]ReservationView, 0, len(reservations))
	for _, res := range reservations {
		v := ReservationView{
			Reservation: res,
			CanCancel:   make(map[int64]bool, len(res.Details())),
			CanReview:   make(map[int64]bool, len(res.Details())),
		}
		for _, d := range res.Details() {
			v.CanCancel[d.ServiceID] = d.CanCancel(now)
			v.CanReview[d.ServiceID] = d.CanReview(now)
		}
		views = append(views, v)
	}

	subs := make([]SubscriptionView, 0, len(subscriptions))
	for _, s := range subscriptions {
		subs = append(subs, SubscriptionView{EventWithTaken: s, CanReview: s.Event.CanReview(now)})
	}

	return Profile{
		User:          usr,
		Reservations:  views,
		Subscriptions: subs,
		Orders:        orders,
	}, nil
}
