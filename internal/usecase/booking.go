package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/service"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/queue"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrEmptyBooking        = errors.New("booking must contain at least one service")
)

type BookingRepository interface {
	CreateReservation(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (int64, error)
	AddDetail(ctx context.Context, dbtx db.DBTX, d booking.Detail) error
	FindDetailsForService(ctx context.Context, dbtx db.DBTX, serviceID int64, from time.Time) ([]booking.Detail, error)
	FindReservationByID(ctx context.Context, dbtx db.DBTX, id int64) (*booking.Reservation, error)
	FindByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) ([]*booking.Reservation, error)
	DeleteDetail(ctx context.Context, dbtx db.DBTX, reservationID, serviceID int64) (bool, error)
	DeleteIfEmpty(ctx context.Context, dbtx db.DBTX, reservationID int64) error
}

// Notifier publishes lifecycle notifications after the transaction commits.
type Notifier interface {
	Publish(ctx context.Context, routingKey string, payload any)
}

// BookingItem is one requested service occupancy. Rooms use CheckIn and
// CheckOut; restaurants use Date and Meal.
type BookingItem struct {
	ServiceID int64
	PartySize int
	CheckIn   time.Time
	CheckOut  time.Time
	Date      time.Time
	Meal      string
}

type BookingUseCase interface {
	Create(ctx context.Context, userID uuid.UUID, items []BookingItem) (*booking.Reservation, error)
	CancelDetail(ctx context.Context, userID uuid.UUID, reservationID, serviceID int64) error
	ListMine(ctx context.Context, userID uuid.UUID) ([]*booking.Reservation, error)
}

type bookingUseCaseImpl struct {
	pool        *pgxpool.Pool
	serviceRepo ServiceRepository
	bookingRepo BookingRepository
	notifier    Notifier
	clock       clock.Clock
}

func NewBookingUseCase(pool *pgxpool.Pool, serviceRepo ServiceRepository, bookingRepo BookingRepository, notifier Notifier, clk clock.Clock) BookingUseCase {
	return &bookingUseCaseImpl{
		pool:        pool,
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		clock:       clk,
	}
}

// Create books every item atomically: all services are granted or none.
// For each service the transaction takes the service row lock, re-reads the
// booked details under the lock, and lets the domain arbitrate the slot, so
// two rival requests for the same service serialize on the lock and the
// loser sees the winner's rows. Items are locked in service-id order to
// keep rival multi-service bookings deadlock-free.
func (u *bookingUseCaseImpl) Create(ctx context.Context, userID uuid.UUID, items []BookingItem) (*booking.Reservation, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBooking
	}

	sorted := make([]BookingItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ServiceID < sorted[j].ServiceID })

	now := u.clock.Now()

	res, err := shared.WithDefaultRetry(ctx, u.pool, func(tx db.DBTX) (*booking.Reservation, error) {
		reservationID, err := u.bookingRepo.CreateReservation(ctx, tx, userID)
		if err != nil {
			return nil, err
		}

		var details []booking.Detail
		for _, item := range sorted {
			svc, err := u.serviceRepo.LockByID(ctx, tx, item.ServiceID)
			if err != nil {
				return nil, err
			}

			slot, err := slotForItem(svc.Type(), item)
			if err != nil {
				return nil, err
			}
			if slot.InPast(now) {
				return nil, booking.ErrPastDate
			}

			detail, err := booking.NewDetail(svc, slot, item.PartySize)
			if err != nil {
				return nil, err
			}
			detail.ReservationID = reservationID

			existing, err := u.bookingRepo.FindDetailsForService(ctx, tx, svc.ID(), now)
			if err != nil {
				return nil, err
			}
			if err := booking.Arbitrate(slot, svc.Type(), existing); err != nil {
				return nil, err
			}

			if err := u.bookingRepo.AddDetail(ctx, tx, detail); err != nil {
				return nil, err
			}
			details = append(details, detail)
		}

		return booking.ReconstructReservation(reservationID, userID, now, details), nil
	})
	if err != nil {
		return nil, err
	}

	u.notifier.Publish(ctx, queue.KeyBookingCreated, map[string]any{
		"reservation_id": res.ID(),
		"user_id":        userID,
		"services":       len(res.Details()),
	})
	return res, nil
}

func slotForItem(typ service.Type, item BookingItem) (booking.Slot, error) {
	switch typ {
	case service.TypeRoom:
		return booking.NewRoomStay(item.CheckIn, item.CheckOut, time.UTC)
	case service.TypeRestaurant:
		meal, err := booking.NewMealSlot(item.Meal)
		if err != nil {
			return booking.Slot{}, err
		}
		return booking.NewMealWindow(item.Date, meal, time.UTC)
	default:
		return booking.Slot{}, booking.ErrServiceUnbookable
	}
}

// CancelDetail removes one service from the caller's reservation if the
// stay is still outside the cancellation window.
func (u *bookingUseCaseImpl) CancelDetail(ctx context.Context, userID uuid.UUID, reservationID, serviceID int64) error {
	now := u.clock.Now()

	_, err := shared.RunInTx(ctx, u.pool, func(tx db.DBTX) (struct{}, error) {
		res, err := u.bookingRepo.FindReservationByID(ctx, tx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrReservationNotFound
			}
			return struct{}{}, err
		}
		if !res.IsOwnedBy(userID) {
			return struct{}{}, booking.ErrNotOwner
		}

		var target *booking.Detail
		details := res.Details()
		for i := range details {
			if details[i].ServiceID == serviceID {
				target = &details[i]
				break
			}
		}
		if target == nil {
			return struct{}{}, booking.ErrServiceNotBooked
		}
		if !target.CanCancel(now) {
			return struct{}{}, booking.ErrCancelTooLate
		}

		deleted, err := u.bookingRepo.DeleteDetail(ctx, tx, reservationID, serviceID)
		if err != nil {
			return struct{}{}, err
		}
		if !deleted {
			return struct{}{}, booking.ErrServiceNotBooked
		}

		return struct{}{}, u.bookingRepo.DeleteIfEmpty(ctx, tx, reservationID)
	})
	if err != nil {
		return err
	}

	u.notifier.Publish(ctx, queue.KeyBookingCancelled, map[string]any{
		"reservation_id": reservationID,
		"service_id":     serviceID,
		"user_id":        userID,
	})
	return nil
}

func (u *bookingUseCaseImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*booking.Reservation, error) {
	return u.bookingRepo.FindByUser(ctx, u.pool, userID)
}
