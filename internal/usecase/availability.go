package usecase

import (
	"context"
	"errors"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/service"
	"resort-booking/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidAvailabilityQuery = errors.New("invalid availability query")

type ServiceRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*service.Service, error)
	LockByID(ctx context.Context, dbtx db.DBTX, id int64) (*service.Service, error)
	FindAvailable(ctx context.Context, dbtx db.DBTX, typ service.Type, slot booking.Slot, partySize int) ([]*service.Service, error)
	FindAllByType(ctx context.Context, dbtx db.DBTX, typ service.Type) ([]*service.Service, error)
}

// AvailabilityQuery is one search: a room stay needs CheckIn/CheckOut, a
// restaurant search needs Date and Meal.
type AvailabilityQuery struct {
	Type      service.Type
	PartySize int
	CheckIn   time.Time
	CheckOut  time.Time
	Date      time.Time
	Meal      string
}

type AvailabilityUseCase interface {
	Search(ctx context.Context, q AvailabilityQuery) ([]*service.Service, error)
	ListByType(ctx context.Context, typ service.Type) ([]*service.Service, error)
}

type availabilityUseCaseImpl struct {
	pool        *pgxpool.Pool
	serviceRepo ServiceRepository
}

func NewAvailabilityUseCase(pool *pgxpool.Pool, serviceRepo ServiceRepository) AvailabilityUseCase {
	return &availabilityUseCaseImpl{pool: pool, serviceRepo: serviceRepo}
}

// slotForQuery builds the occupancy slot the query asks about. Only rooms
// and restaurants accept slot searches.
func slotForQuery(q AvailabilityQuery) (booking.Slot, error) {
	switch q.Type {
	case service.TypeRoom:
		return booking.NewRoomStay(q.CheckIn, q.CheckOut, time.UTC)
	case service.TypeRestaurant:
		meal, err := booking.NewMealSlot(q.Meal)
		if err != nil {
			return booking.Slot{}, err
		}
		return booking.NewMealWindow(q.Date, meal, time.UTC)
	default:
		return booking.Slot{}, ErrInvalidAvailabilityQuery
	}
}

func (u *availabilityUseCaseImpl) Search(ctx context.Context, q AvailabilityQuery) ([]*service.Service, error) {
	if q.PartySize <= 0 {
		return nil, booking.ErrInvalidPartySize
	}

	slot, err := slotForQuery(q)
	if err != nil {
		return nil, err
	}
	return u.serviceRepo.FindAvailable(ctx, u.pool, q.Type, slot, q.PartySize)
}

func (u *availabilityUseCaseImpl) ListByType(ctx context.Context, typ service.Type) ([]*service.Service, error) {
	if !typ.IsValid() {
		return nil, service.ErrInvalidType
	}
	return u.serviceRepo.FindAllByType(ctx, u.pool, typ)
}
