package booking

import (
	"errors"
	"time"

	"resort-booking/internal/domain/service"

	"github.com/google/uuid"
)

var (
	ErrInvalidPartySize  = errors.New("party size must be positive")
	ErrSlotConflict      = errors.New("slot conflicts with an existing reservation")
	ErrCancelTooLate     = errors.New("cancellation window has closed")
	ErrNotOwner          = errors.New("reservation belongs to another user")
	ErrCapacityExceeded  = errors.New("party size exceeds service capacity")
	ErrServiceNotBooked  = errors.New("service is not part of this reservation")
	ErrServiceUnbookable = errors.New("service cannot be reserved")
)

// CancelCutoff is how long before the stay starts a detail may still be
// cancelled.
const CancelCutoff = 7 * 24 * time.Hour

// Reservation is a user's booking container; occupancy lives in its details.
type Reservation struct {
	id        int64
	userID    uuid.UUID
	createdAt time.Time
	details   []Detail
}

// Detail is one concrete occupancy of a service within a reservation.
// (reservation, service) is the composite key.
type Detail struct {
	ReservationID  int64
	ServiceID      int64
	Slot           Slot
	PartySize      int
	UnitPriceCents int64
}

func ReconstructReservation(id int64, userID uuid.UUID, createdAt time.Time, details []Detail) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		createdAt: createdAt,
		details:   details,
	}
}

func (r *Reservation) ID() int64           { return r.id }
func (r *Reservation) UserID() uuid.UUID   { return r.userID }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) Details() []Detail   { return r.details }

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// NewDetail validates a requested occupancy against the target service.
func NewDetail(svc *service.Service, slot Slot, partySize int) (Detail, error) {
	if partySize <= 0 {
		return Detail{}, ErrInvalidPartySize
	}
	if !svc.Type().IsReservable() || !svc.IsAvailable() {
		return Detail{}, ErrServiceUnbookable
	}
	if !svc.Fits(partySize) {
		return Detail{}, ErrCapacityExceeded
	}
	return Detail{
		ServiceID:      svc.ID(),
		Slot:           slot,
		PartySize:      partySize,
		UnitPriceCents: svc.PriceCents(),
	}, nil
}

// Arbitrate decides whether the requested slot may occupy the service given
// the details already booked for it. Callers must hold the service row lock
// for the duration of the check and the subsequent insert.
func Arbitrate(requested Slot, typ service.Type, existing []Detail) error {
	for _, d := range existing {
		if requested.ConflictsWith(d.Slot, typ) {
			return ErrSlotConflict
		}
	}
	return nil
}

// CanCancel reports whether a detail may still be cancelled at now.
func (d Detail) CanCancel(now time.Time) bool {
	return d.Slot.Start().Sub(now) > CancelCutoff
}

// CanReview reports whether the stay has finished, making the service
// reviewable by the guest.
func (d Detail) CanReview(now time.Time) bool {
	return !d.Slot.End().After(now)
}

// TotalPriceCents prices the detail: per-night for rooms, flat otherwise.
func (d Detail) TotalPriceCents(typ service.Type) int64 {
	if typ == service.TypeRoom {
		return d.UnitPriceCents * int64(d.Slot.Nights())
	}
	return d.UnitPriceCents
}
