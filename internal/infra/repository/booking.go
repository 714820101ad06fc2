package repository

import (
	"context"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) CreateReservation(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx, `
		INSERT INTO reservations (user_id) VALUES ($1)
		RETURNING id`, userID).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *BookingRepository) AddDetail(ctx context.Context, dbtx db.DBTX, d booking.Detail) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO reservation_details
			(reservation_id, service_id, start_at, end_at, party_size, unit_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ReservationID, d.ServiceID, d.Slot.Start(), d.Slot.End(), d.PartySize, d.UnitPriceCents)
	if err != nil {
		return infra.WrapRepoErr("failed to add reservation detail", err)
	}
	return nil
}

// FindDetailsForService returns every booked detail of the service whose
// end date is from's date or later. The cut is on calendar dates, not
// timestamps: room overlap compares inclusive dates, so a stay ending
// today still blocks a same-day arrival even after checkout time.
// Callers arbitrating a new slot must already hold the service row lock.
func (r *BookingRepository) FindDetailsForService(ctx context.Context, dbtx db.DBTX, serviceID int64, from time.Time) ([]booking.Detail, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT reservation_id, service_id, start_at, end_at, party_size, unit_price_cents
		FROM reservation_details
		WHERE service_id = $1 AND end_at::date >= $2::date`, serviceID, from)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query service details", err)
	}
	defer rows.Close()

	details, err := scanDetails(rows)
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *BookingRepository) FindReservationByID(ctx context.Context, dbtx db.DBTX, id int64) (*booking.Reservation, error) {
	var (
		userID    uuid.UUID
		createdAt time.Time
	)
	err := dbtx.QueryRow(ctx, `
		SELECT user_id, created_at FROM reservations WHERE id = $1`, id).
		Scan(&userID, &createdAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	rows, err := dbtx.Query(ctx, `
		SELECT reservation_id, service_id, start_at, end_at, party_size, unit_price_cents
		FROM reservation_details
		WHERE reservation_id = $1
		ORDER BY service_id`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservation details", err)
	}
	defer rows.Close()

	details, err := scanDetails(rows)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructReservation(id, userID, createdAt, details), nil
}

func (r *BookingRepository) FindByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) ([]*booking.Reservation, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT r.id, r.created_at,
		       d.service_id, d.start_at, d.end_at, d.party_size, d.unit_price_cents
		FROM reservations r
		JOIN reservation_details d ON d.reservation_id = r.id
		WHERE r.user_id = $1
		ORDER BY r.id, d.service_id`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query user reservations", err)
	}
	defer rows.Close()

	var (
		result  []*booking.Reservation
		current *reservationRows
	)
	for rows.Next() {
		var (
			id        int64
			createdAt time.Time
			d         booking.Detail
			start     time.Time
			end       time.Time
		)
		if err := rows.Scan(&id, &createdAt, &d.ServiceID, &start, &end, &d.PartySize, &d.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		d.ReservationID = id
		d.Slot = booking.ReconstructSlot(start, end)

		if current == nil || current.id != id {
			if current != nil {
				result = append(result, current.build(userID))
			}
			current = &reservationRows{id: id, createdAt: createdAt}
		}
		current.details = append(current.details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	if current != nil {
		result = append(result, current.build(userID))
	}
	return result, nil
}

// DeleteDetail removes one service from a reservation and reports whether a
// row was actually deleted.
func (r *BookingRepository) DeleteDetail(ctx context.Context, dbtx db.DBTX, reservationID, serviceID int64) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
		DELETE FROM reservation_details
		WHERE reservation_id = $1 AND service_id = $2`, reservationID, serviceID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete reservation detail", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteIfEmpty drops the reservation container once its last detail is gone.
func (r *BookingRepository) DeleteIfEmpty(ctx context.Context, dbtx db.DBTX, reservationID int64) error {
	_, err := dbtx.Exec(ctx, `
		DELETE FROM reservations r
		WHERE r.id = $1
		  AND NOT EXISTS (SELECT 1 FROM reservation_details d WHERE d.reservation_id = r.id)`,
		reservationID)
	if err != nil {
		return infra.WrapRepoErr("failed to prune empty reservation", err)
	}
	return nil
}

// HasCompletedBooking reports whether the user has any stay at the service
// that ended on or before now. Used for review eligibility.
func (r *BookingRepository) HasCompletedBooking(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, serviceID int64, now time.Time) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM reservation_details d
			JOIN reservations r ON r.id = d.reservation_id
			WHERE r.user_id = $1 AND d.service_id = $2 AND d.end_at <= $3
		)`, userID, serviceID, now).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check completed bookings", err)
	}
	return exists, nil
}

type reservationRows struct {
	id        int64
	createdAt time.Time
	details   []booking.Detail
}

func (g *reservationRows) build(userID uuid.UUID) *booking.Reservation {
	return booking.ReconstructReservation(g.id, userID, g.createdAt, g.details)
}

type detailRows interface {
	Next() bool
	Scan(...any) error
	Err() error
}

func scanDetails(rows detailRows) ([]booking.Detail, error) {
	var details []booking.Detail
	for rows.Next() {
		var (
			d     booking.Detail
			start time.Time
			end   time.Time
		)
		if err := rows.Scan(&d.ReservationID, &d.ServiceID, &start, &end, &d.PartySize, &d.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan detail row", err)
		}
		d.Slot = booking.ReconstructSlot(start, end)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read detail rows", err)
	}
	return details, nil
}
