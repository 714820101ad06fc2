package repository

import (
	"context"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/service"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
)

const serviceColumns = `s.id, s.type, s.price_cents, s.status, COALESCE(st.code, ''), COALESCE(st.capacity, 0)`

type ServiceRepository struct{}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

func scanService(row interface{ Scan(...any) error }) (*service.Service, error) {
	var (
		id         int64
		typ        string
		priceCents int64
		status     string
		code       string
		capacity   int
	)
	if err := row.Scan(&id, &typ, &priceCents, &status, &code, &capacity); err != nil {
		return nil, err
	}
	return service.Reconstruct(id, service.Type(typ), priceCents, service.Status(status), code, capacity), nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*service.Service, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT `+serviceColumns+`
		FROM services s
		LEFT JOIN service_subtypes st ON st.service_id = s.id
		WHERE s.id = $1`, id)

	svc, err := scanService(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return svc, nil
}

// LockByID takes the service row lock that serializes booking arbitration
// for this service. Must be called inside a transaction.
func (r *ServiceRepository) LockByID(ctx context.Context, dbtx db.DBTX, id int64) (*service.Service, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT `+serviceColumns+`
		FROM services s
		LEFT JOIN service_subtypes st ON st.service_id = s.id
		WHERE s.id = $1
		FOR UPDATE OF s`, id)

	svc, err := scanService(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock service", err)
	}
	return svc, nil
}

// FindAvailable lists AVAILABLE services of the given type that fit the
// party and have no booking conflicting with the requested slot. Rooms
// compare calendar-date bounds inclusively; meal slots compare the exact
// window half-open.
func (r *ServiceRepository) FindAvailable(ctx context.Context, dbtx db.DBTX, typ service.Type, slot booking.Slot, partySize int) ([]*service.Service, error) {
	conflict := `d.start_at < $2 AND $1 < d.end_at`
	if typ == service.TypeRoom {
		conflict = `d.start_at::date <= $2::date AND $1::date <= d.end_at::date`
	}

	rows, err := dbtx.Query(ctx, `
		SELECT `+serviceColumns+`
		FROM services s
		JOIN service_subtypes st ON st.service_id = s.id
		WHERE s.type = $3
		  AND s.status = $4
		  AND st.capacity >= $5
		  AND NOT EXISTS (
			SELECT 1 FROM reservation_details d
			WHERE d.service_id = s.id AND `+conflict+`
		  )
		ORDER BY s.id`,
		slot.Start(), slot.End(), typ.String(), service.StatusAvailable.String(), partySize)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availability", err)
	}
	defer rows.Close()

	var result []*service.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability rows", err)
	}
	return result, nil
}

// FindAllByType lists services of a type regardless of slot, for catalog
// pages. Walk-in types (pool, playground) have no subtype row.
func (r *ServiceRepository) FindAllByType(ctx context.Context, dbtx db.DBTX, typ service.Type) ([]*service.Service, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT `+serviceColumns+`
		FROM services s
		LEFT JOIN service_subtypes st ON st.service_id = s.id
		WHERE s.type = $1
		ORDER BY s.id`, typ.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query services", err)
	}
	defer rows.Close()

	var result []*service.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}
	return result, nil
}
