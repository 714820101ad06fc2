package repository

import (
	"context"
	"time"

	"resort-booking/internal/domain/event"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"

	"github.com/google/uuid"
)

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

// EventWithTaken pairs an event with the seats currently claimed, for
// listings that show remaining capacity.
type EventWithTaken struct {
	Event *event.Event
	Taken int
}

func scanEvent(row interface{ Scan(...any) error }) (*event.Event, error) {
	var (
		id          int64
		title       string
		description string
		date        time.Time
		seats       int
		createdBy   uuid.UUID
	)
	if err := row.Scan(&id, &title, &description, &date, &seats, &createdBy); err != nil {
		return nil, err
	}
	return event.Reconstruct(id, title, description, date, seats, createdBy), nil
}

func (r *EventRepository) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*event.Event, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, title, description, event_date, seats, created_by
		FROM events WHERE id = $1`, id)

	e, err := scanEvent(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event", err)
	}
	return e, nil
}

// LockByID takes the event row lock that serializes seat arbitration. Must
// be called inside a transaction.
func (r *EventRepository) LockByID(ctx context.Context, dbtx db.DBTX, id int64) (*event.Event, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, title, description, event_date, seats, created_by
		FROM events WHERE id = $1
		FOR UPDATE`, id)

	e, err := scanEvent(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock event", err)
	}
	return e, nil
}

func (r *EventRepository) FindAll(ctx context.Context, dbtx db.DBTX) ([]EventWithTaken, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT e.id, e.title, e.description, e.event_date, e.seats, e.created_by,
		       COALESCE(SUM(s.participants), 0)
		FROM events e
		LEFT JOIN event_subscriptions s ON s.event_id = e.id
		GROUP BY e.id
		ORDER BY e.event_date, e.id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query events", err)
	}
	defer rows.Close()

	var result []EventWithTaken
	for rows.Next() {
		var (
			id          int64
			title       string
			description string
			date        time.Time
			seats       int
			createdBy   uuid.UUID
			taken       int
		)
		if err := rows.Scan(&id, &title, &description, &date, &seats, &createdBy, &taken); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		result = append(result, EventWithTaken{
			Event: event.Reconstruct(id, title, description, date, seats, createdBy),
			Taken: taken,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read event rows", err)
	}
	return result, nil
}

// CountParticipants sums claimed seats. Callers arbitrating a booking must
// already hold the event row lock.
func (r *EventRepository) CountParticipants(ctx context.Context, dbtx db.DBTX, eventID int64) (int, error) {
	var taken int
	err := dbtx.QueryRow(ctx, `
		SELECT COALESCE(SUM(participants), 0)
		FROM event_subscriptions WHERE event_id = $1`, eventID).Scan(&taken)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count participants", err)
	}
	return taken, nil
}

// UpsertSubscription creates the user's subscription or adds participants
// to an existing one.
func (r *EventRepository) UpsertSubscription(ctx context.Context, dbtx db.DBTX, eventID int64, userID uuid.UUID, participants int) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO event_subscriptions (event_id, user_id, participants)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, user_id)
		DO UPDATE SET participants = event_subscriptions.participants + EXCLUDED.participants`,
		eventID, userID, participants)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert subscription", err)
	}
	return nil
}

func (r *EventRepository) FindSubscription(ctx context.Context, dbtx db.DBTX, eventID int64, userID uuid.UUID) (*event.Subscription, error) {
	var s event.Subscription
	err := dbtx.QueryRow(ctx, `
		SELECT event_id, user_id, participants, subscribed_at
		FROM event_subscriptions
		WHERE event_id = $1 AND user_id = $2`, eventID, userID).
		Scan(&s.EventID, &s.UserID, &s.Participants, &s.SubscribedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscription", err)
	}
	return &s, nil
}

// DeleteSubscription releases all of the user's seats and reports whether a
// subscription existed.
func (r *EventRepository) DeleteSubscription(ctx context.Context, dbtx db.DBTX, eventID int64, userID uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
		DELETE FROM event_subscriptions
		WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete subscription", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *EventRepository) FindSubscriptionsByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) ([]EventWithTaken, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT e.id, e.title, e.description, e.event_date, e.seats, e.created_by,
		       s.participants
		FROM event_subscriptions s
		JOIN events e ON e.id = s.event_id
		WHERE s.user_id = $1
		ORDER BY e.event_date, e.id`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query user subscriptions", err)
	}
	defer rows.Close()

	var result []EventWithTaken
	for rows.Next() {
		var (
			id          int64
			title       string
			description string
			date        time.Time
			seats       int
			createdBy   uuid.UUID
			mine        int
		)
		if err := rows.Scan(&id, &title, &description, &date, &seats, &createdBy, &mine); err != nil {
			return nil, infra.WrapRepoErr("failed to scan subscription row", err)
		}
		result = append(result, EventWithTaken{
			Event: event.Reconstruct(id, title, description, date, seats, createdBy),
			Taken: mine,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read subscription rows", err)
	}
	return result, nil
}
