package usecase

import (
	"context"
	"errors"

	"resort-booking/internal/domain/event"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/queue"
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*event.Event, error)
	LockByID(ctx context.Context, dbtx db.DBTX, id int64) (*event.Event, error)
	FindAll(ctx context.Context, dbtx db.DBTX) ([]repository.EventWithTaken, error)
	CountParticipants(ctx context.Context, dbtx db.DBTX, eventID int64) (int, error)
	UpsertSubscription(ctx context.Context, dbtx db.DBTX, eventID int64, userID uuid.UUID, participants int) error
	FindSubscription(ctx context.Context, dbtx db.DBTX, eventID int64, userID uuid.UUID) (*event.Subscription, error)
	DeleteSubscription(ctx context.Context, dbtx db.DBTX, eventID int64, userID uuid.UUID) (bool, error)
	FindSubscriptionsByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) ([]repository.EventWithTaken, error)
}

type EventUseCase interface {
	List(ctx context.Context) ([]repository.EventWithTaken, error)
	Book(ctx context.Context, userID uuid.UUID, eventID int64, participants int) error
	Cancel(ctx context.Context, userID uuid.UUID, eventID int64) error
}

type eventUseCaseImpl struct {
	pool      *pgxpool.Pool
	eventRepo EventRepository
	notifier  Notifier
	clock     clock.Clock
}

func NewEventUseCase(pool *pgxpool.Pool, eventRepo EventRepository, notifier Notifier, clk clock.Clock) EventUseCase {
	return &eventUseCaseImpl{
		pool:      pool,
		eventRepo: eventRepo,
		notifier:  notifier,
		clock:     clk,
	}
}

func (u *eventUseCaseImpl) List(ctx context.Context) ([]repository.EventWithTaken, error) {
	return u.eventRepo.FindAll(ctx, u.pool)
}

// Book claims participants seats. The event row lock serializes rival
// requests: the sum of claimed seats cannot move between the count and the
// insert, so the seat total never exceeds capacity.
func (u *eventUseCaseImpl) Book(ctx context.Context, userID uuid.UUID, eventID int64, participants int) error {
	now := u.clock.Now()

	_, err := shared.WithDefaultRetry(ctx, u.pool, func(tx db.DBTX) (struct{}, error) {
		e, err := u.eventRepo.LockByID(ctx, tx, eventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrEventNotFound
			}
			return struct{}{}, err
		}
		if e.IsPast(now) {
			return struct{}{}, event.ErrEventInPast
		}

		taken, err := u.eventRepo.CountParticipants(ctx, tx, eventID)
		if err != nil {
			return struct{}{}, err
		}
		if err := e.ArbitrateSeats(taken, participants); err != nil {
			return struct{}{}, err
		}

		return struct{}{}, u.eventRepo.UpsertSubscription(ctx, tx, eventID, userID, participants)
	})
	if err != nil {
		return err
	}

	u.notifier.Publish(ctx, queue.KeyEventBooked, map[string]any{
		"event_id":     eventID,
		"user_id":      userID,
		"participants": participants,
	})
	return nil
}

// Cancel releases all of the user's seats for the event. Seats for an
// event that already took place cannot be released.
func (u *eventUseCaseImpl) Cancel(ctx context.Context, userID uuid.UUID, eventID int64) error {
	now := u.clock.Now()

	_, err := shared.RunInTx(ctx, u.pool, func(tx db.DBTX) (struct{}, error) {
		e, err := u.eventRepo.FindByID(ctx, tx, eventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrEventNotFound
			}
			return struct{}{}, err
		}
		if e.IsPast(now) {
			return struct{}{}, event.ErrEventInPast
		}

		deleted, err := u.eventRepo.DeleteSubscription(ctx, tx, eventID, userID)
		if err != nil {
			return struct{}{}, err
		}
		if !deleted {
			return struct{}{}, event.ErrNoSubscription
		}
		return struct{}{}, nil
	})
	if err != nil {
		return err
	}

	u.notifier.Publish(ctx, queue.KeyEventCancelled, map[string]any{
		"event_id": eventID,
		"user_id":  userID,
	})
	return nil
}
