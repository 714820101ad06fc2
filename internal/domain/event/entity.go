package event

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidParticipants = errors.New("participants must be positive")
	ErrFullyBooked         = errors.New("event is fully booked")
	ErrNotEnoughSeats      = errors.New("not enough seats remaining")
	ErrEventInPast         = errors.New("event already in the past")
	ErrNoSubscription      = errors.New("no subscription to cancel")
)

// Event has a fixed seat count shared by all subscriptions.
type Event struct {
	id          int64
	title       string
	description string
	date        time.Time
	seats       int
	createdBy   uuid.UUID
}

// Subscription is a user's seat claim against an event. (event, user) is
// the composite key; repeat bookings increment participants.
type Subscription struct {
	EventID      int64
	UserID       uuid.UUID
	Participants int
	SubscribedAt time.Time
}

func Reconstruct(id int64, title, description string, date time.Time, seats int, createdBy uuid.UUID) *Event {
	return &Event{
		id:          id,
		title:       title,
		description: description,
		date:        date,
		seats:       seats,
		createdBy:   createdBy,
	}
}

func (e *Event) ID() int64           { return e.id }
func (e *Event) Title() string       { return e.title }
func (e *Event) Description() string { return e.description }
func (e *Event) Date() time.Time     { return e.date }
func (e *Event) Seats() int          { return e.seats }
func (e *Event) CreatedBy() uuid.UUID { return e.createdBy }

func (e *Event) Remaining(taken int) int {
	return e.seats - taken
}

// ArbitrateSeats decides a booking request against the seats already taken.
// Callers must hold the event row lock so taken cannot move under them.
func (e *Event) ArbitrateSeats(taken, requested int) error {
	if requested <= 0 {
		return ErrInvalidParticipants
	}
	remaining := e.Remaining(taken)
	if remaining <= 0 {
		return ErrFullyBooked
	}
	if requested > remaining {
		return ErrNotEnoughSeats
	}
	return nil
}

// IsPast reports whether the event date has passed relative to today.
func (e *Event) IsPast(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return e.date.Before(today)
}

// CanReview: subscribers may review once the event date has arrived.
func (e *Event) CanReview(now time.Time) bool {
	return !e.date.After(now)
}
