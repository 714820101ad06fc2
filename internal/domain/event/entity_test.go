//go:build unit

package event_test

import (
	"testing"
	"time"

	"resort-booking/internal/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func gala(seats int) *event.Event {
	return event.Reconstruct(1, "Summer Gala", "", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), seats, uuid.New())
}

func TestArbitrateSeats(t *testing.T) {
	tests := []struct {
		name      string
		seats     int
		taken     int
		requested int
		wantErr   error
	}{
		{name: "fits remaining", seats: 10, taken: 7, requested: 3},
		{name: "single seat on empty event", seats: 10, taken: 0, requested: 1},
		{name: "exceeds remaining", seats: 10, taken: 7, requested: 4, wantErr: event.ErrNotEnoughSeats},
		{name: "fully booked", seats: 10, taken: 10, requested: 1, wantErr: event.ErrFullyBooked},
		{name: "overbooked somehow", seats: 10, taken: 12, requested: 1, wantErr: event.ErrFullyBooked},
		{name: "zero participants", seats: 10, taken: 0, requested: 0, wantErr: event.ErrInvalidParticipants},
		{name: "negative participants", seats: 10, taken: 0, requested: -2, wantErr: event.ErrInvalidParticipants},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gala(tt.seats).ArbitrateSeats(tt.taken, tt.requested)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 3, gala(10).Remaining(7))
	assert.Equal(t, 0, gala(10).Remaining(10))
}

func TestIsPast(t *testing.T) {
	e := gala(10)

	t.Run("same day is not past", func(t *testing.T) {
		now := time.Date(2025, 7, 1, 23, 30, 0, 0, time.UTC)
		assert.False(t, e.IsPast(now))
	})

	t.Run("next day is past", func(t *testing.T) {
		now := time.Date(2025, 7, 2, 0, 30, 0, 0, time.UTC)
		assert.True(t, e.IsPast(now))
	})

	t.Run("day before is not past", func(t *testing.T) {
		now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
		assert.False(t, e.IsPast(now))
	})
}

func TestCanReview(t *testing.T) {
	e := gala(10)
	assert.False(t, e.CanReview(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)))
	assert.True(t, e.CanReview(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, e.CanReview(time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)))
}
