//go:build unit

package booking_test

import (
	"testing"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRoomStay(t *testing.T) {
	t.Run("fixes check-in and check-out hours", func(t *testing.T) {
		slot, err := booking.NewRoomStay(date(2025, 6, 1), date(2025, 6, 3), time.UTC)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC), slot.Start())
		assert.Equal(t, time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC), slot.End())
		assert.Equal(t, 2, slot.Nights())
	})

	t.Run("requires at least one night", func(t *testing.T) {
		_, err := booking.NewRoomStay(date(2025, 6, 1), date(2025, 6, 1), time.UTC)
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

		_, err = booking.NewRoomStay(date(2025, 6, 3), date(2025, 6, 1), time.UTC)
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("normalizes a timestamp to its date", func(t *testing.T) {
		slot, err := booking.NewRoomStay(
			time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2025, 6, 2, 0, 1, 0, 0, time.UTC),
			time.UTC,
		)
		require.NoError(t, err)
		assert.Equal(t, 1, slot.Nights())
	})
}

func TestNewMealWindow(t *testing.T) {
	cases := []struct {
		name      string
		meal      booking.MealSlot
		startHour int
	}{
		{"breakfast", booking.MealBreakfast, 8},
		{"lunch", booking.MealLunch, 12},
		{"dinner", booking.MealDinner, 19},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := booking.NewMealWindow(date(2025, 6, 1), tc.meal, time.UTC)
			require.NoError(t, err)

			assert.Equal(t, tc.startHour, slot.Start().Hour())
			assert.Equal(t, 2*time.Hour, slot.End().Sub(slot.Start()))
		})
	}

	t.Run("rejects unknown slot", func(t *testing.T) {
		_, err := booking.NewMealWindow(date(2025, 6, 1), booking.MealSlot("brunch"), time.UTC)
		assert.ErrorIs(t, err, booking.ErrInvalidMealSlot)
	})
}

func TestSlotConflicts(t *testing.T) {
	t.Run("meal windows are half-open: back-to-back does not conflict", func(t *testing.T) {
		lunch, _ := booking.NewMealWindow(date(2025, 6, 1), booking.MealLunch, time.UTC)
		dinner, _ := booking.NewMealWindow(date(2025, 6, 1), booking.MealDinner, time.UTC)
		lunchAgain, _ := booking.NewMealWindow(date(2025, 6, 1), booking.MealLunch, time.UTC)

		assert.False(t, lunch.ConflictsWith(dinner, service.TypeRestaurant))
		assert.True(t, lunch.ConflictsWith(lunchAgain, service.TypeRestaurant))
	})

	t.Run("same window on another day does not conflict", func(t *testing.T) {
		a, _ := booking.NewMealWindow(date(2025, 6, 1), booking.MealDinner, time.UTC)
		b, _ := booking.NewMealWindow(date(2025, 6, 2), booking.MealDinner, time.UTC)

		assert.False(t, a.ConflictsWith(b, service.TypeRestaurant))
	})

	t.Run("room stays use inclusive date bounds", func(t *testing.T) {
		first, _ := booking.NewRoomStay(date(2025, 6, 1), date(2025, 6, 3), time.UTC)
		overlapping, _ := booking.NewRoomStay(date(2025, 6, 2), date(2025, 6, 4), time.UTC)
		backToBack, _ := booking.NewRoomStay(date(2025, 6, 3), date(2025, 6, 5), time.UTC)
		clear, _ := booking.NewRoomStay(date(2025, 6, 4), date(2025, 6, 6), time.UTC)

		assert.True(t, first.ConflictsWith(overlapping, service.TypeRoom))
		// Inclusive bounds: a stay ending 6/3 blocks one starting 6/3.
		assert.True(t, first.ConflictsWith(backToBack, service.TypeRoom))
		assert.False(t, first.ConflictsWith(clear, service.TypeRoom))
	})

	t.Run("conflict is symmetric", func(t *testing.T) {
		first, _ := booking.NewRoomStay(date(2025, 6, 1), date(2025, 6, 3), time.UTC)
		second, _ := booking.NewRoomStay(date(2025, 6, 2), date(2025, 6, 4), time.UTC)

		assert.Equal(t,
			first.ConflictsWith(second, service.TypeRoom),
			second.ConflictsWith(first, service.TypeRoom),
		)
	})
}

func TestSlotInPast(t *testing.T) {
	stay, err := booking.NewRoomStay(date(2025, 6, 1), date(2025, 6, 3), time.UTC)
	require.NoError(t, err)

	t.Run("earlier start date is in the past", func(t *testing.T) {
		assert.True(t, stay.InPast(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)))
	})

	t.Run("same-day booking is allowed", func(t *testing.T) {
		// Even late in the evening, after the 14:00 check-in hour.
		assert.False(t, stay.InPast(time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)))
	})

	t.Run("future start date is not in the past", func(t *testing.T) {
		assert.False(t, stay.InPast(time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)))
	})
}
