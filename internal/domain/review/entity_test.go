//go:build unit

package review_test

import (
	"strings"
	"testing"

	"resort-booking/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func TestNewReview(t *testing.T) {
	userID := uuid.New()

	t.Run("service review", func(t *testing.T) {
		r, err := review.New(userID, ptr(3), nil, 5, "great stay")
		require.NoError(t, err)
		assert.True(t, r.IsServiceReview())
		assert.Equal(t, int64(3), *r.ServiceID())
		assert.Nil(t, r.EventID())
	})

	t.Run("event review", func(t *testing.T) {
		r, err := review.New(userID, nil, ptr(7), 4, "")
		require.NoError(t, err)
		assert.False(t, r.IsServiceReview())
	})

	t.Run("rejects rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := review.New(userID, ptr(3), nil, rating, "")
			assert.ErrorIs(t, err, review.ErrInvalidRating)
		}
	})

	t.Run("rejects both targets", func(t *testing.T) {
		_, err := review.New(userID, ptr(3), ptr(7), 4, "")
		assert.ErrorIs(t, err, review.ErrInvalidTarget)
	})

	t.Run("rejects no target", func(t *testing.T) {
		_, err := review.New(userID, nil, nil, 4, "")
		assert.ErrorIs(t, err, review.ErrInvalidTarget)
	})

	t.Run("trims and bounds the comment", func(t *testing.T) {
		r, err := review.New(userID, ptr(3), nil, 3, "  fine  ")
		require.NoError(t, err)
		assert.Equal(t, "fine", r.Comment())

		_, err = review.New(userID, ptr(3), nil, 3, strings.Repeat("x", review.MaxCommentLength+1))
		assert.ErrorIs(t, err, review.ErrCommentTooLong)
	})
}
