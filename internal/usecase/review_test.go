//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"resort-booking/internal/domain/event"
	"resort-booking/internal/domain/review"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	created    []*review.Review
	lastFilter repository.ReviewFilter
}

func (f *fakeReviewRepo) Create(_ context.Context, _ db.DBTX, rev *review.Review) (int64, error) {
	f.created = append(f.created, rev)
	return int64(len(f.created)), nil
}

func (f *fakeReviewRepo) FindByService(_ context.Context, _ db.DBTX, _ int64) ([]*review.Review, error) {
	return f.created, nil
}

func (f *fakeReviewRepo) FindByEvent(_ context.Context, _ db.DBTX, _ int64) ([]*review.Review, error) {
	return f.created, nil
}

func (f *fakeReviewRepo) Search(_ context.Context, _ db.DBTX, filter repository.ReviewFilter) ([]repository.ReviewListItem, int, error) {
	f.lastFilter = filter
	items := make([]repository.ReviewListItem, len(f.created))
	for i, rev := range f.created {
		items[i] = repository.ReviewListItem{Review: rev, Username: "alice"}
	}
	return items, len(items), nil
}

func (f *fakeReviewRepo) AverageRating(_ context.Context, _ db.DBTX, _ int64) (float64, error) {
	return 4.5, nil
}

type fakeEligibility struct {
	completed bool
}

func (f *fakeEligibility) HasCompletedBooking(_ context.Context, _ db.DBTX, _ uuid.UUID, _ int64, _ time.Time) (bool, error) {
	return f.completed, nil
}

// fakeEventRepo serves FindByID and FindSubscription; the rest is unused
// by the review flow.
type fakeEventRepo struct {
	event      *event.Event
	subscribed bool
}

func (f *fakeEventRepo) FindByID(_ context.Context, _ db.DBTX, _ int64) (*event.Event, error) {
	if f.event == nil {
		return nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)
	}
	return f.event, nil
}

func (f *fakeEventRepo) LockByID(ctx context.Context, dbtx db.DBTX, id int64) (*event.Event, error) {
	return f.FindByID(ctx, dbtx, id)
}

func (f *fakeEventRepo) FindAll(_ context.Context, _ db.DBTX) ([]repository.EventWithTaken, error) {
	return nil, nil
}

func (f *fakeEventRepo) CountParticipants(_ context.Context, _ db.DBTX, _ int64) (int, error) {
	return 0, nil
}

func (f *fakeEventRepo) UpsertSubscription(_ context.Context, _ db.DBTX, _ int64, _ uuid.UUID, _ int) error {
	return nil
}

func (f *fakeEventRepo) FindSubscription(_ context.Context, _ db.DBTX, eventID int64, userID uuid.UUID) (*event.Subscription, error) {
	if !f.subscribed {
		return nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)
	}
	return &event.Subscription{EventID: eventID, UserID: userID, Participants: 2}, nil
}

func (f *fakeEventRepo) DeleteSubscription(_ context.Context, _ db.DBTX, _ int64, _ uuid.UUID) (bool, error) {
	return f.subscribed, nil
}

func (f *fakeEventRepo) FindSubscriptionsByUser(_ context.Context, _ db.DBTX, _ uuid.UUID) ([]repository.EventWithTaken, error) {
	return nil, nil
}

func TestCreateServiceReview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("eligible guest can review", func(t *testing.T) {
		repo := &fakeReviewRepo{}
		uc := usecase.NewReviewUseCase(nil, repo, &fakeEligibility{completed: true}, &fakeEventRepo{}, clock.NewMockClock(now))

		rev, err := uc.CreateServiceReview(ctx, userID, 3, 5, "lovely room")
		require.NoError(t, err)
		assert.Equal(t, 5, rev.Rating())
		assert.True(t, rev.IsServiceReview())
		require.Len(t, repo.created, 1)
	})

	t.Run("no finished stay means no review", func(t *testing.T) {
		uc := usecase.NewReviewUseCase(nil, &fakeReviewRepo{}, &fakeEligibility{completed: false}, &fakeEventRepo{}, clock.NewMockClock(now))

		_, err := uc.CreateServiceReview(ctx, userID, 3, 5, "")
		assert.ErrorIs(t, err, review.ErrNotEligible)
	})

	t.Run("invalid rating is rejected before persistence", func(t *testing.T) {
		repo := &fakeReviewRepo{}
		uc := usecase.NewReviewUseCase(nil, repo, &fakeEligibility{completed: true}, &fakeEventRepo{}, clock.NewMockClock(now))

		_, err := uc.CreateServiceReview(ctx, userID, 3, 6, "")
		assert.ErrorIs(t, err, review.ErrInvalidRating)
		assert.Empty(t, repo.created)
	})
}

func TestCreateEventReview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC)

	pastEvent := event.Reconstruct(1, "Summer Gala", "", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 50, uuid.New())
	futureEvent := event.Reconstruct(2, "Autumn Gala", "", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), 50, uuid.New())

	t.Run("subscriber can review after the event", func(t *testing.T) {
		uc := usecase.NewReviewUseCase(nil, &fakeReviewRepo{}, &fakeEligibility{}, &fakeEventRepo{event: pastEvent, subscribed: true}, clock.NewMockClock(now))

		rev, err := uc.CreateEventReview(ctx, userID, 1, 4, "great show")
		require.NoError(t, err)
		assert.False(t, rev.IsServiceReview())
	})

	t.Run("non-subscriber cannot review", func(t *testing.T) {
		uc := usecase.NewReviewUseCase(nil, &fakeReviewRepo{}, &fakeEligibility{}, &fakeEventRepo{event: pastEvent, subscribed: false}, clock.NewMockClock(now))

		_, err := uc.CreateEventReview(ctx, userID, 1, 4, "")
		assert.ErrorIs(t, err, review.ErrNotEligible)
	})

	t.Run("cannot review before the event date", func(t *testing.T) {
		uc := usecase.NewReviewUseCase(nil, &fakeReviewRepo{}, &fakeEligibility{}, &fakeEventRepo{event: futureEvent, subscribed: true}, clock.NewMockClock(now))

		_, err := uc.CreateEventReview(ctx, userID, 2, 4, "")
		assert.ErrorIs(t, err, review.ErrNotEligible)
	})

	t.Run("unknown event", func(t *testing.T) {
		uc := usecase.NewReviewUseCase(nil, &fakeReviewRepo{}, &fakeEligibility{}, &fakeEventRepo{}, clock.NewMockClock(now))

		_, err := uc.CreateEventReview(ctx, userID, 9, 4, "")
		assert.ErrorIs(t, err, usecase.ErrEventNotFound)
	})
}

func TestSearchReviews(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC)

	t.Run("defaults the page size", func(t *testing.T) {
		repo := &fakeReviewRepo{}
		uc := usecase.NewReviewUseCase(nil, repo, &fakeEligibility{}, &fakeEventRepo{}, clock.NewMockClock(now))

		_, _, err := uc.Search(ctx, repository.ReviewFilter{})
		require.NoError(t, err)
		assert.Equal(t, 10, repo.lastFilter.Limit)
		assert.Zero(t, repo.lastFilter.Offset)
	})

	t.Run("caps oversized pages", func(t *testing.T) {
		repo := &fakeReviewRepo{}
		uc := usecase.NewReviewUseCase(nil, repo, &fakeEligibility{}, &fakeEventRepo{}, clock.NewMockClock(now))

		_, _, err := uc.Search(ctx, repository.ReviewFilter{Limit: 500, Offset: -3})
		require.NoError(t, err)
		assert.Equal(t, 50, repo.lastFilter.Limit)
		assert.Zero(t, repo.lastFilter.Offset)
	})

	t.Run("passes filters through", func(t *testing.T) {
		repo := &fakeReviewRepo{}
		uc := usecase.NewReviewUseCase(nil, repo, &fakeEligibility{}, &fakeEventRepo{}, clock.NewMockClock(now))

		filter := repository.ReviewFilter{Target: "service", RatingMin: 3, Username: "ali", Order: "rating_desc", Limit: 20}
		_, _, err := uc.Search(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, filter, repo.lastFilter)
	})
}
