package usecase

import (
	"context"
	"time"

	"resort-booking/internal/domain/review"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (int64, error)
	FindByService(ctx context.Context, dbtx db.DBTX, serviceID int64) ([]*review.Review, error)
	FindByEvent(ctx context.Context, dbtx db.DBTX, eventID int64) ([]*review.Review, error)
	Search(ctx context.Context, dbtx db.DBTX, f repository.ReviewFilter) ([]repository.ReviewListItem, int, error)
	AverageRating(ctx context.Context, dbtx db.DBTX, serviceID int64) (float64, error)
}

// ReviewEligibility answers whether the user has actually used the target:
// a finished stay for services, a subscription for events.
type ReviewEligibility interface {
	HasCompletedBooking(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, serviceID int64, now time.Time) (bool, error)
}

type ReviewUseCase interface {
	CreateServiceReview(ctx context.Context, userID uuid.UUID, serviceID int64, rating int, comment string) (*review.Review, error)
	CreateEventReview(ctx context.Context, userID uuid.UUID, eventID int64, rating int, comment string) (*review.Review, error)
	ListByService(ctx context.Context, serviceID int64) ([]*review.Review, float64, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*review.Review, error)
	Search(ctx context.Context, f repository.ReviewFilter) ([]repository.ReviewListItem, int, error)
}

type reviewUseCaseImpl struct {
	pool        *pgxpool.Pool
	reviewRepo  ReviewRepository
	bookingRepo ReviewEligibility
	eventRepo   EventRepository
	clock       clock.Clock
}

func NewReviewUseCase(pool *pgxpool.Pool, reviewRepo ReviewRepository, bookingRepo ReviewEligibility, eventRepo EventRepository, clk clock.Clock) ReviewUseCase {
	return &reviewUseCaseImpl{
		pool:        pool,
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		clock:       clk,
	}
}

func (u *reviewUseCaseImpl) CreateServiceReview(ctx context.Context, userID uuid.UUID, serviceID int64, rating int, comment string) (*review.Review, error) {
	now := u.clock.Now()

	eligible, err := u.bookingRepo.HasCompletedBooking(ctx, u.pool, userID, serviceID, now)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, review.ErrNotEligible
	}

	rev, err := review.New(userID, &serviceID, nil, rating, comment)
	if err != nil {
		return nil, err
	}

	id, err := u.reviewRepo.Create(ctx, u.pool, rev)
	if err != nil {
		return nil, err
	}
	return review.Reconstruct(id, userID, rev.ServiceID(), nil, rev.Rating(), rev.Comment(), now), nil
}

func (u *reviewUseCaseImpl) CreateEventReview(ctx context.Context, userID uuid.UUID, eventID int64, rating int, comment string) (*review.Review, error) {
	now := u.clock.Now()

	e, err := u.eventRepo.FindByID(ctx, u.pool, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if !e.CanReview(now) {
		return nil, review.ErrNotEligible
	}
	if _, err := u.eventRepo.FindSubscription(ctx, u.pool, eventID, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, review.ErrNotEligible
		}
		return nil, err
	}

	rev, err := review.New(userID, nil, &eventID, rating, comment)
	if err != nil {
		return nil, err
	}

	id, err := u.reviewRepo.Create(ctx, u.pool, rev)
	if err != nil {
		return nil, err
	}
	return review.Reconstruct(id, userID, nil, rev.EventID(), rev.Rating(), rev.Comment(), now), nil
}

func (u *reviewUseCaseImpl) ListByService(ctx context.Context, serviceID int64) ([]*review.Review, float64, error) {
	reviews, err := u.reviewRepo.FindByService(ctx, u.pool, serviceID)
	if err != nil {
		return nil, 0, err
	}
	avg, err := u.reviewRepo.AverageRating(ctx, u.pool, serviceID)
	if err != nil {
		return nil, 0, err
	}
	return reviews, avg, nil
}

func (u *reviewUseCaseImpl) ListByEvent(ctx context.Context, eventID int64) ([]*review.Review, error) {
	return u.reviewRepo.FindByEvent(ctx, u.pool, eventID)
}

const (
	defaultReviewPageSize = 10
	maxReviewPageSize     = 50
)

func (u *reviewUseCaseImpl) Search(ctx context.Context, f repository.ReviewFilter) ([]repository.ReviewListItem, int, error) {
	if f.Limit <= 0 {
		f.Limit = defaultReviewPageSize
	}
	if f.Limit > maxReviewPageSize {
		f.Limit = maxReviewPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return u.reviewRepo.Search(ctx, u.pool, f)
}
