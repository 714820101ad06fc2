package review

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrInvalidTarget  = errors.New("review must target exactly one of service or event")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
	ErrNotEligible    = errors.New("user is not eligible to review this target")
)

const MaxCommentLength = 1000

// Review rates either a service or an event, never both.
type Review struct {
	id        int64
	userID    uuid.UUID
	serviceID *int64
	eventID   *int64
	rating    int
	comment   string
	createdAt time.Time
}

func New(userID uuid.UUID, serviceID, eventID *int64, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if (serviceID == nil) == (eventID == nil) {
		return nil, ErrInvalidTarget
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > MaxCommentLength {
		return nil, ErrCommentTooLong
	}
	return &Review{
		userID:    userID,
		serviceID: serviceID,
		eventID:   eventID,
		rating:    rating,
		comment:   comment,
	}, nil
}

func Reconstruct(id int64, userID uuid.UUID, serviceID, eventID *int64, rating int, comment string, createdAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		serviceID: serviceID,
		eventID:   eventID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
	}
}

func (r *Review) ID() int64            { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) ServiceID() *int64    { return r.serviceID }
func (r *Review) EventID() *int64      { return r.eventID }
func (r *Review) Rating() int          { return r.rating }
func (r *Review) Comment() string      { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

func (r *Review) IsServiceReview() bool {
	return r.serviceID != nil
}
