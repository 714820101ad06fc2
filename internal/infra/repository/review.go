package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resort-booking/internal/domain/review"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// Create saves a review, overwriting the user's previous review for the
// same target. The partial unique indexes on (user_id, service_id) and
// (user_id, event_id) carry the one-review-per-target rule.
func (r *ReviewRepository) Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (int64, error) {
	conflict := `(user_id, event_id) WHERE event_id IS NOT NULL`
	if rev.ServiceID() != nil {
		conflict = `(user_id, service_id) WHERE service_id IS NOT NULL`
	}

	var id int64
	err := dbtx.QueryRow(ctx, `
		INSERT INTO reviews (user_id, service_id, event_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT `+conflict+`
		DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment
		RETURNING id`,
		rev.UserID(), rev.ServiceID(), rev.EventID(), rev.Rating(), rev.Comment()).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to save review", err)
	}
	return id, nil
}

func (r *ReviewRepository) FindByService(ctx context.Context, dbtx db.DBTX, serviceID int64) ([]*review.Review, error) {
	return r.findByTarget(ctx, dbtx, `service_id`, serviceID)
}

func (r *ReviewRepository) FindByEvent(ctx context.Context, dbtx db.DBTX, eventID int64) ([]*review.Review, error) {
	return r.findByTarget(ctx, dbtx, `event_id`, eventID)
}

func (r *ReviewRepository) findByTarget(ctx context.Context, dbtx db.DBTX, column string, targetID int64) ([]*review.Review, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT id, user_id, service_id, event_id, rating, comment, created_at
		FROM reviews
		WHERE `+column+` = $1
		ORDER BY created_at DESC, id DESC`, targetID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reviews", err)
	}
	defer rows.Close()

	var result []*review.Review
	for rows.Next() {
		var (
			id        int64
			userID    uuid.UUID
			serviceID *int64
			eventID   *int64
			rating    int
			comment   string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &userID, &serviceID, &eventID, &rating, &comment, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, review.Reconstruct(id, userID, serviceID, eventID, rating, comment, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return result, nil
}

// ReviewFilter narrows the global review listing. Zero values mean
// "no filter"; Order falls back to newest-first.
type ReviewFilter struct {
	Target      string
	ServiceType string
	RatingMin   int
	RatingMax   int
	Username    string
	Query       string
	Order       string
	Limit       int
	Offset      int
}

// ReviewListItem is a review joined with display context.
type ReviewListItem struct {
	Review      *review.Review
	Username    string
	ServiceType string
	EventTitle  string
}

var reviewOrderings = map[string]string{
	"newest":      "r.created_at DESC, r.id DESC",
	"oldest":      "r.created_at ASC, r.id ASC",
	"rating_desc": "r.rating DESC, r.created_at DESC",
	"rating_asc":  "r.rating ASC, r.created_at DESC",
}

// Search lists reviews across all targets with the given filters, returning
// the page and the unpaged total.
func (r *ReviewRepository) Search(ctx context.Context, dbtx db.DBTX, f ReviewFilter) ([]ReviewListItem, int, error) {
	where := []string{"TRUE"}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch f.Target {
	case "service":
		where = append(where, "r.service_id IS NOT NULL")
	case "event":
		where = append(where, "r.event_id IS NOT NULL")
	}
	if f.ServiceType != "" {
		where = append(where, "s.type = "+arg(f.ServiceType))
	}
	if f.RatingMin > 0 {
		where = append(where, "r.rating >= "+arg(f.RatingMin))
	}
	if f.RatingMax > 0 {
		where = append(where, "r.rating <= "+arg(f.RatingMax))
	}
	if f.Username != "" {
		where = append(where, "u.username ILIKE "+arg("%"+f.Username+"%"))
	}
	if f.Query != "" {
		p := arg("%" + f.Query + "%")
		where = append(where, "(r.comment ILIKE "+p+" OR e.title ILIKE "+p+")")
	}

	fromClause := `
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		LEFT JOIN services s ON s.id = r.service_id
		LEFT JOIN events e ON e.id = r.event_id
		WHERE ` + strings.Join(where, " AND ")

	var total int
	if err := dbtx.QueryRow(ctx, `SELECT COUNT(*)`+fromClause, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reviews", err)
	}

	orderBy, ok := reviewOrderings[f.Order]
	if !ok {
		orderBy = reviewOrderings["newest"]
	}

	query := `
		SELECT r.id, r.user_id, r.service_id, r.event_id, r.rating, r.comment, r.created_at,
		       u.username, COALESCE(s.type, ''), COALESCE(e.title, '')` +
		fromClause + `
		ORDER BY ` + orderBy + `
		LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(f.Offset)

	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to search reviews", err)
	}
	defer rows.Close()

	var result []ReviewListItem
	for rows.Next() {
		var (
			id          int64
			userID      uuid.UUID
			serviceID   *int64
			eventID     *int64
			rating      int
			comment     string
			createdAt   time.Time
			username    string
			serviceType string
			eventTitle  string
		)
		if err := rows.Scan(&id, &userID, &serviceID, &eventID, &rating, &comment, &createdAt,
			&username, &serviceType, &eventTitle); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan review search row", err)
		}
		result = append(result, ReviewListItem{
			Review:      review.Reconstruct(id, userID, serviceID, eventID, rating, comment, createdAt),
			Username:    username,
			ServiceType: serviceType,
			EventTitle:  eventTitle,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read review search rows", err)
	}
	return result, total, nil
}

// AverageRating returns the mean rating for a service, or 0 when the
// service has no reviews yet.
func (r *ReviewRepository) AverageRating(ctx context.Context, dbtx db.DBTX, serviceID int64) (float64, error) {
	var avg float64
	err := dbtx.QueryRow(ctx, `
		SELECT COALESCE(AVG(rating), 0)
		FROM reviews WHERE service_id = $1`, serviceID).Scan(&avg)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to compute average rating", err)
	}
	return avg, nil
}
