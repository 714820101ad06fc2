package response

import (
	"resort-booking/internal/domain/review"
	"resort-booking/internal/infra/repository"
)

type ReviewResponse struct {
	ID        int64  `json:"id"`
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

func FromReview(r *review.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID(),
		UserID:    r.UserID().String(),
		Rating:    r.Rating(),
		Comment:   r.Comment(),
		CreatedAt: r.CreatedAt().Unix(),
	}
}

type ReviewListResponse struct {
	Reviews       []*ReviewResponse `json:"reviews"`
	AverageRating float64           `json:"average_rating,omitempty"`
}

func FromReviewList(reviews []*review.Review, avg float64) *ReviewListResponse {
	res := make([]*ReviewResponse, len(reviews))
	for i, r := range reviews {
		res[i] = FromReview(r)
	}
	return &ReviewListResponse{Reviews: res, AverageRating: avg}
}

// ReviewSearchItemResponse is one row of the global review listing, with
// enough context to render it without extra lookups.
type ReviewSearchItemResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	ServiceID   *int64 `json:"service_id,omitempty"`
	EventID     *int64 `json:"event_id,omitempty"`
	ServiceType string `json:"service_type,omitempty"`
	EventTitle  string `json:"event_title,omitempty"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

type ReviewSearchResponse struct {
	Reviews []*ReviewSearchItemResponse `json:"reviews"`
	Total   int                         `json:"total"`
}

func FromReviewSearch(items []repository.ReviewListItem, total int) *ReviewSearchResponse {
	res := make([]*ReviewSearchItemResponse, len(items))
	for i, item := range items {
		res[i] = &ReviewSearchItemResponse{
			ID:          item.Review.ID(),
			Username:    item.Username,
			ServiceID:   item.Review.ServiceID(),
			EventID:     item.Review.EventID(),
			ServiceType: item.ServiceType,
			EventTitle:  item.EventTitle,
			Rating:      item.Review.Rating(),
			Comment:     item.Review.Comment(),
			CreatedAt:   item.Review.CreatedAt().Unix(),
		}
	}
	return &ReviewSearchResponse{Reviews: res, Total: total}
}
