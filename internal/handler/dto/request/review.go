package request

import (
	"resort-booking/internal/infra/repository"
)

// ReviewSearchRequest filters the global review listing.
type ReviewSearchRequest struct {
	Target      string `form:"target" binding:"omitempty,oneof=all service event"`
	ServiceType string `form:"service_type" binding:"omitempty,oneof=ROOM RESTAURANT"`
	RatingMin   int    `form:"rating_min" binding:"omitempty,min=1,max=5"`
	RatingMax   int    `form:"rating_max" binding:"omitempty,min=1,max=5"`
	Username    string `form:"username"`
	Query       string `form:"q"`
	Order       string `form:"order" binding:"omitempty,oneof=newest oldest rating_desc rating_asc"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=50"`
	Offset      int    `form:"offset" binding:"omitempty,min=0"`
}

func (r *ReviewSearchRequest) ToFilter() repository.ReviewFilter {
	return repository.ReviewFilter{
		Target:      r.Target,
		ServiceType: r.ServiceType,
		RatingMin:   r.RatingMin,
		RatingMax:   r.RatingMax,
		Username:    r.Username,
		Query:       r.Query,
		Order:       r.Order,
		Limit:       r.Limit,
		Offset:      r.Offset,
	}
}

type CreateServiceReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

type CreateEventReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}
