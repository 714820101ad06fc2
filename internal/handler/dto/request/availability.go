package request

import (
	"resort-booking/internal/domain/service"
	"resort-booking/internal/usecase"
)

type AvailabilityRequest struct {
	Type      string `form:"type" binding:"required,oneof=ROOM RESTAURANT"`
	PartySize int    `form:"party_size" binding:"required,min=1"`
	CheckIn   string `form:"check_in" binding:"omitempty,datetime=2006-01-02"`
	CheckOut  string `form:"check_out" binding:"omitempty,datetime=2006-01-02"`
	Date      string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Meal      string `form:"meal" binding:"omitempty,oneof=breakfast lunch dinner"`
}

func (r *AvailabilityRequest) ToQuery() (usecase.AvailabilityQuery, error) {
	typ, err := service.NewType(r.Type)
	if err != nil {
		return usecase.AvailabilityQuery{}, err
	}

	q := usecase.AvailabilityQuery{
		Type:      typ,
		PartySize: r.PartySize,
		Meal:      r.Meal,
	}
	if q.CheckIn, err = parseDate(r.CheckIn); err != nil {
		return usecase.AvailabilityQuery{}, err
	}
	if q.CheckOut, err = parseDate(r.CheckOut); err != nil {
		return usecase.AvailabilityQuery{}, err
	}
	if q.Date, err = parseDate(r.Date); err != nil {
		return usecase.AvailabilityQuery{}, err
	}
	return q, nil
}
