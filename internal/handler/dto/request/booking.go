package request

import (
	"time"

	"resort-booking/internal/usecase"
)

const dateLayout = "2006-01-02"

// BookingItemRequest is one service in a booking. Rooms take check_in and
// check_out; restaurants take date and meal.
type BookingItemRequest struct {
	ServiceID int64  `json:"service_id" binding:"required"`
	PartySize int    `json:"party_size" binding:"required,min=1"`
	CheckIn   string `json:"check_in" binding:"omitempty,datetime=2006-01-02"`
	CheckOut  string `json:"check_out" binding:"omitempty,datetime=2006-01-02"`
	Date      string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Meal      string `json:"meal" binding:"omitempty,oneof=breakfast lunch dinner"`
}

type CreateBookingRequest struct {
	Items []BookingItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r *CreateBookingRequest) ToItems() ([]usecase.BookingItem, error) {
	items := make([]usecase.BookingItem, 0, len(r.Items))
	for _, in := range r.Items {
		item := usecase.BookingItem{
			ServiceID: in.ServiceID,
			PartySize: in.PartySize,
			Meal:      in.Meal,
		}
		var err error
		if item.CheckIn, err = parseDate(in.CheckIn); err != nil {
			return nil, err
		}
		if item.CheckOut, err = parseDate(in.CheckOut); err != nil {
			return nil, err
		}
		if item.Date, err = parseDate(in.Date); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dateLayout, s, time.UTC)
}
