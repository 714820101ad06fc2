package response

import (
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/usecase"
)

type DetailResponse struct {
	ServiceID       int64 `json:"service_id"`
	StartAt         int64 `json:"start_at"`
	EndAt           int64 `json:"end_at"`
	Nights          int   `json:"nights"`
	PartySize       int   `json:"party_size"`
	UnitPriceCents  int64 `json:"unit_price_cents"`
	TotalPriceCents int64 `json:"total_price_cents"`
	CanCancel       *bool `json:"can_cancel,omitempty"`
	CanReview       *bool `json:"can_review,omitempty"`
}

type ReservationResponse struct {
	ID              int64             `json:"id"`
	CreatedAt       int64             `json:"created_at"`
	TotalPriceCents int64             `json:"total_price_cents"`
	Details         []*DetailResponse `json:"details"`
}

func FromReservation(r *booking.Reservation) *ReservationResponse {
	details := make([]*DetailResponse, len(r.Details()))
	var total int64
	for i, d := range r.Details() {
		nights := d.Slot.Nights()
		price := d.UnitPriceCents * int64(nights)
		details[i] = &DetailResponse{
			ServiceID:       d.ServiceID,
			StartAt:         d.Slot.Start().Unix(),
			EndAt:           d.Slot.End().Unix(),
			Nights:          nights,
			PartySize:       d.PartySize,
			UnitPriceCents:  d.UnitPriceCents,
			TotalPriceCents: price,
		}
		total += price
	}
	return &ReservationResponse{
		ID:              r.ID(),
		CreatedAt:       r.CreatedAt().Unix(),
		TotalPriceCents: total,
		Details:         details,
	}
}

func FromReservations(rs []*booking.Reservation) []*ReservationResponse {
	res := make([]*ReservationResponse, len(rs))
	for i, r := range rs {
		res[i] = FromReservation(r)
	}
	return res
}

// FromReservationView includes each detail's cancellation and review state.
func FromReservationView(v usecase.ReservationView) *ReservationResponse {
	resp := FromReservation(v.Reservation)
	for _, d := range resp.Details {
		cancel := v.CanCancel[d.ServiceID]
		review := v.CanReview[d.ServiceID]
		d.CanCancel = &cancel
		d.CanReview = &review
	}
	return resp
}
