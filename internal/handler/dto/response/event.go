package response

import (
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/usecase"
)

type EventResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Seats       int    `json:"seats"`
	Remaining   int    `json:"remaining"`
}

func FromEventWithTaken(e repository.EventWithTaken) *EventResponse {
	return &EventResponse{
		ID:          e.Event.ID(),
		Title:       e.Event.Title(),
		Description: e.Event.Description(),
		Date:        e.Event.Date().Format("2006-01-02"),
		Seats:       e.Event.Seats(),
		Remaining:   e.Event.Remaining(e.Taken),
	}
}

func FromEventList(events []repository.EventWithTaken) []*EventResponse {
	res := make([]*EventResponse, len(events))
	for i, e := range events {
		res[i] = FromEventWithTaken(e)
	}
	return res
}

// SubscriptionResponse shows an event with the user's own seat count.
type SubscriptionResponse struct {
	EventID      int64  `json:"event_id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Participants int    `json:"participants"`
	CanReview    bool   `json:"can_review"`
}

func FromSubscriptions(subs []usecase.SubscriptionView) []*SubscriptionResponse {
	res := make([]*SubscriptionResponse, len(subs))
	for i, s := range subs {
		res[i] = &SubscriptionResponse{
			EventID:      s.Event.ID(),
			Title:        s.Event.Title(),
			Date:         s.Event.Date().Format("2006-01-02"),
			Participants: s.Taken,
			CanReview:    s.CanReview,
		}
	}
	return res
}
