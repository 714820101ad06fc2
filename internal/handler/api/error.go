package api

import (
	"errors"
	"net/http"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/event"
	"resort-booking/internal/domain/order"
	"resort-booking/internal/domain/review"
	"resort-booking/internal/usecase"
)

var errUnauthorized = errors.New("missing authenticated user in context")

// statusFor maps domain and usecase errors onto HTTP statuses. Anything
// unrecognized is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrSlotConflict),
		errors.Is(err, event.ErrFullyBooked),
		errors.Is(err, event.ErrNotEnoughSeats),
		errors.Is(err, usecase.ErrDuplicateUser):
		return http.StatusConflict

	case errors.Is(err, usecase.ErrReservationNotFound),
		errors.Is(err, usecase.ErrEventNotFound),
		errors.Is(err, usecase.ErrProductNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, booking.ErrServiceNotBooked):
		return http.StatusNotFound

	case errors.Is(err, booking.ErrNotOwner),
		errors.Is(err, review.ErrNotEligible):
		return http.StatusForbidden

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrTokenValidation):
		return http.StatusUnauthorized

	case errors.Is(err, booking.ErrInvalidPartySize),
		errors.Is(err, booking.ErrCapacityExceeded),
		errors.Is(err, booking.ErrServiceUnbookable),
		errors.Is(err, booking.ErrCancelTooLate),
		errors.Is(err, booking.ErrInvalidDateRange),
		errors.Is(err, booking.ErrInvalidMealSlot),
		errors.Is(err, booking.ErrPastDate),
		errors.Is(err, event.ErrInvalidParticipants),
		errors.Is(err, event.ErrEventInPast),
		errors.Is(err, event.ErrNoSubscription),
		errors.Is(err, review.ErrInvalidRating),
		errors.Is(err, review.ErrInvalidTarget),
		errors.Is(err, review.ErrCommentTooLong),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrUnknownProduct),
		errors.Is(err, usecase.ErrEmptyBooking),
		errors.Is(err, usecase.ErrInvalidAvailabilityQuery):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
