package api

import (
	"net/http"
	"strconv"

	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Create booking
// @Description Book one or more services atomically
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	items, err := req.ToItems()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.bookingUseCase.Create(c.Request.Context(), userID, items)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Booking failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	reservations, err := h.bookingUseCase.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservations(reservations))
}

// @Summary Cancel booked service
// @Description Remove one service from a reservation, outside the cancellation window
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param serviceID path int true "Service ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/details/{serviceID} [delete]
func (h *BookingHandler) CancelDetail(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	reservationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}
	serviceID, err := strconv.ParseInt(c.Param("serviceID"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service id", nil)
		return
	}

	if err := h.bookingUseCase.CancelDetail(c.Request.Context(), userID, reservationID, serviceID); err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Cancellation failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
