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

type EventHandler struct {
	eventUseCase usecase.EventUseCase
}

func NewEventHandler(eventUseCase usecase.EventUseCase) *EventHandler {
	return &EventHandler{eventUseCase: eventUseCase}
}

// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} resdto.EventResponse
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to list events", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventList(events))
}

// @Summary Book event seats
// @Description Claim seats; repeat bookings add to the existing subscription
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body reqdto.BookEventRequest true "Seat request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events/{id}/subscription [post]
func (h *EventHandler) Book(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event id", nil)
		return
	}

	var req reqdto.BookEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.eventUseCase.Book(c.Request.Context(), userID, eventID, req.Participants); err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Event booking failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel event subscription
// @Description Release all of the caller's seats for the event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id}/subscription [delete]
func (h *EventHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event id", nil)
		return
	}

	if err := h.eventUseCase.Cancel(c.Request.Context(), userID, eventID); err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Cancellation failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
