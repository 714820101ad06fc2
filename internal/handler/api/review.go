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

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{reviewUseCase: reviewUseCase}
}

// @Summary Review a service
// @Description Rate a service after a finished stay
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body reqdto.CreateServiceReviewRequest true "Review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /services/{id}/reviews [post]
func (h *ReviewHandler) CreateServiceReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service id", nil)
		return
	}

	var req reqdto.CreateServiceReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rev, err := h.reviewUseCase.CreateServiceReview(c.Request.Context(), userID, serviceID, req.Rating, req.Comment)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Create review failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReview(rev))
}

// @Summary Review an event
// @Description Rate an event the caller subscribed to, once it has taken place
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body reqdto.CreateEventReviewRequest true "Review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /events/{id}/reviews [post]
func (h *ReviewHandler) CreateEventReview(c *gin.Context) {
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

	var req reqdto.CreateEventReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rev, err := h.reviewUseCase.CreateEventReview(c.Request.Context(), userID, eventID, req.Rating, req.Comment)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Create review failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReview(rev))
}

// @Summary Search reviews
// @Description List reviews across services and events with filters
// @Tags reviews
// @Produce json
// @Param target query string false "Target" Enums(all, service, event)
// @Param service_type query string false "Service type" Enums(ROOM, RESTAURANT)
// @Param rating_min query int false "Minimum rating"
// @Param rating_max query int false "Maximum rating"
// @Param username query string false "Author username contains"
// @Param q query string false "Comment or event title contains"
// @Param order query string false "Ordering" Enums(newest, oldest, rating_desc, rating_asc)
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.ReviewSearchResponse
// @Failure 400 {object} map[string]string
// @Router /reviews [get]
func (h *ReviewHandler) Search(c *gin.Context) {
	var req reqdto.ReviewSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	items, total, err := h.reviewUseCase.Search(c.Request.Context(), req.ToFilter())
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to search reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewSearch(items, total))
}

// @Summary List service reviews
// @Tags reviews
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} resdto.ReviewListResponse
// @Router /services/{id}/reviews [get]
func (h *ReviewHandler) ListServiceReviews(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service id", nil)
		return
	}

	reviews, avg, err := h.reviewUseCase.ListByService(c.Request.Context(), serviceID)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(reviews, avg))
}

// @Summary List event reviews
// @Tags reviews
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} resdto.ReviewListResponse
// @Router /events/{id}/reviews [get]
func (h *ReviewHandler) ListEventReviews(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event id", nil)
		return
	}

	reviews, err := h.reviewUseCase.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(reviews, 0))
}
