package api

import (
	"net/http"

	"resort-booking/internal/domain/service"
	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	availability usecase.AvailabilityUseCase
}

func NewServiceHandler(availability usecase.AvailabilityUseCase) *ServiceHandler {
	return &ServiceHandler{availability: availability}
}

// @Summary Search availability
// @Description List services free for the requested slot and party size
// @Tags services
// @Produce json
// @Param type query string true "Service type (ROOM or RESTAURANT)"
// @Param party_size query int true "Party size"
// @Param check_in query string false "Room check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Room check-out date (YYYY-MM-DD)"
// @Param date query string false "Meal date (YYYY-MM-DD)"
// @Param meal query string false "Meal slot (breakfast, lunch, dinner)"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Router /services/availability [get]
func (h *ServiceHandler) SearchAvailability(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	query, err := req.ToQuery()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	services, err := h.availability.Search(c.Request.Context(), query)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Availability search failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServices(services))
}

// @Summary List services by type
// @Tags services
// @Produce json
// @Param type query string true "Service type"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Router /services [get]
func (h *ServiceHandler) ListByType(c *gin.Context) {
	typ, err := service.NewType(c.Query("type"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service type", nil)
		return
	}

	services, err := h.availability.ListByType(c.Request.Context(), typ)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to list services", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServices(services))
}
