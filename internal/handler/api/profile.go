package api

import (
	"net/http"

	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
	statsUseCase   usecase.StatsUseCase
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase, statsUseCase usecase.StatsUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		statsUseCase:   statsUseCase,
	}
}

// @Summary User dashboard
// @Description The caller's bookings, subscriptions, and cancellation state
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}

	profile, err := h.profileUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to load profile", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfile(profile))
}

// @Summary Occupancy stats
// @Description Staff-only operational snapshot
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatsResponse
// @Failure 403 {object} map[string]string
// @Router /stats [get]
func (h *ProfileHandler) Stats(c *gin.Context) {
	stats, err := h.statsUseCase.Occupancy(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, statusFor(err), err, "Failed to load stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStats(stats))
}
