package handlers

import (
	"net/http"

	"tripplanner-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateTripDay godoc
// @Summary Add a day to a trip
// @Tags trip-days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path int true "Trip ID"
// @Param day body object{day=int,date=string} true "Day number and date"
// @Success 201 {object} models.TripDay
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/trips/{tripId}/days [post]
func (h *Handler) CreateTripDay(c *gin.Context) {
	tripID, err := idParam(c, "tripId")
	if err != nil {
		fail(c, err)
		return
	}
	var req TripDayRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	day, err := h.svc.TripDays.CreateTripDay(c.Request.Context(), callerID(c), tripID, service.TripDayInput{
		Day:  req.Day,
		Date: *req.Date,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, day)
}

// ListTripDays godoc
// @Summary List a trip's days
// @Tags trip-days
// @Produce json
// @Security BearerAuth
// @Param tripId path int true "Trip ID"
// @Success 200 {array} models.TripDay
// @Router /api/trips/{tripId}/days [get]
func (h *Handler) ListTripDays(c *gin.Context) {
	tripID, err := idParam(c, "tripId")
	if err != nil {
		fail(c, err)
		return
	}

	days, err := h.svc.TripDays.GetTripDays(c.Request.Context(), callerID(c), tripID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// DeleteTripDay godoc
// @Summary Delete a day and its places
// @Tags trip-days
// @Security BearerAuth
// @Param tripId path int true "Trip ID"
// @Param dayId path int true "Trip day ID"
// @Success 204
// @Router /api/trips/{tripId}/days/{dayId} [delete]
func (h *Handler) DeleteTripDay(c *gin.Context) {
	tripID, err := idParam(c, "tripId")
	if err != nil {
		fail(c, err)
		return
	}
	dayID, err := idParam(c, "dayId")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.svc.TripDays.DeleteTripDay(c.Request.Context(), callerID(c), tripID, dayID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
