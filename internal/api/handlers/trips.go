package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CreateTrip godoc
// @Summary Create a trip
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trip body api.TripRequestDoc true "Trip details"
// @Success 201 {object} models.Trip
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /api/trips [post]
func (h *Handler) CreateTrip(c *gin.Context) {
	var req TripRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	trip, err := h.svc.Trips.CreateTrip(c.Request.Context(), callerID(c), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// ListTrips godoc
// @Summary List the caller's trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Trip
// @Router /api/trips [get]
func (h *Handler) ListTrips(c *gin.Context) {
	trips, err := h.svc.Trips.GetTrips(c.Request.Context(), callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GetTrip godoc
// @Summary Get one trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param tripId path int true "Trip ID"
// @Success 200 {object} models.Trip
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/trips/{tripId} [get]
func (h *Handler) GetTrip(c *gin.Context) {
	tripID, err := idParam(c, "tripId")
	if err != nil {
		fail(c, err)
		return
	}

	trip, err := h.svc.Trips.GetTrip(c.Request.Context(), callerID(c), tripID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// UpdateTrip godoc
// @Summary Overwrite a trip
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path int true "Trip ID"
// @Param trip body api.TripRequestDoc true "Trip details"
// @Success 200 {object} models.Trip
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/trips/{tripId} [put]
func (h *Handler) UpdateTrip(c *gin.Context) {
	tripID, err := idParam(c, "tripId")
	if err != nil {
		fail(c, err)
		return
	}
	var req TripRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	trip, err := h.svc.Trips.ModifyTrip(c.Request.Context(), callerID(c), tripID, req.input())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DeleteTrip godoc
// @Summary Delete a trip with its days, places and share
// @Tags trips
// @Security BearerAuth
// @Param tripId path int true "Trip ID"
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/trips/{tripId} [delete]
func (h *Handler) DeleteTrip(c *gin.Context) {
	tripID, err := idParam(c, "tripId")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.svc.Trips.DeleteTrip(c.Request.Context(), callerID(c), tripID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportTrip godoc
// @Summary Download the itinerary as xlsx
// @Tags trips
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param tripId path int true "Trip ID"
// @Success 200 {file} file
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/trips/{tripId}/export [get]
func (h *Handler) ExportTrip(c *gin.Context) {
	tripID, err := idParam(c, "tripId")
	if err != nil {
		fail(c, err)
		return
	}

	data, filename, err := h.svc.Export.ExportItinerary(c.Request.Context(), callerID(c), tripID)
	if err != nil {
		fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
