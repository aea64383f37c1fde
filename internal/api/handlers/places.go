package handlers

import (
	"net/http"

	"tripplanner-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchPlaces godoc
// @Summary Keyword place search around a point
// @Tags places
// @Produce json
// @Security BearerAuth
// @Param keyword query string true "Search keyword"
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param page query int false "Page (1..45)" default(1)
// @Param size query int false "Page size (1..15)" default(15)
// @Success 200 {object} models.PlaceSearchResult
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 504 {object} middleware.ErrorResponse
// @Router /api/places/search [get]
func (h *Handler) SearchPlaces(c *gin.Context) {
	lat, err := floatQuery(c, "lat")
	if err != nil {
		fail(c, err)
		return
	}
	lng, err := floatQuery(c, "lng")
	if err != nil {
		fail(c, err)
		return
	}
	page, err := intQuery(c, "page", 1)
	if err != nil {
		fail(c, err)
		return
	}
	size, err := intQuery(c, "size", 15)
	if err != nil {
		fail(c, err)
		return
	}

	result, err := h.svc.PlaceSearch.Search(c.Request.Context(), c.Query("keyword"), lat, lng, page, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SaveToTrip godoc
// @Summary Save a search hit onto a trip day
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param place body api.TripPlaceRequestDoc true "Place with trip_day_id"
// @Success 201 {object} models.TripPlace
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /api/places/save-to-trip [post]
func (h *Handler) SaveToTrip(c *gin.Context) {
	var req SaveToTripRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	place, err := h.svc.PlaceSearch.SaveToTrip(c.Request.Context(), callerID(c), service.SaveToTripInput{
		TripDayID: req.TripDayID,
		Place:     req.TripPlaceRequest.input(),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, place)
}
