package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func dayAndPlace(c *gin.Context) (int64, int64, error) {
	dayID, err := idParam(c, "tripDayId")
	if err != nil {
		return 0, 0, err
	}
	placeID, err := idParam(c, "placeId")
	if err != nil {
		return 0, 0, err
	}
	return dayID, placeID, nil
}

// CreateTripPlace godoc
// @Summary Add a place to a trip day
// @Tags trip-places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripDayId path int true "Trip day ID"
// @Param place body api.TripPlaceRequestDoc true "Place details"
// @Success 201 {object} models.TripPlace
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /api/trip-days/{tripDayId}/places [post]
func (h *Handler) CreateTripPlace(c *gin.Context) {
	dayID, err := idParam(c, "tripDayId")
	if err != nil {
		fail(c, err)
		return
	}
	var req TripPlaceRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	place, err := h.svc.TripPlaces.CreateTripPlace(c.Request.Context(), callerID(c), dayID, req.input())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, place)
}

// ListTripPlaces godoc
// @Summary List a day's places in visit order
// @Tags trip-places
// @Produce json
// @Security BearerAuth
// @Param tripDayId path int true "Trip day ID"
// @Success 200 {array} models.TripPlace
// @Router /api/trip-days/{tripDayId}/places [get]
func (h *Handler) ListTripPlaces(c *gin.Context) {
	dayID, err := idParam(c, "tripDayId")
	if err != nil {
		fail(c, err)
		return
	}

	places, err := h.svc.TripPlaces.GetTripPlaces(c.Request.Context(), callerID(c), dayID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// UpdateTripPlace godoc
// @Summary Overwrite a place
// @Tags trip-places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripDayId path int true "Trip day ID"
// @Param placeId path int true "Trip place ID"
// @Param place body api.TripPlaceRequestDoc true "Place details"
// @Success 200 {object} models.TripPlace
// @Failure 409 {object} middleware.ErrorResponse
// @Router /api/trip-days/{tripDayId}/places/{placeId} [put]
func (h *Handler) UpdateTripPlace(c *gin.Context) {
	dayID, placeID, err := dayAndPlace(c)
	if err != nil {
		fail(c, err)
		return
	}
	var req TripPlaceRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	place, err := h.svc.TripPlaces.UpdateTripPlace(c.Request.Context(), callerID(c), dayID, placeID, req.input())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

// UpdateVisitOrder godoc
// @Summary Move a place to a new visit order
// @Description Siblings between the old and new position shift by one
// @Tags trip-places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripDayId path int true "Trip day ID"
// @Param placeId path int true "Trip place ID"
// @Param order body object{visit_order=int} true "New visit order"
// @Success 200 {object} models.TripPlace
// @Failure 400 {object} middleware.ErrorResponse
// @Router /api/trip-days/{tripDayId}/places/{placeId}/order [patch]
func (h *Handler) UpdateVisitOrder(c *gin.Context) {
	dayID, placeID, err := dayAndPlace(c)
	if err != nil {
		fail(c, err)
		return
	}
	var req VisitOrderRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	place, err := h.svc.TripPlaces.UpdateVisitOrder(c.Request.Context(), callerID(c), dayID, placeID, req.VisitOrder)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

// DeleteTripPlace godoc
// @Summary Remove a place
// @Tags trip-places
// @Security BearerAuth
// @Param tripDayId path int true "Trip day ID"
// @Param placeId path int true "Trip place ID"
// @Success 204
// @Router /api/trip-days/{tripDayId}/places/{placeId} [delete]
func (h *Handler) DeleteTripPlace(c *gin.Context) {
	dayID, placeID, err := dayAndPlace(c)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.svc.TripPlaces.DeleteTripPlace(c.Request.Context(), callerID(c), dayID, placeID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
