package handlers

import (
	"net/http"

	"tripplanner-api/internal/constants"

	"github.com/gin-gonic/gin"
)

// CreateTripShare godoc
// @Summary Create the sharing link of a trip
// @Tags trip-shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path int true "Trip ID"
// @Param share body object{is_public=bool,expiry_date=string} true "Share settings"
// @Success 201 {object} service.TripShareView
// @Failure 409 {object} middleware.ErrorResponse
// @Router /api/trip-shares/trips/{tripId} [post]
func (h *Handler) CreateTripShare(c *gin.Context) {
	tripID, err := idParam(c, "tripId")
	if err != nil {
		fail(c, err)
		return
	}
	var req TripShareRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	view, err := h.svc.TripShares.CreateSharingLink(c.Request.Context(), callerID(c), tripID, req.input())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// UpdateTripShare godoc
// @Summary Change visibility or expiry of a share
// @Tags trip-shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path int true "Trip ID"
// @Param share body object{is_public=bool,expiry_date=string} true "Share settings"
// @Success 200 {object} service.TripShareView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/trip-shares/trips/{tripId} [put]
func (h *Handler) UpdateTripShare(c *gin.Context) {
	tripID, err := idParam(c, "tripId")
	if err != nil {
		fail(c, err)
		return
	}
	var req TripShareRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	view, err := h.svc.TripShares.UpdateTripShare(c.Request.Context(), callerID(c), tripID, req.input())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DeleteTripShare godoc
// @Summary Revoke a sharing link
// @Tags trip-shares
// @Security BearerAuth
// @Param tripId path int true "Trip ID"
// @Success 204
// @Router /api/trip-shares/trips/{tripId} [delete]
func (h *Handler) DeleteTripShare(c *gin.Context) {
	tripID, err := idParam(c, "tripId")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.svc.TripShares.DeleteTripShare(c.Request.Context(), callerID(c), tripID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MyTripShares godoc
// @Summary List the caller's shares
// @Tags trip-shares
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.TripShareView
// @Router /api/trip-shares/my-shares [get]
func (h *Handler) MyTripShares(c *gin.Context) {
	views, err := h.svc.TripShares.GetMySharedTrips(c.Request.Context(), callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// SharedTrip godoc
// @Summary Open a shared trip by token
// @Description Counts a view; private or expired shares are denied
// @Tags trip-shares
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} service.TripShareView
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Router /api/trip-shares/shared/{token} [get]
func (h *Handler) SharedTrip(c *gin.Context) {
	view, err := h.svc.TripShares.GetSharedTrip(c.Request.Context(), c.Param("token"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PublicTripShares godoc
// @Summary Browse public shares
// @Tags trip-shares
// @Produce json
// @Param page query int false "Zero-based page" default(0)
// @Param size query int false "Page size" default(20)
// @Param sortBy query string false "latest or popular" default(latest)
// @Success 200 {object} models.Page[service.TripShareView]
// @Router /api/trip-shares/public [get]
func (h *Handler) PublicTripShares(c *gin.Context) {
	page, err := intQuery(c, "page", 0)
	if err != nil {
		fail(c, err)
		return
	}
	size, err := intQuery(c, "size", constants.DefaultPageSize)
	if err != nil {
		fail(c, err)
		return
	}

	result, err := h.svc.TripShares.GetPublicSharedTrips(c.Request.Context(), page, size, c.DefaultQuery("sortBy", constants.SortLatest))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
