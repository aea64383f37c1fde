package handlers

import (
	"strconv"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/config"
	"tripplanner-api/internal/constants"
	"tripplanner-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Services struct {
	Members     *service.MemberService
	Trips       *service.TripService
	TripDays    *service.TripDayService
	TripPlaces  *service.TripPlaceService
	TripShares  *service.TripShareService
	PlaceSearch *service.PlaceSearchService
	Export      *service.ExportService
}

type Handler struct {
	svc    Services
	cookie config.CookieConfig
	logger *zap.Logger
	checks map[string]HealthCheck
}

func NewHandler(svc Services, cookie config.CookieConfig, logger *zap.Logger) *Handler {
	return &Handler{
		svc:    svc,
		cookie: cookie,
		logger: logger,
	}
}

// callerID is the member resolved by the auth middleware.
func callerID(c *gin.Context) int64 {
	return c.GetInt64(constants.ContextMemberID)
}

func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Newf(apperr.InvalidTypeValue, "%s must be a positive integer", name)
	}
	return id, nil
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Newf(apperr.InvalidTypeValue, "%s must be an integer", name)
	}
	return n, nil
}

func floatQuery(c *gin.Context, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, apperr.Newf(apperr.MissingRequestParameter, "%s is required", name)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperr.Newf(apperr.InvalidTypeValue, "%s must be a number", name)
	}
	return f, nil
}

// fail hands err to the error middleware.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
