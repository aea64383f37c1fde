// internal/api/routes.go
package api

import (
	"tripplanner-api/internal/api/handlers"
	"tripplanner-api/internal/api/middleware"
	"tripplanner-api/internal/auth"
	"tripplanner-api/internal/config"
	"tripplanner-api/internal/ratelimit"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Handler     *handlers.Handler
	Sessions    *auth.Sessions
	RateLimiter *ratelimit.RateLimiter
	RateLimits  config.RateLimitConfig
	Metrics     *middleware.Metrics
	Logger      *zap.Logger
}

func SetupRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	h := deps.Handler

	router.Use(
		middleware.Recovery(deps.Logger),
		middleware.RequestLogger(deps.Logger),
		deps.Metrics.Middleware(),
		middleware.ErrorHandler(deps.Logger),
	)

	router.GET("/health", h.Health)
	router.GET("/metrics", deps.Metrics.Handler())

	//Swagger Route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := AuthMiddleware(deps.Sessions)
	authLimit := middleware.AuthRateLimit(deps.RateLimiter, deps.RateLimits.AuthPerMinute)

	api := router.Group("/api")

	members := api.Group("/members")
	{
		members.POST("/signup", authLimit, h.SignUp)
		members.POST("/login", authLimit, h.Login)
		members.POST("/refresh", authLimit, h.Refresh)
		members.POST("/logout", h.Logout)
		members.POST("/logout-all", requireAuth, h.LogoutAll)
		members.GET("/me", requireAuth, h.Me)
	}

	trips := api.Group("/trips")
	trips.Use(requireAuth)
	{
		trips.POST("", h.CreateTrip)
		trips.GET("", h.ListTrips)
		trips.GET("/:tripId", h.GetTrip)
		trips.PUT("/:tripId", h.UpdateTrip)
		trips.DELETE("/:tripId", h.DeleteTrip)
		trips.GET("/:tripId/export", h.ExportTrip)

		trips.POST("/:tripId/days", h.CreateTripDay)
		trips.GET("/:tripId/days", h.ListTripDays)
		trips.DELETE("/:tripId/days/:dayId", h.DeleteTripDay)
	}

	places := api.Group("/trip-days/:tripDayId/places")
	places.Use(requireAuth)
	{
		places.POST("", h.CreateTripPlace)
		places.GET("", h.ListTripPlaces)
		places.PUT("/:placeId", h.UpdateTripPlace)
		places.PATCH("/:placeId/order", h.UpdateVisitOrder)
		places.DELETE("/:placeId", h.DeleteTripPlace)
	}

	shares := api.Group("/trip-shares")
	{
		// Anonymous
		shares.GET("/shared/:token", middleware.SharedTripRateLimit(deps.RateLimiter, deps.RateLimits.SharePerMinute), h.SharedTrip)
		shares.GET("/public", h.PublicTripShares)

		shares.POST("/trips/:tripId", requireAuth, h.CreateTripShare)
		shares.PUT("/trips/:tripId", requireAuth, h.UpdateTripShare)
		shares.DELETE("/trips/:tripId", requireAuth, h.DeleteTripShare)
		shares.GET("/my-shares", requireAuth, h.MyTripShares)
	}

	search := api.Group("/places")
	search.Use(requireAuth)
	{
		search.GET("/search", middleware.PlaceSearchRateLimit(deps.RateLimiter), h.SearchPlaces)
		search.POST("/save-to-trip", h.SaveToTrip)
	}

	return router
}
