package router

import (
	"vehiql/internal/adapter/api/handler"
	"vehiql/internal/adapter/api/middleware"
	"vehiql/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

func SetupCarRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, imageSearchLimiter *ratelimit.Limiter) {
	carHandler := handler.GetCarHandler()
	imageSearchHandler := handler.GetImageSearchHandler()

	cars := e.Group("/v1/cars")
	cars.GET("", carHandler.SearchCars)
	cars.GET("/featured", carHandler.GetFeaturedCars)
	cars.GET("/facets", carHandler.GetSearchFacets)

	// Detail personalizes wishlist/booking state when a token is present
	// but stays open to anonymous callers.
	cars.GET("/:id", carHandler.GetCar, authMiddleware.OptionalAuthenticate)

	// The rate gate is the only defense against inference-cost abuse;
	// every extraction passes through it.
	cars.POST("/search-image", imageSearchHandler.Extract, middleware.RateGate(imageSearchLimiter, 1))
}
