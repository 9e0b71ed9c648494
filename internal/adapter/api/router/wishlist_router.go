package router

import (
	"vehiql/internal/adapter/api/handler"
	"vehiql/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupWishlistRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wishlistHandler := handler.GetWishlistHandler()

	savedCars := e.Group("/v1/saved-cars")
	savedCars.Use(authMiddleware.Authenticate)

	savedCars.GET("", wishlistHandler.GetSavedCars)
	savedCars.POST("/:carId/toggle", wishlistHandler.ToggleSavedCar)
}
