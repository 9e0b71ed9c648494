package router

import (
	"vehiql/internal/adapter/api/handler"
	"vehiql/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupBookingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	bookingHandler := handler.GetBookingHandler()

	bookings := e.Group("/v1/bookings")
	bookings.Use(authMiddleware.Authenticate)

	bookings.GET("", bookingHandler.GetUserBookings)
	bookings.POST("", bookingHandler.BookTestDrive)
	bookings.POST("/:id/cancel", bookingHandler.CancelBooking)
}
