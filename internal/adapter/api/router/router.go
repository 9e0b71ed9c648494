package router

import (
	"vehiql/internal/adapter/api/middleware"
	"vehiql/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, imageSearchLimiter *ratelimit.Limiter) {
	SetupHealthRouter(e)
	SetupCarRouter(e, authMiddleware, imageSearchLimiter)
	SetupWishlistRouter(e, authMiddleware)
	SetupBookingRouter(e, authMiddleware)
}
