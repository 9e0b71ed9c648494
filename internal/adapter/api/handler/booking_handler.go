package handler

import (
	"vehiql/internal/adapter/api/middleware"
	"vehiql/internal/usecase"
	"vehiql/pkg/errors"
	"vehiql/pkg/response"

	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

func (h *BookingHandler) BookTestDrive(c echo.Context) error {
	var input usecase.BookTestDriveInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	booking, err := h.bookingUseCase.BookTestDrive(c.Request().Context(), middleware.UserID(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, booking)
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID := c.Param("id")
	if bookingID == "" {
		return response.Error(c, errors.BadRequest("Booking ID is required", nil))
	}

	if err := h.bookingUseCase.CancelBooking(c.Request().Context(), middleware.UserID(c), bookingID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Booking cancelled successfully",
	})
}

func (h *BookingHandler) GetUserBookings(c echo.Context) error {
	bookings, err := h.bookingUseCase.GetUserBookings(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bookings)
}
