package handler

import (
	"vehiql/internal/adapter/api/middleware"
	"vehiql/internal/usecase"
	"vehiql/pkg/errors"
	"vehiql/pkg/response"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{wishlistUseCase: wishlistUseCase}
}

func (h *WishlistHandler) ToggleSavedCar(c echo.Context) error {
	carID := c.Param("carId")
	if carID == "" {
		return response.Error(c, errors.BadRequest("Car ID is required", nil))
	}

	result, err := h.wishlistUseCase.Toggle(c.Request().Context(), middleware.UserID(c), carID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *WishlistHandler) GetSavedCars(c echo.Context) error {
	cars, err := h.wishlistUseCase.GetSavedCars(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cars)
}
