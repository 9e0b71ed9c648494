package handler

import (
	"strconv"

	"vehiql/internal/adapter/api/middleware"
	"vehiql/internal/usecase"
	"vehiql/pkg/errors"
	"vehiql/pkg/response"
	"vehiql/pkg/utils"

	"github.com/labstack/echo/v4"
)

type CarHandler struct {
	carUseCase *usecase.CarUseCase
}

func NewCarHandler(carUseCase *usecase.CarUseCase) *CarHandler {
	return &CarHandler{carUseCase: carUseCase}
}

func (h *CarHandler) SearchCars(c echo.Context) error {
	input := usecase.SearchCarsInput{
		Search:       c.QueryParam("search"),
		Make:         c.QueryParam("make"),
		BodyType:     c.QueryParam("bodyType"),
		FuelType:     c.QueryParam("fuelType"),
		Transmission: c.QueryParam("transmission"),
		SortBy:       c.QueryParam("sortBy"),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("minPrice must be a number", err))
		}
		input.MinPrice = minPrice
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("maxPrice must be a number", err))
		}
		input.MaxPrice = maxPrice
	}

	pagination, err := utils.GetPaginationParams(c)
	if err != nil {
		return response.Error(c, err)
	}
	input.Page = pagination.Page
	input.PageSize = pagination.PageSize

	items, total, _, err := h.carUseCase.SearchCars(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *CarHandler) GetCar(c echo.Context) error {
	carID := c.Param("id")
	if carID == "" {
		return response.Error(c, errors.BadRequest("Car ID is required", nil))
	}

	detail, err := h.carUseCase.GetCarByID(c.Request().Context(), carID, middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}

func (h *CarHandler) GetFeaturedCars(c echo.Context) error {
	limit := 3
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.Error(c, errors.BadRequest("limit must be an integer", err))
		}
		limit = parsed
	}

	cars, err := h.carUseCase.GetFeaturedCars(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cars)
}

func (h *CarHandler) GetSearchFacets(c echo.Context) error {
	facets, err := h.carUseCase.GetSearchFacets(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, facets)
}
