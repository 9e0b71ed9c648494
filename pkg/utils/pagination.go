package utils

import (
	"strconv"

	apperrors "vehiql/pkg/errors"

	"github.com/labstack/echo/v4"
)

// PaginationParams represents pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
}

const defaultPageSize = 6 // matches the listing grid

// GetPaginationParams extracts pagination parameters from the request.
// Absent parameters get defaults; explicitly invalid values are an error —
// range validation (page >= 1, pageSize >= 1) belongs to the usecase.
func GetPaginationParams(c echo.Context) (PaginationParams, error) {
	params := PaginationParams{Page: 1, PageSize: defaultPageSize}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return params, apperrors.BadRequest("page must be an integer", err)
		}
		params.Page = page
	}

	if raw := c.QueryParam("limit"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return params, apperrors.BadRequest("limit must be an integer", err)
		}
		params.PageSize = pageSize
	}

	return params, nil
}
