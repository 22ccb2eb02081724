package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// GetLimitParam reads the "limit" query parameter, clamped to [1, max].
func GetLimitParam(c echo.Context, defaultLimit, max int) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		return defaultLimit
	}
	if limit > max {
		return max
	}
	return limit
}

// GetOffsetParam reads the "offset" query parameter, never negative.
func GetOffsetParam(c echo.Context) int {
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		return 0
	}
	return offset
}
