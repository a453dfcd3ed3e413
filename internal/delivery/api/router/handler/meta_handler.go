package handler

import (
	"ewarrants/internal/delivery/api/response"
	"ewarrants/internal/domain/constants"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// Categories lists the suggested warranty categories.
func Categories(c echo.Context) error {
	return response.OK(c, constants.Categories)
}
