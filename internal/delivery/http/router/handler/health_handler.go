package handler

import (
	"net/http"

	"accounts/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
