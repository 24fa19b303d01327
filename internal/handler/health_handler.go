package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"datamarket/internal/errors"
	"datamarket/internal/service"
)

// HealthHandler serves liveness endpoints.
type HealthHandler struct {
	statusService service.StatusService
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(statusService service.StatusService) *HealthHandler {
	return &HealthHandler{statusService: statusService}
}

// Status godoc
// @Summary Service status with database time
// @Tags health
// @Produce json
// @Success 200 {object} service.Status
// @Failure 500 {object} errors.ErrorResponse
// @Router / [get]
func (h *HealthHandler) Status(c echo.Context) error {
	status, err := h.statusService.Status(c.Request().Context())
	if err != nil {
		logrus.WithError(err).Error("health check failed")
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "Database connection failed",
		})
	}
	return c.JSON(http.StatusOK, status)
}

// Live reports liveness without touching any dependency.
func (h *HealthHandler) Live(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
