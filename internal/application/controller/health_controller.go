package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckHealth())
}

// CheckHealth godoc
// @Summary Application health
// @Description Aggregated health of database, cache and queue workers
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse "Application is up"
// @Failure 503 {object} model.HealthResponse "A component is down"
// @Router /health [get]
func (controller *HealthController) CheckHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		healthResponse := controller.useCase.CheckHealth(c.Request().Context())

		status := http.StatusOK
		if healthResponse.Status == model.StatusDown {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, healthResponse)
	}
}
