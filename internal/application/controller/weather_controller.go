package controller

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.ReadCurrentWeather)
	controller.api.POST("/weather/update", controller.SyncCurrentWeather)
	controller.api.GET("/weather/schedule", controller.ScheduleSyncAllCities)
}

// ReadCurrentWeather godoc
// @Summary Get current weather of a city
// @Description Returns the last synced reading of a stored city with live wind speed and a 13 point hourly temperature window around now
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} model.CurrentWeatherResponse "Current weather"
// @Failure 400 {object} model.ErrorResponse "Missing city"
// @Failure 404 {object} model.ErrorResponse "City not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /weather [get]
func (controller *WeatherController) ReadCurrentWeather(c echo.Context) error {
	response, err := controller.useCase.ReadCurrentWeather(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// SyncCurrentWeather godoc
// @Summary Sync current weather of a city
// @Description Fetches current conditions at the coordinates and stores them on the city
// @Tags weather
// @Accept json
// @Produce json
// @Param request body model.SyncWeatherDTO true "City and coordinates"
// @Success 200 {object} model.SyncWeatherResponse "Stored reading"
// @Failure 400 {object} model.ErrorResponse "Invalid request body or coordinates"
// @Failure 404 {object} model.ErrorResponse "City not found"
// @Failure 502 {object} model.ErrorResponse "Weather provider unavailable or invalid"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /weather/update [post]
func (controller *WeatherController) SyncCurrentWeather(c echo.Context) error {
	var dto model.SyncWeatherDTO
	if err := c.Bind(&dto); err != nil {
		return respondError(c, fmt.Errorf("%w: invalid request body", model.ErrInvalidInput))
	}

	response, err := controller.useCase.SyncCurrentWeather(c.Request().Context(), dto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// ScheduleSyncAllCities godoc
// @Summary Schedule weather sync for all cities
// @Description Enqueues a weather sync for every stored city with coordinates
// @Tags weather
// @Produce json
// @Success 202 {object} map[string]string "Sync scheduled"
// @Router /weather/schedule [get]
func (controller *WeatherController) ScheduleSyncAllCities(c echo.Context) error {
	requestID := uuid.NewString()

	// detached from the request, which ends before the enqueue does
	go func() {
		if _, err := controller.useCase.EnqueueAllCities(context.Background(), requestID); err != nil {
			log.Errorf("failed to enqueue cities [%s]: %v", requestID, err)
		}
	}()

	return c.JSON(http.StatusAccepted, map[string]string{
		"message":   "Weather sync scheduled for all cities",
		"requestId": requestID,
	})
}
