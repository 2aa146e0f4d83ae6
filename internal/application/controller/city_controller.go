package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/city"
	"weather-dashboard/pkg/util/numberutils"
)

type CityController struct {
	api     *echo.Group
	useCase city.UseCase
}

func NewCityController(api *echo.Group, useCase city.UseCase) *CityController {
	return &CityController{api: api, useCase: useCase}
}

// InitCityRoutes initializes city routes
func (controller *CityController) InitCityRoutes() {
	controller.api.POST("/geocode", controller.RegisterCity)
	controller.api.GET("/cities", controller.FindAllCities)
}

// RegisterCity godoc
// @Summary Register a city
// @Description Geocodes a city name and stores it, or refreshes the coordinates of a stored city
// @Tags city
// @Accept json
// @Produce json
// @Param request body model.RegisterCityDTO true "City name"
// @Success 201 {object} model.RegisterCityResponse "City added"
// @Success 200 {object} model.RegisterCityResponse "City coordinates updated"
// @Failure 400 {object} model.ErrorResponse "Missing city"
// @Failure 404 {object} model.ErrorResponse "No location matches the name"
// @Failure 502 {object} model.ErrorResponse "Geocoding provider unavailable"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /geocode [post]
func (controller *CityController) RegisterCity(c echo.Context) error {
	var dto model.RegisterCityDTO
	if err := c.Bind(&dto); err != nil {
		return respondError(c, fmt.Errorf("%w: invalid request body", model.ErrInvalidInput))
	}

	response, err := controller.useCase.RegisterCity(c.Request().Context(), dto.City)
	if err != nil {
		return respondError(c, err)
	}

	status := http.StatusOK
	if response.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, response)
}

// FindAllCities godoc
// @Summary Get all cities
// @Description Retrieve stored cities with pagination
// @Tags city
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} model.Page[entity.City] "Paginated list of cities"
// @Failure 400 {object} model.ErrorResponse "Invalid page"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /cities [get]
func (controller *CityController) FindAllCities(c echo.Context) error {
	page := numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	size := numberutils.ToIntWithDefault(c.QueryParam("size"), 10)

	cities, err := controller.useCase.FindAllCities(c.Request().Context(), page, size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, cities)
}
