package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/domain/model"
)

// statusOf maps domain errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUpstreamUnavailable), errors.Is(err, model.ErrUpstreamDataInvalid):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": ...} with the status matching err. The error is also attached to the
// context so the request logger reports it.
func respondError(c echo.Context, err error) error {
	c.Set(middleware.HandlerErrorKey, err)
	return c.JSON(statusOf(err), model.ErrorResponse{Error: err.Error()})
}
