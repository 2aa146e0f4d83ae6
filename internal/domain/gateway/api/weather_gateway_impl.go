package api

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
)

const forecastPath = "/v1/forecast"

// weatherGatewayImpl implements the WeatherGateway interface against Open-Meteo
type weatherGatewayImpl struct {
	httpClient *http.Client
	caller     *resilientCaller
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// timeout bounds each call including its retries.
func NewWeatherGateway(baseUrl string, timeout time.Duration, clientOptions http.ClientOptions, breaker BreakerSettings) WeatherGateway {
	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		caller:     newResilientCaller("open-meteo-forecast", timeout, breaker),
	}
}

// GetCurrentWeather fetches the current conditions for the coordinates.
// It is sent once: a sync reports provider faults instead of retrying them.
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	params := coordinateParams(latitude, longitude)
	params["current_weather"] = "true"

	response, err := w.fetch(ctx, params, &http.BackoffConfig{})
	if err != nil {
		return nil, err
	}

	current := response.CurrentWeather
	if current == nil || current.Temperature == nil || current.WeatherCode == nil {
		return nil, fmt.Errorf("%w: current_weather is missing temperature or weathercode", model.ErrUpstreamDataInvalid)
	}

	return response, nil
}

// GetForecast fetches current conditions with the hourly temperature from yesterday to tomorrow.
// Missing sections are left to the caller.
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	params := coordinateParams(latitude, longitude)
	params["current_weather"] = "true"
	params["hourly"] = "temperature_2m"
	params["past_days"] = "1"
	params["forecast_days"] = "2"
	params["timezone"] = "auto"

	return w.fetch(ctx, params, nil)
}

// fetch sends one forecast request; a nil backoff keeps the client default.
func (w *weatherGatewayImpl) fetch(ctx context.Context, params map[string]string, backoff *http.BackoffConfig) (*external.ForecastResponse, error) {
	var response *external.ForecastResponse

	err := w.caller.call(ctx, func(ctx context.Context) error {
		successResp, errResp, _, err := w.httpClient.Request().
			WithContext(ctx).
			WithMethod(http.GET).
			WithPath(forecastPath).
			WithQueryParams(params).
			WithSuccessResp(&external.ForecastResponse{}).
			WithErrorResp(&external.APIErrorResponse{}).
			WithBackoff(backoff).
			Execute()

		if err == nil {
			response = successResp.(*external.ForecastResponse)
			return nil
		}

		return withReason(err, errResp)
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

func coordinateParams(latitude float64, longitude float64) map[string]string {
	return map[string]string{
		"latitude":  strconv.FormatFloat(latitude, 'f', -1, 64),
		"longitude": strconv.FormatFloat(longitude, 'f', -1, 64),
	}
}

// withReason appends the provider's reason, when it sent one, keeping err in the chain.
func withReason(err error, errResp any) error {
	if errResp == nil {
		return err
	}
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Reason != "" {
		return fmt.Errorf("%w: %s", err, apiErr.Reason)
	}
	return err
}
