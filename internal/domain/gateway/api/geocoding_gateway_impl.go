package api

import (
	"context"
	"fmt"
	"time"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
)

const searchPath = "/v1/search"

type geocodingGatewayImpl struct {
	httpClient *http.Client
	caller     *resilientCaller
}

// NewGeocodingGateway creates a GeocodingGateway backed by the Open-Meteo geocoding API
func NewGeocodingGateway(baseUrl string, timeout time.Duration, clientOptions http.ClientOptions, breaker BreakerSettings) GeocodingGateway {
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		caller:     newResilientCaller("open-meteo-geocoding", timeout, breaker),
	}
}

// SearchCity returns the first result for name
func (g *geocodingGatewayImpl) SearchCity(ctx context.Context, name string) (*external.GeocodingResult, error) {
	var response *external.GeocodingResponse

	err := g.caller.call(ctx, func(ctx context.Context) error {
		successResp, errResp, _, err := g.httpClient.Request().
			WithContext(ctx).
			WithMethod(http.GET).
			WithPath(searchPath).
			WithQueryParams(map[string]string{
				"name":     name,
				"count":    "1",
				"language": "en",
				"format":   "json",
			}).
			WithSuccessResp(&external.GeocodingResponse{}).
			WithErrorResp(&external.APIErrorResponse{}).
			Execute()

		if err == nil {
			response = successResp.(*external.GeocodingResponse)
			return nil
		}

		return withReason(err, errResp)
	})
	if err != nil {
		return nil, err
	}

	if len(response.Results) == 0 {
		return nil, fmt.Errorf("%w: no location matches %q", model.ErrNotFound, name)
	}

	result := response.Results[0]
	return &result, nil
}
