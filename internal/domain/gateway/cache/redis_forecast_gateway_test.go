package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/redis"
)

func TestRedisForecastGateway(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(mr.Host()).WithPort(port).WithKeyPrefix("weather"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	gateway := NewRedisForecastGateway(client, 5*time.Minute)

	cached, err := gateway.Get(ctx, 43.7, -79.4)
	require.NoError(t, err)
	assert.Nil(t, cached)

	temp, wind, code := 21.5, 11.2, 3
	forecast := &external.ForecastResponse{
		Timezone:         "America/Toronto",
		UTCOffsetSeconds: -14400,
		CurrentWeather:   &external.CurrentWeather{Temperature: &temp, WindSpeed: &wind, WeatherCode: &code},
		Hourly:           &external.HourlySeries{Time: []string{"2024-06-01T00:00"}, Temperature2m: []*float64{&temp}},
	}
	require.NoError(t, gateway.Set(ctx, 43.7, -79.4, forecast))

	assert.True(t, mr.Exists("weather::forecast::43.7000,-79.4000"))
	assert.Equal(t, 5*time.Minute, mr.TTL("weather::forecast::43.7000,-79.4000"))

	cached, err = gateway.Get(ctx, 43.70000001, -79.4)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "America/Toronto", cached.Timezone)
	assert.Equal(t, 11.2, *cached.CurrentWeather.WindSpeed)
	assert.Equal(t, []string{"2024-06-01T00:00"}, cached.Hourly.Time)

	mr.FastForward(6 * time.Minute)
	cached, err = gateway.Get(ctx, 43.7, -79.4)
	require.NoError(t, err)
	assert.Nil(t, cached)
}
