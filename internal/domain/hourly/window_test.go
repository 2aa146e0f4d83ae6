package hourly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/domain/model/external"
)

func float(v float64) *float64 {
	return &v
}

// series builds n hourly points starting at start, with temperatures 0, 1, 2...
func series(start time.Time, n int) ([]time.Time, []*float64) {
	times := make([]time.Time, n)
	temps := make([]*float64, n)
	for i := 0; i < n; i++ {
		times[i] = start.Add(time.Duration(i) * time.Hour)
		temps[i] = float(float64(i))
	}
	return times, temps
}

func TestSelectWindow(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("short series around now is returned whole", func(t *testing.T) {
		times, temps := series(day.Add(9*time.Hour), 12)

		points := SelectWindow(times, temps, day.Add(14*time.Hour+30*time.Minute))

		require.Len(t, points, 12)
		assert.Equal(t, times[0], points[0].Time)
		assert.Equal(t, times[11], points[11].Time)
	})

	t.Run("long series yields 13 contiguous points centred on the current hour", func(t *testing.T) {
		times, temps := series(day, 72)

		points := SelectWindow(times, temps, day.Add(30*time.Hour+45*time.Minute))

		require.Len(t, points, 13)
		assert.Equal(t, times[24], points[0].Time)
		assert.Equal(t, times[30], points[6].Time)
		assert.Equal(t, times[36], points[12].Time)
		for i := 1; i < len(points); i++ {
			assert.Equal(t, time.Hour, points[i].Time.Sub(points[i-1].Time))
		}
	})

	t.Run("now before the series anchors at the first point", func(t *testing.T) {
		times, temps := series(day.Add(9*time.Hour), 24)

		points := SelectWindow(times, temps, day.Add(2*time.Hour))

		require.Len(t, points, 7)
		assert.Equal(t, times[0], points[0].Time)
		assert.Equal(t, times[6], points[6].Time)
	})

	t.Run("now after the series anchors at the last point", func(t *testing.T) {
		times, temps := series(day, 24)

		points := SelectWindow(times, temps, day.Add(50*time.Hour))

		require.Len(t, points, 7)
		assert.Equal(t, times[17], points[0].Time)
		assert.Equal(t, times[23], points[6].Time)
	})

	t.Run("exact hour is its own anchor", func(t *testing.T) {
		times, temps := series(day, 48)

		points := SelectWindow(times, temps, day.Add(20*time.Hour))

		require.Len(t, points, 13)
		assert.Equal(t, times[20], points[6].Time)
		assert.Equal(t, float(20), points[6].Temp)
	})

	t.Run("anchor near the start clamps the back half", func(t *testing.T) {
		times, temps := series(day, 48)

		points := SelectWindow(times, temps, day.Add(2*time.Hour+10*time.Minute))

		require.Len(t, points, 9)
		assert.Equal(t, times[0], points[0].Time)
		assert.Equal(t, times[8], points[8].Time)
	})

	t.Run("empty series", func(t *testing.T) {
		points := SelectWindow(nil, nil, day)

		assert.NotNil(t, points)
		assert.Empty(t, points)
	})

	t.Run("missing temperatures are paired as nil", func(t *testing.T) {
		times, temps := series(day, 5)
		temps[1] = nil

		points := SelectWindow(times, temps[:3], day.Add(2*time.Hour))

		require.Len(t, points, 5)
		assert.Equal(t, float(0), points[0].Temp)
		assert.Nil(t, points[1].Temp)
		assert.Equal(t, float(2), points[2].Temp)
		assert.Nil(t, points[3].Temp)
		assert.Nil(t, points[4].Temp)
	})

	t.Run("now is truncated in the series zone", func(t *testing.T) {
		kolkata := time.FixedZone("Asia/Kolkata", 5*3600+1800)
		times, temps := series(time.Date(2024, 3, 10, 0, 0, 0, 0, kolkata), 48)

		// 09:10 UTC is 14:40 in Kolkata, the anchor is 14:00 local.
		points := SelectWindow(times, temps, time.Date(2024, 3, 10, 9, 10, 0, 0, time.UTC))

		require.Len(t, points, 13)
		assert.Equal(t, times[14], points[6].Time)
	})
}

func TestParseSeries(t *testing.T) {
	t.Run("parses local timestamps in the provider zone", func(t *testing.T) {
		hourlySeries := &external.HourlySeries{
			Time:          []string{"2024-03-10T09:00", "2024-03-10T10:00"},
			Temperature2m: []*float64{float(1.5), nil},
		}

		times, temps, err := ParseSeries(hourlySeries, "America/Toronto", -4*3600)

		require.NoError(t, err)
		require.Len(t, times, 2)
		assert.Equal(t, time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC), times[0].UTC())
		assert.Equal(t, "America/Toronto", times[0].Location().String())
		assert.Equal(t, float(1.5), temps[0])
		assert.Nil(t, temps[1])
	})

	t.Run("offset follows a DST change inside the series", func(t *testing.T) {
		hourlySeries := &external.HourlySeries{
			Time:          []string{"2024-11-02T12:00", "2024-11-03T12:00"},
			Temperature2m: []*float64{float(8), float(9)},
		}

		// The provider reports the offset of today, after the switch back to EST.
		times, _, err := ParseSeries(hourlySeries, "America/Toronto", -5*3600)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 11, 2, 16, 0, 0, 0, time.UTC), times[0].UTC())
		assert.Equal(t, time.Date(2024, 11, 3, 17, 0, 0, 0, time.UTC), times[1].UTC())
	})

	t.Run("unknown zone name falls back to the offset", func(t *testing.T) {
		times, _, err := ParseSeries(&external.HourlySeries{Time: []string{"2024-03-10T09:00"}}, "GMT+5:30", 19800)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 3, 30, 0, 0, time.UTC), times[0].UTC())
		assert.Equal(t, "GMT+5:30", times[0].Location().String())
	})

	t.Run("missing section", func(t *testing.T) {
		_, _, err := ParseSeries(nil, "UTC", 0)

		assert.Error(t, err)
	})

	t.Run("malformed timestamp", func(t *testing.T) {
		_, _, err := ParseSeries(&external.HourlySeries{Time: []string{"yesterday"}}, "UTC", 0)

		assert.ErrorContains(t, err, "invalid hourly time")
	})
}
