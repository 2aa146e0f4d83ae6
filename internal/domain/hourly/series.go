package hourly

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"weather-dashboard/internal/domain/model/external"
)

// Location resolves the provider timezone so wall-clock times on both sides of a DST change get
// their own offset. Names the zone database does not know fall back to a fixed zone of utcOffsetSeconds.
func Location(timezone string, utcOffsetSeconds int) *time.Location {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err == nil {
			return loc
		}
	}
	return time.FixedZone(timezone, utcOffsetSeconds)
}

// ParseSeries converts provider timestamps, which are local wall-clock times without offset, into
// instants in the provider timezone.
func ParseSeries(series *external.HourlySeries, timezone string, utcOffsetSeconds int) ([]time.Time, []*float64, error) {
	if series == nil {
		return nil, nil, fmt.Errorf("hourly section is missing")
	}

	loc := Location(timezone, utcOffsetSeconds)
	times := make([]time.Time, 0, len(series.Time))
	for _, raw := range series.Time {
		t, err := time.ParseInLocation(external.HourlyTimeLayout, raw, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid hourly time %q: %w", raw, err)
		}
		times = append(times, t)
	}

	return times, series.Temperature2m, nil
}
