// Package hourly selects the slice of an hourly forecast series shown around the current hour.
package hourly

import (
	"time"

	"weather-dashboard/internal/domain/entity"
)

// Span is the number of points kept on each side of the anchor.
const Span = 6

// SelectWindow returns up to 2*Span+1 consecutive points centred on the current hour.
//
// now is truncated to the start of its hour in the location of the series. The anchor is the
// first point at or after that hour, or the last point when the whole series is in the past.
// The window is clamped to the series bounds, so a short series is returned whole. times and
// temps are paired by index; a missing temperature yields a nil Temp.
func SelectWindow(times []time.Time, temps []*float64, now time.Time) []entity.HourlyPoint {
	if len(times) == 0 {
		return []entity.HourlyPoint{}
	}

	current := startOfHour(now, times[0].Location())

	anchor := len(times) - 1
	for i, t := range times {
		if !t.Before(current) {
			anchor = i
			break
		}
	}

	from := max(anchor-Span, 0)
	to := min(anchor+Span, len(times)-1)

	points := make([]entity.HourlyPoint, 0, to-from+1)
	for i := from; i <= to; i++ {
		var temp *float64
		if i < len(temps) {
			temp = temps[i]
		}
		points = append(points, entity.HourlyPoint{Time: times[i], Temp: temp})
	}

	return points
}

// startOfHour uses the wall clock of loc, so zones with a non-whole-hour offset truncate correctly.
func startOfHour(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, loc)
}
