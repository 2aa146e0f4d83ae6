// Package conditions turns raw readings into the labels the dashboard displays.
package conditions

import (
	"fmt"
	"time"
)

// Condition groups WMO weather codes into the backgrounds the dashboard knows how to draw.
type Condition string

const (
	Sunny        Condition = "sunny"
	PartlyCloudy Condition = "partly-cloudy"
	Cloudy       Condition = "cloudy"
	Foggy        Condition = "foggy"
	Rainy        Condition = "rainy"
	Snowy        Condition = "snowy"
	Stormy       Condition = "stormy"
)

// Classify maps a WMO weather code to a Condition. Unknown codes are PartlyCloudy.
func Classify(code int) Condition {
	switch {
	case code == 0 || code == 1:
		return Sunny
	case code == 2:
		return PartlyCloudy
	case code == 3:
		return Cloudy
	case code == 45 || code == 48:
		return Foggy
	case code >= 51 && code <= 67, code >= 80 && code <= 82:
		return Rainy
	case code >= 71 && code <= 77, code >= 85 && code <= 86:
		return Snowy
	case code >= 95 && code <= 99:
		return Stormy
	default:
		return PartlyCloudy
	}
}

// IsDaytime reports whether the wall clock at loc is between 06:00 and 20:00.
func IsDaytime(now time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	hour := now.In(loc).Hour()
	return hour >= 6 && hour < 20
}

// TimeAgo renders the age of a reading in whole seconds, minutes or hours.
// Readings from the future count as 0 seconds old.
func TimeAgo(then, now time.Time) string {
	elapsed := now.Sub(then)
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed < time.Minute:
		return plural(int(elapsed/time.Second), "second")
	case elapsed < time.Hour:
		return plural(int(elapsed/time.Minute), "minute")
	default:
		return plural(int(elapsed/time.Hour), "hour")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
