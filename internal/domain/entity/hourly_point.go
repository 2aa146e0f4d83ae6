package entity

import "time"

// HourlyPoint is one sample of an hourly temperature series. Temp is nil when the provider had no value.
type HourlyPoint struct {
	Time time.Time `json:"time"`
	Temp *float64  `json:"temp"`
}
