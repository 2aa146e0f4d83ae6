package entity

import "time"

// City is a known city together with the last synced current-conditions reading.
// Temperature, WeatherCode and LastUpdated are either all nil (never synced) or written together.
type City struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Country     string     `json:"country"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	Temperature *float64   `json:"temperature"`
	WeatherCode *int       `json:"weatherCode"`
	LastUpdated *time.Time `json:"lastUpdated"`
	CreatedAt   time.Time  `json:"createdDate"`
	UpdatedAt   time.Time  `json:"updatedDate"`
}

// HasCoordinates reports whether the city can be looked up at the forecast provider.
func (c City) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}
