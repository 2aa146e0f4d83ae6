package external

// HourlyTimeLayout is the local-time layout of Open-Meteo hourly timestamps.
const HourlyTimeLayout = "2006-01-02T15:04"

// ForecastResponse is the payload of GET /v1/forecast.
type ForecastResponse struct {
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	Timezone         string          `json:"timezone"`
	UTCOffsetSeconds int             `json:"utc_offset_seconds"`
	CurrentWeather   *CurrentWeather `json:"current_weather"`
	Hourly           *HourlySeries   `json:"hourly"`
}

// CurrentWeather is the current_weather section. Fields are pointers so a partial payload can be detected.
type CurrentWeather struct {
	Temperature *float64 `json:"temperature"`
	WindSpeed   *float64 `json:"windspeed"`
	WeatherCode *int     `json:"weathercode"`
	Time        string   `json:"time"`
}

// HourlySeries holds index-aligned arrays.
type HourlySeries struct {
	Time          []string   `json:"time"`
	Temperature2m []*float64 `json:"temperature_2m"`
}

// GeocodingResponse is the payload of GET /v1/search.
type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

type GeocodingResult struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// APIErrorResponse is the body Open-Meteo sends with 4xx answers.
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
