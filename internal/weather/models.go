package weather

import "strings"

// Location is the place a snapshot was resolved to by the upstream API.
type Location struct {
	Name string `json:"name"`
}

// Condition is the upstream's free-text description of the weather plus an icon.
// Both fields are optional upstream and are left empty when absent.
type Condition struct {
	Text string `json:"text,omitempty"`
	Icon string `json:"icon,omitempty"`
}

// IconURL returns the icon as an absolute https URL.
// weatherapi.com serves protocol-relative links ("//cdn.weatherapi.com/...").
func (c Condition) IconURL() string {
	if strings.HasPrefix(c.Icon, "//") {
		return "https:" + c.Icon
	}
	return c.Icon
}

// CurrentConditions is the "right now" block of a snapshot.
type CurrentConditions struct {
	LastUpdated  string    `json:"lastUpdated"` // opaque, as sent upstream
	TemperatureC float64   `json:"temperatureC"`
	FeelsLikeC   float64   `json:"feelsLikeC"`
	Humidity     int       `json:"humidity"`
	Condition    Condition `json:"condition"`
}

// HourEntry is a single hourly forecast point. Time is "YYYY-MM-DD HH:MM".
type HourEntry struct {
	Time         string    `json:"time"`
	TemperatureC float64   `json:"temperatureC"`
	Condition    Condition `json:"condition"`
}

// DayForecast is one forecast day with its 24 hourly entries.
type DayForecast struct {
	Date            string      `json:"date"` // YYYY-MM-DD
	MaxTemperatureC float64     `json:"maxTemperatureC"`
	MinTemperatureC float64     `json:"minTemperatureC"`
	Condition       Condition   `json:"condition"`
	Hours           []HourEntry `json:"hours"`
}

// WeatherSnapshot is one complete payload for a single location at fetch time.
// Days are chronological; Days[0] is today.
type WeatherSnapshot struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
	Days     []DayForecast     `json:"days"`
}
