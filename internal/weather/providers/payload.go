package providers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/weather-now/internal/weather"
)

var validate = validator.New()

// The payload structs mirror weatherapi.com's forecast.json. Required fields are
// pointers so that a missing key (or an explicit null) can be told apart from a
// zero value.

type forecastPayload struct {
	Location *locationPayload `json:"location" validate:"required"`
	Current  *currentPayload  `json:"current" validate:"required"`
	Forecast *forecastBlock   `json:"forecast" validate:"required"`
}

type locationPayload struct {
	Name *string `json:"name" validate:"required"`
}

type conditionPayload struct {
	Text *string `json:"text"`
	Icon *string `json:"icon"`
}

type currentPayload struct {
	LastUpdated *string           `json:"last_updated" validate:"required"`
	TempC       *float64          `json:"temp_c" validate:"required"`
	Condition   *conditionPayload `json:"condition" validate:"required"`
	Humidity    *int              `json:"humidity" validate:"required"`
	FeelsLikeC  *float64          `json:"feelslike_c" validate:"required"`
}

type forecastBlock struct {
	ForecastDay []forecastDayPayload `json:"forecastday" validate:"required,dive"`
}

type forecastDayPayload struct {
	Date *string       `json:"date" validate:"required"`
	Day  *dayPayload   `json:"day" validate:"required"`
	Hour []hourPayload `json:"hour" validate:"required,dive"`
}

type dayPayload struct {
	MaxTempC  *float64          `json:"maxtemp_c" validate:"required"`
	MinTempC  *float64          `json:"mintemp_c" validate:"required"`
	Condition *conditionPayload `json:"condition" validate:"required"`
}

type hourPayload struct {
	Time      *string           `json:"time" validate:"required"`
	TempC     *float64          `json:"temp_c" validate:"required"`
	Condition *conditionPayload `json:"condition" validate:"required"`
}

// DecodeForecast parses a forecast.json body into a WeatherSnapshot.
// Missing required fields and wrong primitive types fail with
// weather.ErrMalformedResponse; condition text and icon are optional.
func DecodeForecast(r io.Reader) (weather.WeatherSnapshot, error) {
	var payload forecastPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: %v", weather.ErrMalformedResponse, err)
	}
	if err := validate.Struct(payload); err != nil {
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: %v", weather.ErrMalformedResponse, err)
	}
	return payload.toSnapshot(), nil
}

func (p forecastPayload) toSnapshot() weather.WeatherSnapshot {
	days := make([]weather.DayForecast, 0, len(p.Forecast.ForecastDay))
	for _, fd := range p.Forecast.ForecastDay {
		hours := make([]weather.HourEntry, 0, len(fd.Hour))
		for _, h := range fd.Hour {
			hours = append(hours, weather.HourEntry{
				Time:         *h.Time,
				TemperatureC: *h.TempC,
				Condition:    h.Condition.toCondition(),
			})
		}
		days = append(days, weather.DayForecast{
			Date:            *fd.Date,
			MaxTemperatureC: *fd.Day.MaxTempC,
			MinTemperatureC: *fd.Day.MinTempC,
			Condition:       fd.Day.Condition.toCondition(),
			Hours:           hours,
		})
	}

	return weather.WeatherSnapshot{
		Location: weather.Location{Name: *p.Location.Name},
		Current: weather.CurrentConditions{
			LastUpdated:  *p.Current.LastUpdated,
			TemperatureC: *p.Current.TempC,
			FeelsLikeC:   *p.Current.FeelsLikeC,
			Humidity:     *p.Current.Humidity,
			Condition:    p.Current.Condition.toCondition(),
		},
		Days: days,
	}
}

func (c *conditionPayload) toCondition() weather.Condition {
	var cond weather.Condition
	if c.Text != nil {
		cond.Text = *c.Text
	}
	if c.Icon != nil {
		cond.Icon = *c.Icon
	}
	return cond
}
