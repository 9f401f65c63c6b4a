package providers

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/i474232898/weather-now/internal/weather"
)

func TestDecodeForecastFixture(t *testing.T) {
	f, err := os.Open("testdata/forecast.json")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	snap, err := DecodeForecast(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.Location.Name != "Paris" {
		t.Errorf("location.name: expected %q, got %q", "Paris", snap.Location.Name)
	}
	if snap.Current.TemperatureC != 17.2 {
		t.Errorf("current.temp_c: expected 17.2, got %v", snap.Current.TemperatureC)
	}
	if snap.Current.LastUpdated != "2025-10-18 14:00" {
		t.Errorf("current.last_updated: got %q", snap.Current.LastUpdated)
	}
	if snap.Current.Humidity != 63 {
		t.Errorf("current.humidity: expected 63, got %d", snap.Current.Humidity)
	}
	if snap.Current.Condition.Text != "Partly cloudy" {
		t.Errorf("current.condition.text: got %q", snap.Current.Condition.Text)
	}
	if len(snap.Days) != 2 {
		t.Fatalf("expected 2 forecast days, got %d", len(snap.Days))
	}
	if got := snap.Days[0].Hours[0].Time; got != "2025-10-18 00:00" {
		t.Errorf("forecastday[0].hour[0].time: expected %q, got %q", "2025-10-18 00:00", got)
	}
	if len(snap.Days[0].Hours) != 24 || len(snap.Days[1].Hours) != 24 {
		t.Errorf("expected 24 hours per day, got %d and %d", len(snap.Days[0].Hours), len(snap.Days[1].Hours))
	}
	if snap.Days[1].Date != "2025-10-19" || snap.Days[1].MaxTemperatureC != 16.0 || snap.Days[1].MinTemperatureC != 8.2 {
		t.Errorf("unexpected second day: %+v", snap.Days[1])
	}
}

func TestDecodeForecastOptionalConditionFields(t *testing.T) {
	body := `{
		"location": {"name": "Oslo"},
		"current": {"last_updated": "x", "temp_c": 1, "humidity": 80, "feelslike_c": -2, "condition": {}},
		"forecast": {"forecastday": [
			{"date": "2025-01-01", "day": {"maxtemp_c": 2, "mintemp_c": -3, "condition": {"text": null}},
			 "hour": [{"time": "2025-01-01 00:00", "temp_c": -1, "condition": {"icon": "//cdn/x.png"}}]}
		]}
	}`

	snap, err := DecodeForecast(strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Current.Condition != (weather.Condition{}) {
		t.Errorf("expected empty current condition, got %+v", snap.Current.Condition)
	}
	if snap.Days[0].Condition.Text != "" {
		t.Errorf("expected empty day condition text, got %q", snap.Days[0].Condition.Text)
	}
	if got := snap.Days[0].Hours[0].Condition.IconURL(); got != "https://cdn/x.png" {
		t.Errorf("expected https icon url, got %q", got)
	}
}

func TestDecodeForecastMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":        `<html>oops</html>`,
		"missing current": `{"location": {"name": "A"}, "forecast": {"forecastday": []}}`,
		"missing name": `{"location": {}, "current": {"last_updated": "x", "temp_c": 1, "humidity": 1, "feelslike_c": 1, "condition": {}},
			"forecast": {"forecastday": []}}`,
		"null temp": `{"location": {"name": "A"}, "current": {"last_updated": "x", "temp_c": null, "humidity": 1, "feelslike_c": 1, "condition": {}},
			"forecast": {"forecastday": []}}`,
		"string temp": `{"location": {"name": "A"}, "current": {"last_updated": "x", "temp_c": "warm", "humidity": 1, "feelslike_c": 1, "condition": {}},
			"forecast": {"forecastday": []}}`,
		"fractional humidity": `{"location": {"name": "A"}, "current": {"last_updated": "x", "temp_c": 1, "humidity": 50.5, "feelslike_c": 1, "condition": {}},
			"forecast": {"forecastday": []}}`,
		"missing forecastday": `{"location": {"name": "A"}, "current": {"last_updated": "x", "temp_c": 1, "humidity": 1, "feelslike_c": 1, "condition": {}},
			"forecast": {}}`,
		"hour without time": `{"location": {"name": "A"}, "current": {"last_updated": "x", "temp_c": 1, "humidity": 1, "feelslike_c": 1, "condition": {}},
			"forecast": {"forecastday": [{"date": "d", "day": {"maxtemp_c": 1, "mintemp_c": 0, "condition": {}},
				"hour": [{"temp_c": 1, "condition": {}}]}]}}`,
		"day without condition": `{"location": {"name": "A"}, "current": {"last_updated": "x", "temp_c": 1, "humidity": 1, "feelslike_c": 1, "condition": {}},
			"forecast": {"forecastday": [{"date": "d", "day": {"maxtemp_c": 1, "mintemp_c": 0}, "hour": []}]}}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeForecast(strings.NewReader(body))
			if !errors.Is(err, weather.ErrMalformedResponse) {
				t.Fatalf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}
