package httpapi

import (
	"github.com/i474232898/weather-now/internal/weather"
)

// stateResponse is the wire form of a weather.ViewState. Only the fields of
// the active variant are set.
type stateResponse struct {
	State         string                `json:"state"`
	Message       string                `json:"message,omitempty"`
	Location      *weather.Location     `json:"location,omitempty"`
	Current       *currentResponse      `json:"current,omitempty"`
	UpcomingHours []weather.HourEntry   `json:"upcomingHours,omitempty"`
	Days          []weather.DayForecast `json:"days,omitempty"`
	Backdrop      string                `json:"backdrop,omitempty"`
}

type currentResponse struct {
	weather.CurrentConditions
	Category weather.Category `json:"category"`
}

func (h *handler) render(state weather.ViewState) stateResponse {
	switch s := state.(type) {
	case weather.Success:
		loc := s.Location
		current := s.Current
		current.Condition = absoluteIcon(current.Condition)
		return stateResponse{
			State:    s.Kind(),
			Location: &loc,
			Current: &currentResponse{
				CurrentConditions: current,
				Category:          weather.Categorize(current.Condition.Text),
			},
			UpcomingHours: renderHours(s.UpcomingHours),
			Days:          renderDays(s.Days),
			Backdrop:      weather.Backdrop(current.Condition.Text, h.now().Hour()),
		}
	case weather.ErrorState:
		return stateResponse{State: s.Kind(), Message: s.Message}
	case weather.Loading:
		return stateResponse{State: s.Kind()}
	default:
		return stateResponse{State: weather.KindError, Message: "Some unknown error occurred"}
	}
}

// The published state is shared with other readers, so icons are rewritten on copies.

func renderHours(hours []weather.HourEntry) []weather.HourEntry {
	out := make([]weather.HourEntry, len(hours))
	for i, h := range hours {
		h.Condition = absoluteIcon(h.Condition)
		out[i] = h
	}
	return out
}

func renderDays(days []weather.DayForecast) []weather.DayForecast {
	out := make([]weather.DayForecast, len(days))
	for i, d := range days {
		d.Condition = absoluteIcon(d.Condition)
		d.Hours = renderHours(d.Hours)
		out[i] = d
	}
	return out
}

func absoluteIcon(c weather.Condition) weather.Condition {
	c.Icon = c.IconURL()
	return c
}
