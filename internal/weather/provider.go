package weather

import "context"

// Client abstracts the upstream weather source (weatherapi.com in production).
// Fetch issues a single request per call and must not be called with an empty query.
type Client interface {
	Fetch(ctx context.Context, query string) (WeatherSnapshot, error)
}

// StateStore holds the single latest published ViewState.
type StateStore interface {
	Save(state ViewState)
	Latest() (ViewState, error)
}
