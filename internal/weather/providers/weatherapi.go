package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/i474232898/weather-now/internal/weather"
)

const (
	// DefaultWeatherAPIBaseURL is the weatherapi.com v1 root.
	DefaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1"
	// DefaultForecastDays is how many forecast days are requested by default.
	DefaultForecastDays = 3

	// weatherapi.com error code for "No matching location found."
	codeNoMatchingLocation = 1006
)

var errMissingAPIKey = errors.New("weatherapi api key is not configured")

// apiError carries the upstream's error envelope for a non-success response.
type apiError struct {
	status  int
	code    int
	message string
}

func (e *apiError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("weatherapi returned status %d", e.status)
	}
	return fmt.Sprintf("weatherapi returned status %d (code %d): %s", e.status, e.code, e.message)
}

// WeatherAPIOption customizes a WeatherAPIClient.
type WeatherAPIOption func(*WeatherAPIClient)

// WithBaseURL points the client at a different API root (tests, proxies).
func WithBaseURL(baseURL string) WeatherAPIOption {
	return func(c *WeatherAPIClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithForecastDays sets the "days" query parameter.
func WithForecastDays(days int) WeatherAPIOption {
	return func(c *WeatherAPIClient) {
		if days > 0 {
			c.days = days
		}
	}
}

// WithCircuitBreaker enables a fail-fast circuit breaker in front of the API.
func WithCircuitBreaker() WeatherAPIOption {
	return func(c *WeatherAPIClient) {
		c.httpCfg.Circuit = NewCircuitBreaker("weatherapi")
	}
}

// WithLogger sets the client's logger.
func WithLogger(logger *zap.SugaredLogger) WeatherAPIOption {
	return func(c *WeatherAPIClient) {
		c.logger = logger
	}
}

// WeatherAPIClient implements weather.Client against weatherapi.com's forecast endpoint.
type WeatherAPIClient struct {
	apiKey  string
	baseURL string
	days    int
	httpCfg HTTPClientConfig
	logger  *zap.SugaredLogger
}

var _ weather.Client = (*WeatherAPIClient)(nil)

// NewWeatherAPIClient creates a client. A nil http.Client means http.DefaultClient.
func NewWeatherAPIClient(client *http.Client, apiKey string, opts ...WeatherAPIOption) *WeatherAPIClient {
	if client == nil {
		client = http.DefaultClient
	}
	c := &WeatherAPIClient{
		apiKey:  apiKey,
		baseURL: DefaultWeatherAPIBaseURL,
		days:    DefaultForecastDays,
		httpCfg: HTTPClientConfig{Client: client},
		logger:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves current conditions and the multi-day forecast for query.
// It issues exactly one request and never retries.
func (c *WeatherAPIClient) Fetch(ctx context.Context, query string) (weather.WeatherSnapshot, error) {
	if query == "" {
		return weather.WeatherSnapshot{}, weather.ErrEmptyQuery
	}
	if c.apiKey == "" {
		return weather.WeatherSnapshot{}, errMissingAPIKey
	}

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", query)
	values.Set("days", strconv.Itoa(c.days))
	values.Set("aqi", "no")
	values.Set("alerts", "no")

	u := fmt.Sprintf("%s/forecast.json?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return weather.WeatherSnapshot{}, err
	}

	resp, err := doRequest(c.httpCfg, req)
	if err != nil {
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: %v", weather.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := readAPIError(resp)
		if apiErr.code == codeNoMatchingLocation {
			return weather.WeatherSnapshot{}, fmt.Errorf("%w: %q", weather.ErrNotFound, query)
		}
		c.logger.Debugw("weatherapi request rejected", "status", apiErr.status, "code", apiErr.code)
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: %w", weather.ErrNetwork, apiErr)
	}

	snapshot, err := DecodeForecast(resp.Body)
	if err != nil {
		return weather.WeatherSnapshot{}, err
	}
	return snapshot, nil
}

func readAPIError(resp *http.Response) *apiError {
	apiErr := &apiError{status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var envelope struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		apiErr.message = strings.TrimSpace(string(body))
		return apiErr
	}
	apiErr.code = envelope.Error.Code
	apiErr.message = envelope.Error.Message
	return apiErr
}
