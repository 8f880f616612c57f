package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"weather-cli/config"
	"weather-cli/models"
)

// APIError is returned when the provider responds with a non-success HTTP
// status. Message carries the provider's "message" field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error (%d): %s", e.StatusCode, e.Message)
}

// OpenWeatherMapClient fetches current weather and forecasts from the
// OpenWeatherMap REST API.
type OpenWeatherMapClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherMapClient creates a client from the given configuration.
func NewOpenWeatherMapClient(cfg *config.Config) *OpenWeatherMapClient {
	return &OpenWeatherMapClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// GetCurrentWeather fetches current weather for the queried location.
func (c *OpenWeatherMapClient) GetCurrentWeather(ctx context.Context, query WeatherQuery) (*models.CurrentConditions, error) {
	params := c.baseParams()
	query.locationParams(params)

	var conditions models.CurrentConditions
	if err := c.get(ctx, "/weather", params, &conditions); err != nil {
		return nil, err
	}

	return &conditions, nil
}

// GetForecast fetches the 3-hour-step forecast for the queried location,
// requesting min(days*8, 40) samples.
func (c *OpenWeatherMapClient) GetForecast(ctx context.Context, query WeatherQuery) (*models.ForecastResponse, error) {
	params := c.baseParams()
	query.locationParams(params)
	params.Set("cnt", strconv.Itoa(query.SampleCount()))

	var forecast models.ForecastResponse
	if err := c.get(ctx, "/forecast", params, &forecast); err != nil {
		return nil, err
	}

	return &forecast, nil
}

// baseParams returns the parameters common to every call. Units are fixed
// to imperial.
func (c *OpenWeatherMapClient) baseParams() url.Values {
	params := url.Values{}
	params.Set("appid", c.apiKey)
	params.Set("units", "imperial")
	return params
}

// get performs one blocking GET against the given endpoint and decodes the
// response into out.
func (c *OpenWeatherMapClient) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// errorMessage extracts the provider's "message" field from an error body,
// falling back to "Unknown error".
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		return "Unknown error"
	}
	return payload.Message
}
