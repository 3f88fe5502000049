package smhi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/pacive/go-smhi/internal/forecast"
)

const (
	// DefaultBaseURL is SMHI's open data endpoint for meteorological forecasts.
	DefaultBaseURL = "https://opendata-download-metfcst.smhi.se"

	// pmp3g version 2 is the current point forecast product.
	category = "pmp3g"
	version  = "2"
)

var (
	// ErrPointOutsideGrid is returned when SMHI answers 404 for a point
	// forecast; the coordinates fall outside the model grid.
	ErrPointOutsideGrid = errors.New("requested point is outside the forecast grid")

	errCircuitOpen = errors.New("circuit breaker open")
	errServerError = errors.New("server error")
	errUnexpected  = errors.New("unexpected status code")
)

// Client fetches point forecasts and approved-time documents from SMHI.
// Outbound requests pass through a circuit breaker so a broken upstream
// fails fast; there is deliberately no retry and no response cache.
type Client struct {
	baseURL    string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
}

// NewClient creates a Client. An empty baseURL selects DefaultBaseURL; a nil
// httpClient selects one with a 10 second timeout.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "smhi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		circuit:    cb,
	}
}

// PointForecast fetches and decodes the forecast for the given coordinates.
// SMHI accepts at most six decimals, so coordinates are truncated in the URL.
func (c *Client) PointForecast(ctx context.Context, lon, lat float64) (*forecast.Series, error) {
	path := fmt.Sprintf("/api/category/%s/version/%s/geotype/point/lon/%.6f/lat/%.6f/data.json",
		category, version, lon, lat)

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeForecast(body)
}

// ApprovedTime fetches the identity of the latest published model run.
func (c *Client) ApprovedTime(ctx context.Context) (ModelRun, error) {
	path := fmt.Sprintf("/api/category/%s/version/%s/approvedtime.json", category, version)

	body, err := c.get(ctx, path)
	if err != nil {
		return ModelRun{}, err
	}
	return decodeApprovedTime(body)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	result, err := c.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, ErrPointOutsideGrid
		case resp.StatusCode >= 500:
			return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
		}

		return io.ReadAll(resp.Body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		return nil, err
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return body, nil
}
