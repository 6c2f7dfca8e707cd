package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

var (
	// ErrPermissionDenied is returned when the provider refuses the request
	ErrPermissionDenied = errors.New("location access denied")

	// ErrUnavailable is returned when no coordinate fix can be obtained
	ErrUnavailable = errors.New("location service unavailable")

	// ErrTimeout is returned when the provider does not answer within the deadline
	ErrTimeout = errors.New("location request timed out")
)

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Provider resolves the caller's current coordinates. Implementations may
// fail with ErrPermissionDenied, ErrUnavailable or ErrTimeout.
type Provider interface {
	Current(ctx context.Context) (Coordinates, error)
}

// Config holds coordinate provider settings.
type Config struct {
	URL       string
	Timeout   time.Duration
	MaxFixAge time.Duration
}

// Client resolves coordinates through an external HTTP lookup service.
// A previously obtained fix is reused while it is younger than MaxFixAge,
// so transient provider outages do not surface immediately.
type Client struct {
	config     Config
	httpClient *http.Client

	mu      sync.Mutex
	lastFix *Coordinates
	fixedAt time.Time
}

// NewClient creates a coordinate provider client with the given configuration.
func NewClient(config Config) (*Client, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("invalid config: provider URL is required")
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.MaxFixAge <= 0 {
		config.MaxFixAge = 5 * time.Minute
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}, nil
}

type lookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Current returns the caller's coordinates, preferring a fresh cached fix.
func (c *Client) Current(ctx context.Context) (Coordinates, error) {
	c.mu.Lock()
	if c.lastFix != nil && time.Since(c.fixedAt) < c.config.MaxFixAge {
		fix := *c.lastFix
		c.mu.Unlock()
		return fix, nil
	}
	c.mu.Unlock()

	coords, err := c.lookup(ctx)
	if err != nil {
		return Coordinates{}, err
	}

	c.mu.Lock()
	c.lastFix = &coords
	c.fixedAt = time.Now()
	c.mu.Unlock()

	return coords, nil
}

func (c *Client) lookup(ctx context.Context) (Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.URL, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return Coordinates{}, ErrTimeout
		}
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized:
		return Coordinates{}, ErrPermissionDenied
	case resp.StatusCode != http.StatusOK:
		return Coordinates{}, fmt.Errorf("%w: provider returned status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var lookup lookupResponse
	if err := json.Unmarshal(body, &lookup); err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if lookup.Status != "" && lookup.Status != "success" {
		return Coordinates{}, fmt.Errorf("%w: %s", ErrUnavailable, lookup.Message)
	}

	return Coordinates{Latitude: lookup.Lat, Longitude: lookup.Lon}, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
