// Package maps implements the outbound client for the Google Maps web
// services used by the travel planner: the Distance Matrix API for route
// distances and the Places Text Search API for tourist attractions.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripwise/travel-planner/internal/api/metrics"
	"github.com/tripwise/travel-planner/internal/core/domain"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api"
	defaultTimeout = 10 * time.Second
	photoMaxWidth  = "400"
)

// Config captures the settings for the maps client.
type Config struct {
	APIKey  string
	BaseURL string        // override in tests; defaults to the Google endpoint
	Timeout time.Duration // per-request timeout on the underlying client
}

// Client calls the Google Maps web services. It implements ports.GeoGateway.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// --- Distance Matrix ---

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int64 `json:"value"` // meters
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// DistanceKm returns the route distance between origin and destination in
// kilometers. A missing element or element-level error yields 0 km rather
// than a hard failure; only transport errors and top-level API errors
// surface as domain.ErrGateway.
func (c *Client) DistanceKm(ctx context.Context, origin, destination string) (float64, error) {
	q := url.Values{}
	q.Set("origins", origin)
	q.Set("destinations", destination)
	q.Set("key", c.apiKey)

	var resp distanceMatrixResponse
	if err := c.getJSON(ctx, "distance_matrix", "/distancematrix/json", q, &resp); err != nil {
		return 0, err
	}

	if resp.Status != "OK" {
		metrics.GatewayRequestsTotal.WithLabelValues("distance_matrix", "error").Inc()
		return 0, fmt.Errorf("%w: distance matrix status %s", domain.ErrGateway, resp.Status)
	}

	metrics.GatewayRequestsTotal.WithLabelValues("distance_matrix", "ok").Inc()

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, nil
	}
	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		// No route between the pair; callers knowingly under-price.
		c.log.Warn().Str("origin", origin).Str("destination", destination).Str("status", el.Status).Msg("no distance for pair")
		return 0, nil
	}
	return float64(el.Distance.Value) / 1000, nil
}

// --- Places Text Search ---

type placesResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name             string  `json:"name"`
		FormattedAddress string  `json:"formatted_address"`
		Rating           float64 `json:"rating"`
		Photos           []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
}

// SearchPlaces returns tourist attractions in the destination. A non-OK
// API status (other than ZERO_RESULTS) or transport failure surfaces as
// domain.ErrGateway with no partial results.
func (c *Client) SearchPlaces(ctx context.Context, destination string) ([]domain.Place, error) {
	q := url.Values{}
	q.Set("query", "tourist attractions in "+destination)
	q.Set("key", c.apiKey)

	var resp placesResponse
	if err := c.getJSON(ctx, "places", "/place/textsearch/json", q, &resp); err != nil {
		return nil, err
	}

	if resp.Status == "ZERO_RESULTS" {
		metrics.GatewayRequestsTotal.WithLabelValues("places", "ok").Inc()
		return []domain.Place{}, nil
	}
	if resp.Status != "OK" {
		metrics.GatewayRequestsTotal.WithLabelValues("places", "error").Inc()
		return nil, fmt.Errorf("%w: places status %s", domain.ErrGateway, resp.Status)
	}

	metrics.GatewayRequestsTotal.WithLabelValues("places", "ok").Inc()

	places := make([]domain.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		p := domain.Place{
			Name:    r.Name,
			Address: r.FormattedAddress,
			Rating:  r.Rating,
		}
		if len(r.Photos) > 0 && r.Photos[0].PhotoReference != "" {
			p.PhotoURL = c.photoURL(r.Photos[0].PhotoReference)
		}
		places = append(places, p)
	}
	return places, nil
}

// photoURL builds the public photo endpoint URL from a photo reference.
func (c *Client) photoURL(ref string) string {
	q := url.Values{}
	q.Set("maxwidth", photoMaxWidth)
	q.Set("photoreference", ref)
	q.Set("key", c.apiKey)
	return c.baseURL + "/place/photo?" + q.Encode()
}

// getJSON performs a single GET against the maps API and decodes the JSON
// body. No retries: a request either succeeds or fails once.
func (c *Client) getJSON(ctx context.Context, api, path string, q url.Values, out any) error {
	start := time.Now()
	defer func() {
		metrics.GatewayRequestDuration.WithLabelValues(api).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrGateway, err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		metrics.GatewayRequestsTotal.WithLabelValues(api, "error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		metrics.GatewayRequestsTotal.WithLabelValues(api, "error").Inc()
		return fmt.Errorf("%w: unexpected status %d", domain.ErrGateway, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		metrics.GatewayRequestsTotal.WithLabelValues(api, "error").Inc()
		return fmt.Errorf("%w: decode response: %v", domain.ErrGateway, err)
	}
	return nil
}
