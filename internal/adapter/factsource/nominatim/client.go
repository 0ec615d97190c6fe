package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"traveling-message/config"
	"traveling-message/internal/core/domain"

	"github.com/rs/zerolog"
)

// Client resolves "city, country" pairs to coordinates via a
// Nominatim-compatible geocoding API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a geocoder client.
func New(cfg config.GeocoderConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.With().Str("component", "nominatim").Logger(),
	}
}

// Nominatim returns coordinates as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve returns the coordinates of the best match for city, country.
// It errors when the geocoder finds no match at all.
func (c *Client) Resolve(ctx context.Context, city, country string) (domain.Coordinates, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", fmt.Sprintf("%s, %s", city, country))
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode response: %w", err)
	}
	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no match for %q, %q", city, country)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse longitude: %w", err)
	}

	c.log.Debug().Str("city", city).Str("country", country).
		Float64("lat", lat).Float64("lng", lng).Msg("location resolved")
	return domain.Coordinates{Lat: lat, Lng: lng}, nil
}
