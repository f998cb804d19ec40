package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const dailyMetrics = "temperature_2m_max,temperature_2m_min,precipitation_sum"

type Endpoints struct {
	Geocoding string
	Forecast  string
	Archive   string
}

// Client talks to the Open-Meteo geocoding, forecast and archive APIs.
type Client struct {
	Endpoints  Endpoints
	UserAgent  string
	HTTPClient *http.Client
}

func NewClient(endpoints Endpoints, userAgent string, timeout time.Duration) *Client {
	return &Client{
		Endpoints: endpoints,
		UserAgent: userAgent,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) getJSON(ctx context.Context, what, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", what, err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", what, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s request failed: %s: %s", what, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid %s JSON: %w", what, err)
	}
	return nil
}

// Geocode searches US places named city, asking for up to 10 candidates.
func (c *Client) Geocode(ctx context.Context, city string) (GeoResponse, error) {
	params := url.Values{}
	params.Set("name", strings.TrimSpace(city))
	params.Set("count", "10")
	params.Set("language", "en")
	params.Set("format", "json")
	params.Set("country", "US")

	var resp GeoResponse
	err := c.getJSON(ctx, "geocoding", c.Endpoints.Geocoding+"?"+params.Encode(), &resp)
	return resp, err
}

// Daily requests a single day of the three daily metrics from source.
// An empty timezone asks the service to pick one.
func (c *Client) Daily(ctx context.Context, source Source, lat, lon float64, date, timezone string) (DailyResponse, error) {
	base := c.Endpoints.Forecast
	if source == SourceArchive {
		base = c.Endpoints.Archive
	}
	if timezone == "" {
		timezone = AutoTimezone
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("start_date", date)
	params.Set("end_date", date)
	params.Set("daily", dailyMetrics)
	params.Set("timezone", timezone)

	var resp DailyResponse
	err := c.getJSON(ctx, string(source), base+"?"+params.Encode(), &resp)
	return resp, err
}
