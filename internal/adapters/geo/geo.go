// Package geo provides geocoding via Nominatim and forecasts via Open-Meteo
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	perr "assistant/internal/platform/errors"
	"assistant/internal/platform/logger"
)

const (
	nominatimURL   = "https://nominatim.openstreetmap.org/search"
	openMeteoURL   = "https://api.open-meteo.com/v1/forecast"
	defaultUA      = "assistant/1.0"
	defaultTimeout = 10 * time.Second
)

// Options configures the Client
type Options struct {
	GeocodeURL  string
	ForecastURL string
	UserAgent   string
	Timeout     time.Duration
}

// Client talks to the geocoding and weather services
type Client struct {
	http *http.Client
	opts Options
	log  *logger.Logger
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.GeocodeURL == "" {
		o.GeocodeURL = nominatimURL
	}
	if o.ForecastURL == "" {
		o.ForecastURL = openMeteoURL
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  logger.Named("geo"),
	}
}

// Place is one geocoding hit
type Place struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Forecast is the subset of the weather response the assistant speaks
type Forecast struct {
	CurrentTempC  float64
	ConditionCode int
	DailyHighC    float64
	DailyLowC     float64
}

// Geocode resolves a free-text place name, nil when nothing matched
func (c *Client) Geocode(ctx context.Context, location string) (*Place, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("format", "json")
	q.Set("limit", "1")

	var hits []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := c.getJSON(ctx, c.opts.GeocodeURL+"?"+q.Encode(), &hits); err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "geocode: bad latitude %q", hits[0].Lat)
	}
	lon, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "geocode: bad longitude %q", hits[0].Lon)
	}
	return &Place{Lat: lat, Lon: lon, DisplayName: hits[0].DisplayName}, nil
}

// Forecast fetches current conditions and today's range for coordinates
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*Forecast, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", "temperature_2m,weather_code")
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	q.Set("timezone", "auto")

	var body struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			WeatherCode int     `json:"weather_code"`
		} `json:"current"`
		Daily struct {
			TempMax []float64 `json:"temperature_2m_max"`
			TempMin []float64 `json:"temperature_2m_min"`
		} `json:"daily"`
	}
	if err := c.getJSON(ctx, c.opts.ForecastURL+"?"+q.Encode(), &body); err != nil {
		return nil, err
	}

	f := &Forecast{
		CurrentTempC:  body.Current.Temperature,
		ConditionCode: body.Current.WeatherCode,
	}
	if len(body.Daily.TempMax) > 0 {
		f.DailyHighC = body.Daily.TempMax[0]
	}
	if len(body.Daily.TempMin) > 0 {
		f.DailyLowC = body.Daily.TempMin[0]
	}
	return f, nil
}

// Summary geocodes the location and renders a spoken weather sentence.
// Unknown locations produce a friendly message, not an error
func (c *Client) Summary(ctx context.Context, location string) (string, error) {
	place, err := c.Geocode(ctx, location)
	if err != nil {
		return "", err
	}
	if place == nil {
		return fmt.Sprintf("Couldn't find location %s", location), nil
	}

	f, err := c.Forecast(ctx, place.Lat, place.Lon)
	if err != nil {
		c.log.Warn().Err(err).Str("location", location).Msg("forecast failed")
		return fmt.Sprintf("Couldn't retrieve weather for %s", location), nil
	}

	return fmt.Sprintf("Current weather in %s: %v°C, %s. Today: High %v°C, Low %v°C",
		place.DisplayName, f.CurrentTempC, Condition(f.ConditionCode), f.DailyHighC, f.DailyLowC), nil
}

// Condition renders a WMO weather code as words
func Condition(code int) string {
	if s, ok := weatherCodes[code]; ok {
		return s
	}
	return "unknown conditions"
}

// weatherCodes maps WMO codes to descriptions
var weatherCodes = map[int]string{
	0:  "clear sky",
	1:  "mainly clear",
	2:  "partly cloudy",
	3:  "overcast",
	45: "fog",
	51: "light drizzle",
	61: "light rain",
	80: "light rain showers",
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "geo: new request")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "geo: request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return perr.WithStatus(
			perr.Unavailablef("geo: unexpected status %d", resp.StatusCode),
			resp.StatusCode,
		)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
