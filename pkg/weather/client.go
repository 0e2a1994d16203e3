package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/latoulicious/weather-dominator/pkg/apperrors"
	"github.com/latoulicious/weather-dominator/pkg/logging"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	serviceName     = "openweathermap"
	DefaultBaseURL  = "https://api.openweathermap.org/data/2.5"
	DefaultTimeout  = 10 * time.Second
	maxResponseSize = 1 << 20
)

// Fetcher resolves a city to a weather record
type Fetcher interface {
	Current(ctx context.Context, city string) (*Record, error)
}

// Options configures a Client
type Options struct {
	APIKey     string
	BaseURL    string
	Units      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client calls the OpenWeatherMap current-weather endpoint and falls back to
// demo data whenever a live answer is unavailable.
type Client struct {
	apiKey  string
	baseURL string
	units   string
	timeout time.Duration
	client  *http.Client
	logger  logging.Logger
	now     func() time.Time
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a weather client. An empty API key puts it in demo mode.
func NewClient(opts Options, logger logging.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Units == "" {
		opts.Units = UnitsImperial
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		apiKey:  strings.TrimSpace(opts.APIKey),
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		units:   opts.Units,
		timeout: opts.Timeout,
		client:  opts.HTTPClient,
		logger:  logger,
		now:     time.Now,
	}
}

// DemoMode reports whether no API key is configured
func (c *Client) DemoMode() bool {
	return c.apiKey == ""
}

// Units returns the unit system requested from the API
func (c *Client) Units() string {
	return c.units
}

// Current returns the weather for city. The only error is InvalidInputError
// for an empty city; every upstream failure degrades to a demo record.
func (c *Client) Current(ctx context.Context, city string) (*Record, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, apperrors.InvalidInput("city", "", "must not be empty")
	}

	if c.DemoMode() {
		c.logger.Debug("No API key configured, using demo data", map[string]interface{}{
			"city": city,
		})
		return DemoRecord(city, c.units), nil
	}

	record, err := c.fetchLive(ctx, city)
	if err == nil {
		return record, nil
	}

	kind := apperrors.Classify(err)
	fields := map[string]interface{}{
		"city":       city,
		"error_type": kind,
	}
	var upstream *apperrors.UpstreamUnavailableError
	if errors.As(err, &upstream) && upstream.StatusCode != 0 {
		fields["status_code"] = upstream.StatusCode
	}
	c.logger.Warn("Weather API unavailable, falling back to demo data", mergeError(fields, err))

	demo := DemoRecord(city, c.units)
	demo.FallbackReason = kind
	return demo, nil
}

// fetchLive performs exactly one upstream request
func (c *Client) fetchLive(ctx context.Context, city string) (*Record, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + "/weather?" + url.Values{
		"q":     {city},
		"appid": {c.apiKey},
		"units": {c.units},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Upstream(serviceName, apperrors.KindNetwork, 0, fmt.Errorf("build weather request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.Upstream(serviceName, apperrors.KindNetwork, 0, fmt.Errorf("weather request: %w", c.redact(err)))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, apperrors.Upstream(serviceName, apperrors.KindNetwork, resp.StatusCode, fmt.Errorf("read weather response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.Upstream(serviceName, classifyStatus(resp.StatusCode), resp.StatusCode, upstreamMessage(body, resp.Status))
	}

	record, err := parseCurrent(body, c.units)
	if err != nil {
		return nil, apperrors.Upstream(serviceName, apperrors.KindMalformed, resp.StatusCode, err)
	}
	record.FetchedAt = c.now().UTC()

	c.logger.Debug("Fetched live weather", map[string]interface{}{
		"city":        record.City,
		"duration_ms": c.now().Sub(start).Milliseconds(),
	})

	return record, nil
}

// redact drops the request URL, which carries the API key, from transport errors
func (c *Client) redact(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	return fmt.Errorf("%s %s/weather: %w", urlErr.Op, c.baseURL, urlErr.Err)
}

func classifyStatus(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.KindAuth
	case http.StatusTooManyRequests:
		return apperrors.KindRateLimit
	default:
		return apperrors.KindHTTPStatus
	}
}

// upstreamMessage extracts the API's own error message when present
func upstreamMessage(body []byte, status string) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("weather API returned %s: %s", status, payload.Message)
	}
	return fmt.Errorf("weather API returned %s", status)
}

type currentResponse struct {
	Name string `json:"name"`
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *int     `json:"humidity"`
		Pressure  *float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Visibility float64 `json:"visibility"`
	Sys        *struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

// parseCurrent maps the upstream payload to a Record, rejecting payloads
// that would leave required fields empty.
func parseCurrent(body []byte, units string) (*Record, error) {
	var payload currentResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	var missing []string
	if strings.TrimSpace(payload.Name) == "" {
		missing = append(missing, "name")
	}
	if payload.Main == nil || payload.Main.Temp == nil || payload.Main.Humidity == nil || payload.Main.Pressure == nil {
		missing = append(missing, "main")
	}
	if len(payload.Weather) == 0 || (payload.Weather[0].Description == "" && payload.Weather[0].Main == "") {
		missing = append(missing, "weather")
	}
	if payload.Sys == nil || payload.Sys.Sunrise == 0 || payload.Sys.Sunset == 0 {
		missing = append(missing, "sys")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("weather response missing fields: %s", strings.Join(missing, ", "))
	}

	condition := payload.Weather[0].Description
	if condition == "" {
		condition = payload.Weather[0].Main
	}

	feelsLike := *payload.Main.Temp
	if payload.Main.FeelsLike != nil {
		feelsLike = *payload.Main.FeelsLike
	}

	var raw map[string]interface{}
	_ = json.Unmarshal(body, &raw)

	return &Record{
		City:          payload.Name,
		Country:       payload.Sys.Country,
		Temperature:   *payload.Main.Temp,
		FeelsLike:     feelsLike,
		Humidity:      *payload.Main.Humidity,
		WindSpeed:     payload.Wind.Speed,
		WindDirection: payload.Wind.Deg,
		Pressure:      *payload.Main.Pressure,
		Visibility:    payload.Visibility / 1000,
		Condition:     cases.Title(language.English).String(condition),
		Icon:          payload.Weather[0].Icon,
		Sunrise:       time.Unix(payload.Sys.Sunrise, 0).UTC(),
		Sunset:        time.Unix(payload.Sys.Sunset, 0).UTC(),
		Units:         units,
		Source:        SourceLive,
		RawData:       raw,
	}, nil
}

func mergeError(fields map[string]interface{}, err error) map[string]interface{} {
	fields["error"] = err.Error()
	return fields
}
