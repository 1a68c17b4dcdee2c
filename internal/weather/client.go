package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"weatherbot/internal/config"

	"github.com/tidwall/gjson"
)

// maxBodySize caps how much of a response is read
const maxBodySize = 1 << 20

// Result is the outcome of a lookup: either Text and IconURL, or Err
type Result struct {
	Text    string
	IconURL string
	Err     *LookupError
}

// OK reports whether the lookup succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Client queries the OpenWeatherMap current weather API
type Client struct {
	cfg  config.WeatherConfig
	http *http.Client
}

// NewClient creates a weather client. A nil httpClient gets one with cfg.Timeout.
func NewClient(cfg config.WeatherConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, http: httpClient}
}

// ByCoordinates looks up the current weather at the given point
func (c *Client) ByCoordinates(ctx context.Context, lat, lon float64) Result {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return c.lookup(ctx, params)
}

// ByCity looks up the current weather by city name
func (c *Client) ByCity(ctx context.Context, name string) Result {
	params := url.Values{}
	params.Set("q", name)
	return c.lookup(ctx, params)
}

func (c *Client) lookup(ctx context.Context, params url.Values) Result {
	endpoint, err := url.Parse(c.cfg.APIURL)
	if err != nil {
		return failed(KindTransport, 0, fmt.Sprintf("invalid api url: %v", err))
	}

	params.Set("appid", c.cfg.APIKey)
	params.Set("units", c.cfg.Units)
	if c.cfg.Lang != "" {
		params.Set("lang", c.cfg.Lang)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return failed(KindTransport, 0, err.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return failed(KindTransport, 0, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return failed(KindTransport, resp.StatusCode, fmt.Sprintf("failed to read body: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := http.StatusText(resp.StatusCode)
		if m := gjson.GetBytes(body, "message"); m.Type == gjson.String && m.Str != "" {
			msg = m.Str
		}
		return failed(KindStatus, resp.StatusCode, msg)
	}

	report, err := parse(body)
	if err != nil {
		return failed(KindPayload, resp.StatusCode, err.Error())
	}

	return Result{
		Text:    Format(report, c.cfg.Units),
		IconURL: fmt.Sprintf(c.cfg.IconURL, report.Icon),
	}
}

// requiredPaths lists the response fields a report is built from.
// The first two are strings, the rest are numbers.
var requiredPaths = []string{
	"weather.0.description",
	"weather.0.icon",
	"main.temp",
	"main.feels_like",
	"main.pressure",
	"main.humidity",
	"wind.speed",
}

// parse extracts the report from a response body. Every field is required.
func parse(body []byte) (Report, error) {
	if !gjson.ValidBytes(body) {
		return Report{}, fmt.Errorf("invalid json")
	}

	fields := gjson.GetManyBytes(body, requiredPaths...)

	for i, f := range fields {
		want := gjson.Number
		if i < 2 {
			want = gjson.String
		}
		if f.Type != want {
			return Report{}, fmt.Errorf("missing or invalid field %s", requiredPaths[i])
		}
	}

	return Report{
		Description: fields[0].Str,
		Icon:        fields[1].Str,
		Temp:        fields[2].Num,
		FeelsLike:   fields[3].Num,
		Pressure:    fields[4].Num,
		Humidity:    fields[5].Num,
		WindSpeed:   fields[6].Num,
	}, nil
}

func failed(kind Kind, status int, msg string) Result {
	return Result{Err: &LookupError{Kind: kind, StatusCode: status, Message: msg}}
}
