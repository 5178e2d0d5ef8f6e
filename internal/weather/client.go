package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// DefaultBaseURL is the Open-Meteo daily forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Client fetches a single-day forecast from Open-Meteo and classifies it.
//
// Every lookup is a single best-effort attempt: no retries, no caching. The
// circuit breaker only short-circuits calls while the service is known bad,
// turning them into an immediate offline result.
type Client struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
	log     zerolog.Logger
}

// NewClient creates a Client. baseURL may be empty to use DefaultBaseURL.
func NewClient(httpClient *http.Client, baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL: baseURL,
		client:  httpClient,
		circuit: cb,
		log:     log,
	}
}

type dailyPayload struct {
	TemperatureMax []float64 `json:"temperature_2m_max"`
	TemperatureMin []float64 `json:"temperature_2m_min"`
	WeatherCode    []int     `json:"weathercode"`
}

// Fetch looks up the daily forecast for the given coordinates and calendar
// date. It never returns an error: any failure is absorbed into a degraded
// Result. Only the first daily entry is consulted (the request is a
// single-day window, so it is also the only one).
func (c *Client) Fetch(ctx context.Context, lat, lon float64, date time.Time) Result {
	day := date.Format("2006-01-02")

	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Add("daily", "temperature_2m_max")
	values.Add("daily", "temperature_2m_min")
	values.Add("daily", "weathercode")
	values.Set("temperature_unit", "fahrenheit")
	values.Set("timezone", "auto")
	values.Set("start_date", day)
	values.Set("end_date", day)

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())

	payload, err := c.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		// Out-of-range dates come back as a JSON error body with a 4xx
		// status. Decode regardless of status; a missing daily block is the
		// unavailable case, not a transport failure.
		var body struct {
			Daily *dailyPayload `json:"daily"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, err
		}
		return body.Daily, nil
	})
	if err != nil {
		c.log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Str("date", day).
			Msg("weather lookup failed")
		return Offline()
	}

	daily, _ := payload.(*dailyPayload)
	if daily == nil ||
		len(daily.TemperatureMax) < 1 || len(daily.TemperatureMin) < 1 || len(daily.WeatherCode) < 1 {
		c.log.Debug().Str("date", day).Msg("no daily forecast data for date")
		return Unavailable()
	}

	return Ok(daily.WeatherCode[0], daily.TemperatureMax[0], daily.TemperatureMin[0])
}
