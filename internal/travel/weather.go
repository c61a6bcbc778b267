package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"net/url"

	"github.com/sefraniabdou1937/backend-az/internal/monitoring"
)

// Weather is the JSON shape of /api/weather/{city}. Temperature is an int on
// live and simulated readings and the string "--" on the placeholder.
type Weather struct {
	Ville       string `json:"ville"`
	Temperature any    `json:"temperature"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Humidite    *int   `json:"humidite,omitempty"`
}

// ForecastDay is one entry of the five-day forecast.
type ForecastDay struct {
	DayName  string `json:"day_name"`
	FullDate string `json:"full_date"`
	Temp     int    `json:"temp"`
}

// ForecastResponse is the JSON shape of /api/weather/forecast/{city}.
type ForecastResponse struct {
	Forecast []ForecastDay `json:"forecast"`
}

type weatherUpstreamResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// CurrentWeather returns the live reading for a city. An unknown city yields
// ErrCityNotFound; a transport failure yields the placeholder reading with a
// nil error.
func (c *Client) CurrentWeather(ctx context.Context, city string) (Weather, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.cfg.OpenWeatherKey)
	query.Set("units", "metric")
	query.Set("lang", "fr")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.WeatherURL+"?"+query.Encode(), nil)
	if err != nil {
		monitoring.RecordUpstream("weather", true, true)
		return placeholderWeather(city), nil
	}

	resp, err := c.weatherClient.Do(req)
	if err != nil {
		log.Printf("Weather upstream failed for %q: %v, serving placeholder", city, err)
		monitoring.RecordUpstream("weather", true, true)
		return placeholderWeather(city), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		monitoring.RecordUpstream("weather", true, false)
		return Weather{}, ErrCityNotFound
	}

	var decoded weatherUpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("Weather payload malformed for %q: %v, serving placeholder", city, err)
		monitoring.RecordUpstream("weather", true, true)
		return placeholderWeather(city), nil
	}
	if len(decoded.Weather) == 0 {
		monitoring.RecordUpstream("weather", true, true)
		return placeholderWeather(city), nil
	}

	monitoring.RecordUpstream("weather", false, false)
	humidity := decoded.Main.Humidity
	return Weather{
		Ville:       decoded.Name,
		Temperature: int(math.Round(decoded.Main.Temp)),
		Description: decoded.Weather[0].Description,
		Icon:        decoded.Weather[0].Icon,
		Humidite:    &humidity,
	}, nil
}

// SimulatedWeather produces the reading for a date-qualified request. It is
// intentionally simulation-only: no provider is called regardless of the
// date's value.
func (c *Client) SimulatedWeather(city, date string) Weather {
	return Weather{
		Ville:       city,
		Temperature: randomTemp(15, 30),
		Description: fmt.Sprintf("Ensoleillé (simulation) le %s", date),
	}
}

// Forecast produces five synthetic entries. The start date is accepted for
// interface compatibility but does not influence the result.
func (c *Client) Forecast(city, startDate string) ForecastResponse {
	days := make([]ForecastDay, 0, 5)
	for i := 1; i <= 5; i++ {
		days = append(days, ForecastDay{
			DayName:  fmt.Sprintf("Jour %d", i),
			FullDate: fmt.Sprintf("J+%d", i),
			Temp:     randomTemp(18, 32),
		})
	}
	return ForecastResponse{Forecast: days}
}

func placeholderWeather(city string) Weather {
	return Weather{
		Ville:       city,
		Temperature: "--",
		Description: "Indisponible",
		Icon:        "01d",
	}
}

// randomTemp returns a pseudo-random temperature in [min, max].
func randomTemp(min, max int) int {
	return min + rand.Intn(max-min+1)
}
