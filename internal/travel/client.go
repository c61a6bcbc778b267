// Package travel aggregates third-party travel data (cities, weather, photos,
// visa rules, currency rates, flights) behind one client. Every upstream call
// runs under a fixed per-kind timeout and any failure is absorbed: the caller
// receives either deterministic substitute data or a structured error value,
// never a transport error.
package travel

import (
	"net/http"
	"time"
)

// Per-kind upstream timeouts. Exceeding one is handled exactly like any other
// transport failure.
const (
	citiesTimeout   = 3 * time.Second
	weatherTimeout  = 3 * time.Second
	photosTimeout   = 4 * time.Second
	currencyTimeout = 4 * time.Second
	flightsTimeout  = 5 * time.Second
)

// Config carries the provider keys and endpoints the client needs. Base URLs
// are overridable so tests can point at a local server.
type Config struct {
	OpenWeatherKey   string
	UnsplashKey      string
	ExchangeRateKey  string
	AviationStackKey string

	CitiesURL   string
	WeatherURL  string
	PhotosURL   string
	CurrencyURL string
	FlightsURL  string
}

// Client calls the travel-data providers. Safe for concurrent use.
type Client struct {
	cfg Config

	citiesClient   *http.Client
	weatherClient  *http.Client
	photosClient   *http.Client
	currencyClient *http.Client
	flightsClient  *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:            cfg,
		citiesClient:   &http.Client{Timeout: citiesTimeout},
		weatherClient:  &http.Client{Timeout: weatherTimeout},
		photosClient:   &http.Client{Timeout: photosTimeout},
		currencyClient: &http.Client{Timeout: currencyTimeout},
		flightsClient:  &http.Client{Timeout: flightsTimeout},
	}
}
