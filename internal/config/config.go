package config

import (
	"log"
	"os"
	"strings"
)

const (
	defaultPort        = "8080"
	defaultStaticDir   = "./static"
	defaultGeminiModel = "gemini-2.5-flash"

	defaultCitiesURL   = "https://countriesnow.space/api/v0.1/countries/cities"
	defaultWeatherURL  = "http://api.openweathermap.org/data/2.5/weather"
	defaultPhotosURL   = "https://api.unsplash.com/search/photos"
	defaultCurrencyURL = "https://v6.exchangerate-api.com/v6"
	defaultFlightsURL  = "http://api.aviationstack.com/v1/flights"
	defaultGeminiURL   = "https://generativelanguage.googleapis.com"
)

// Config carries everything the server needs at startup. Provider keys are
// injected into the clients that use them; nothing reads them from globals
// after Load returns.
type Config struct {
	Port      string
	StaticDir string

	OpenWeatherKey   string
	UnsplashKey      string
	ExchangeRateKey  string
	AviationStackKey string
	GeminiKey        string
	GeminiModel      string

	CitiesURL   string
	WeatherURL  string
	PhotosURL   string
	CurrencyURL string
	FlightsURL  string
	GeminiURL   string
}

// Load reads the configuration from environment variables. Provider keys may
// be empty; the affected endpoints then serve their fallback values.
func Load() Config {
	cfg := Config{
		Port:      getEnvOrDefault("PORT", defaultPort),
		StaticDir: getEnvOrDefault("STATIC_DIR", defaultStaticDir),

		OpenWeatherKey:   strings.TrimSpace(os.Getenv("OPENWEATHER_API_KEY")),
		UnsplashKey:      strings.TrimSpace(os.Getenv("UNSPLASH_API_KEY")),
		ExchangeRateKey:  strings.TrimSpace(os.Getenv("EXCHANGERATE_API_KEY")),
		AviationStackKey: strings.TrimSpace(os.Getenv("AVIATIONSTACK_API_KEY")),
		GeminiKey:        strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:      getEnvOrDefault("GEMINI_MODEL", defaultGeminiModel),

		CitiesURL:   getEnvOrDefault("CITIES_API_URL", defaultCitiesURL),
		WeatherURL:  getEnvOrDefault("WEATHER_API_URL", defaultWeatherURL),
		PhotosURL:   getEnvOrDefault("PHOTOS_API_URL", defaultPhotosURL),
		CurrencyURL: getEnvOrDefault("CURRENCY_API_URL", defaultCurrencyURL),
		FlightsURL:  getEnvOrDefault("FLIGHTS_API_URL", defaultFlightsURL),
		GeminiURL:   getEnvOrDefault("GEMINI_API_URL", defaultGeminiURL),
	}

	for _, key := range []struct {
		name  string
		value string
	}{
		{"OPENWEATHER_API_KEY", cfg.OpenWeatherKey},
		{"UNSPLASH_API_KEY", cfg.UnsplashKey},
		{"EXCHANGERATE_API_KEY", cfg.ExchangeRateKey},
		{"AVIATIONSTACK_API_KEY", cfg.AviationStackKey},
		{"GEMINI_API_KEY", cfg.GeminiKey},
	} {
		if key.value == "" {
			log.Printf("WARNING: %s not set, the matching endpoint will serve fallback data", key.name)
		}
	}

	return cfg
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}
