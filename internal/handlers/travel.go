package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sefraniabdou1937/backend-az/internal/travel"
)

// TravelHandler exposes the travel-data aggregator over HTTP. Failures below
// it never become HTTP errors: the client either substituted fallback data
// already or returned a structured error value rendered inside a 200 body.
type TravelHandler struct {
	Travel *travel.Client
}

func NewTravelHandler(client *travel.Client) *TravelHandler {
	return &TravelHandler{Travel: client}
}

// GetCountries serves the static country catalogue.
func (h *TravelHandler) GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, h.Travel.Countries())
}

// GetCities serves the city list of a country.
func (h *TravelHandler) GetCities(c *gin.Context) {
	c.JSON(http.StatusOK, h.Travel.Cities(c.Request.Context(), c.Param("country")))
}

// GetWeather serves the current reading, or a simulated one when a date is
// supplied.
func (h *TravelHandler) GetWeather(c *gin.Context) {
	city := c.Param("city")

	if date := c.Query("date"); date != "" {
		c.JSON(http.StatusOK, h.Travel.SimulatedWeather(city, date))
		return
	}

	weather, err := h.Travel.CurrentWeather(c.Request.Context(), city)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, weather)
}

// GetForecast serves the five-day synthetic forecast.
func (h *TravelHandler) GetForecast(c *gin.Context) {
	c.JSON(http.StatusOK, h.Travel.Forecast(c.Param("city"), c.Query("start_date")))
}

// GetPhotos serves landmark photos of a city.
func (h *TravelHandler) GetPhotos(c *gin.Context) {
	photos, err := h.Travel.Photos(c.Request.Context(), c.Param("city"))
	if err != nil {
		var photosErr *travel.PhotosError
		if errors.As(err, &photosErr) {
			c.JSON(http.StatusOK, gin.H{"error": photosErr.Error(), "details": photosErr.Details})
			return
		}
		c.JSON(http.StatusOK, travel.PhotoList{Photos: []travel.Photo{}})
		return
	}
	c.JSON(http.StatusOK, photos)
}

// GetVisaStatus serves the visa category of a country.
func (h *TravelHandler) GetVisaStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.Travel.VisaStatus(c.Param("country")))
}

// GetCurrencyRate serves an exchange rate, or a structured error when the
// rate cannot be determined.
func (h *TravelHandler) GetCurrencyRate(c *gin.Context) {
	rate, err := h.Travel.CurrencyRate(c.Request.Context(), c.Param("base"), c.Param("target"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rate)
}

// GetFlights serves the best flight match, or a structured error.
func (h *TravelHandler) GetFlights(c *gin.Context) {
	flight, err := h.Travel.Flights(c.Request.Context(), c.Param("destination"), c.Query("departure_date"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}
