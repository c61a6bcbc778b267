package travel

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/sefraniabdou1937/backend-az/internal/monitoring"
)

// All flight searches depart from Casablanca.
const departureIATA = "CMN"

// cityToIATA maps free-text destinations to arrival airport codes. Read-only
// after startup.
var cityToIATA = map[string]string{
	"casablanca": "CMN", "rabat": "RBA", "marrakech": "RAK", "fès": "FEZ",
	"tanger": "TNG", "agadir": "AGA", "paris": "CDG", "marseille": "MRS",
	"lyon": "LYS", "bordeaux": "BOD", "nice": "NCE", "new york": "JFK",
	"los angeles": "LAX", "chicago": "ORD", "miami": "MIA", "madrid": "MAD",
	"barcelone": "BCN", "seville": "SVQ", "valencia": "VLC", "dubai": "DXB",
	"londres": "LHR", "rome": "FCO", "istanbul": "IST", "tokyo": "HND",
}

// Flight is the JSON shape of a successful /api/flights lookup.
type Flight struct {
	Price         string `json:"price"`
	Duration      string `json:"duration"`
	Stops         int    `json:"stops"`
	DepartureDate string `json:"departure_date"`
	AirlineName   string `json:"airline_name"`
	Link          string `json:"link"`
}

type flightsUpstreamResponse struct {
	Data []struct {
		FlightDate string `json:"flight_date"`
		Airline    struct {
			Name string `json:"name"`
		} `json:"airline"`
		Flight struct {
			Codeshared json.RawMessage `json:"codeshared"`
		} `json:"flight"`
	} `json:"data"`
}

// Flights looks up the best match to a destination. An unmapped destination
// fails before any upstream call; an empty result or a transport failure
// surfaces an error rather than a fabricated flight.
func (c *Client) Flights(ctx context.Context, destination, departureDate string) (Flight, error) {
	iata, ok := cityToIATA[strings.ToLower(destination)]
	if !ok {
		return Flight{}, &UnknownAirportError{Destination: destination}
	}

	query := url.Values{}
	query.Set("access_key", c.cfg.AviationStackKey)
	query.Set("dep_iata", departureIATA)
	query.Set("arr_iata", iata)
	if departureDate != "" {
		query.Set("flight_date", departureDate)
	}
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.FlightsURL+"?"+query.Encode(), nil)
	if err != nil {
		monitoring.RecordUpstream("flights", true, false)
		return Flight{}, ErrFlightService
	}

	resp, err := c.flightsClient.Do(req)
	if err != nil {
		log.Printf("Flights upstream failed for %q: %v", destination, err)
		monitoring.RecordUpstream("flights", true, false)
		return Flight{}, ErrFlightService
	}
	defer resp.Body.Close()

	var decoded flightsUpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		monitoring.RecordUpstream("flights", true, false)
		return Flight{}, ErrFlightService
	}

	if len(decoded.Data) == 0 {
		monitoring.RecordUpstream("flights", true, false)
		return Flight{}, ErrNoFlights
	}

	best := decoded.Data[0]
	duration := "Direct"
	if !isJSONNull(best.Flight.Codeshared) {
		duration = "Escale"
	}

	monitoring.RecordUpstream("flights", false, false)
	return Flight{
		Price:         "N/A",
		Duration:      duration,
		Stops:         0,
		DepartureDate: best.FlightDate,
		AirlineName:   best.Airline.Name,
		Link:          "https://www.google.com/flights?q=Vols+de+" + departureIATA + "+a+" + iata,
	}, nil
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}
