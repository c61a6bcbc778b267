package travel

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/sefraniabdou1937/backend-az/internal/monitoring"
)

// CityList is the JSON shape of /api/cities/{country}.
type CityList struct {
	Cities []string `json:"cities"`
}

type citiesUpstreamResponse struct {
	Error bool     `json:"error"`
	Msg   string   `json:"msg"`
	Data  []string `json:"data"`
}

// Cities returns the cities of a country. The country name is normalized
// first; on any upstream failure the fixed fallback list is served instead.
func (c *Client) Cities(ctx context.Context, country string) CityList {
	name := NormalizeCountry(country)

	cities, err := c.fetchCities(ctx, name)
	if err != nil {
		log.Printf("Cities upstream failed for %q: %v, serving fallback", name, err)
		monitoring.RecordUpstream("cities", true, true)
		return CityList{Cities: FallbackCities(name)}
	}

	monitoring.RecordUpstream("cities", false, false)
	return CityList{Cities: cities}
}

func (c *Client) fetchCities(ctx context.Context, country string) ([]string, error) {
	payload, err := json.Marshal(map[string]string{"country": country})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.CitiesURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.citiesClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var decoded citiesUpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK || decoded.Error {
		return nil, &statusError{status: resp.StatusCode, msg: decoded.Msg}
	}
	if decoded.Data == nil {
		decoded.Data = []string{}
	}
	return decoded.Data, nil
}
