package travel

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/sefraniabdou1937/backend-az/internal/monitoring"
)

// Photo is one reshaped search result.
type Photo struct {
	ID           string `json:"id"`
	URLSmall     string `json:"url_small"`
	Alt          string `json:"alt"`
	Photographer string `json:"photographer"`
}

// PhotoList is the JSON shape of /api/photos/{city}.
type PhotoList struct {
	Photos []Photo `json:"photos"`
}

type photosUpstreamResponse struct {
	Results []struct {
		ID             string `json:"id"`
		AltDescription string `json:"alt_description"`
		URLs           struct {
			Small string `json:"small"`
		} `json:"urls"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	} `json:"results"`
}

// Photos searches landmark photos for a city. A rejected request surfaces a
// *PhotosError carrying the provider payload; a transport failure yields an
// empty list with a nil error.
func (c *Client) Photos(ctx context.Context, city string) (PhotoList, error) {
	query := url.Values{}
	query.Set("query", city+" city landmark")
	query.Set("per_page", "4")
	query.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.PhotosURL+"?"+query.Encode(), nil)
	if err != nil {
		monitoring.RecordUpstream("photos", true, true)
		return PhotoList{Photos: []Photo{}}, nil
	}
	req.Header.Set("Authorization", "Client-ID "+c.cfg.UnsplashKey)

	resp, err := c.photosClient.Do(req)
	if err != nil {
		log.Printf("Photos upstream failed for %q: %v, serving empty list", city, err)
		monitoring.RecordUpstream("photos", true, true)
		return PhotoList{Photos: []Photo{}}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var details any
		_ = json.NewDecoder(resp.Body).Decode(&details)
		monitoring.RecordUpstream("photos", true, false)
		return PhotoList{}, &PhotosError{Details: details}
	}

	var decoded photosUpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("Photos payload malformed for %q: %v, serving empty list", city, err)
		monitoring.RecordUpstream("photos", true, true)
		return PhotoList{Photos: []Photo{}}, nil
	}

	photos := make([]Photo, 0, len(decoded.Results))
	for _, item := range decoded.Results {
		photos = append(photos, Photo{
			ID:           item.ID,
			URLSmall:     item.URLs.Small,
			Alt:          item.AltDescription,
			Photographer: item.User.Name,
		})
	}

	monitoring.RecordUpstream("photos", false, false)
	return PhotoList{Photos: photos}, nil
}
