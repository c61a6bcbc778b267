package travel

import "strings"

// Visa is the JSON shape of /api/visa/{country}.
type Visa struct {
	Status  string `json:"status"`
	Details string `json:"details"`
	Color   string `json:"color"`
}

// VisaStatus resolves a country name to a visa category by substring match.
// This rule table is the primary source; there is no upstream provider for
// visa data.
func (c *Client) VisaStatus(country string) Visa {
	name := strings.ToLower(country)

	switch {
	case strings.Contains(name, "morocco") || strings.Contains(name, "maroc"):
		return Visa{Status: "Home", Details: "Bienvenue", Color: "blue.500"}
	case strings.Contains(name, "france") || strings.Contains(name, "spain"):
		return Visa{Status: "Visa-Free", Details: "90 Jours", Color: "green.500"}
	case strings.Contains(name, "united states") || strings.Contains(name, "usa"):
		return Visa{Status: "Required", Details: "Visa B1/B2", Color: "red.500"}
	default:
		return Visa{Status: "Info Manquante", Details: "Vérifiez ambassade", Color: "yellow.500"}
	}
}
