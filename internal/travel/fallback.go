package travel

import "strings"

// Static substitute data served when a provider is unreachable. Read-only
// after startup, safe for concurrent reads.

var fallbackCityLists = map[string][]string{
	"Morocco":       {"Casablanca", "Rabat", "Marrakech", "Fes", "Tangier", "Agadir", "Chefchaouen", "Essaouira"},
	"France":        {"Paris", "Marseille", "Lyon", "Nice", "Bordeaux", "Toulouse", "Strasbourg"},
	"Spain":         {"Madrid", "Barcelona", "Seville", "Valencia", "Granada"},
	"United States": {"New York", "Los Angeles", "Chicago", "Miami", "San Francisco", "Las Vegas"},
}

// FallbackCities returns the fixed city list for a country, or an empty list
// for countries without one. Pure; usable without network access.
func FallbackCities(country string) []string {
	if cities, ok := fallbackCityLists[country]; ok {
		out := make([]string, len(cities))
		copy(out, cities)
		return out
	}
	return []string{}
}

// NormalizeCountry maps free-text country input to the catalogue spelling:
// hyphens become spaces, each word is capitalized and known aliases are
// resolved.
func NormalizeCountry(raw string) string {
	name := titleCase(strings.ReplaceAll(raw, "-", " "))

	switch strings.ToLower(name) {
	case "usa", "united states of america", "united states":
		return "United States"
	case "uk", "united kingdom":
		return "United Kingdom"
	}
	return name
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
