package travel

import "sort"

// Country is one entry of the static country catalogue.
type Country struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Code     string `json:"code"`
}

var countryCatalogue = []Country{
	{Name: "Morocco", Currency: "MAD", Code: "MA"},
	{Name: "France", Currency: "EUR", Code: "FR"},
	{Name: "United States", Currency: "USD", Code: "US"},
	{Name: "Spain", Currency: "EUR", Code: "ES"},
	{Name: "Italy", Currency: "EUR", Code: "IT"},
	{Name: "United Kingdom", Currency: "GBP", Code: "GB"},
	{Name: "Germany", Currency: "EUR", Code: "DE"},
	{Name: "Japan", Currency: "JPY", Code: "JP"},
	{Name: "Canada", Currency: "CAD", Code: "CA"},
	{Name: "United Arab Emirates", Currency: "AED", Code: "AE"},
	{Name: "Saudi Arabia", Currency: "SAR", Code: "SA"},
	{Name: "Turkey", Currency: "TRY", Code: "TR"},
	{Name: "China", Currency: "CNY", Code: "CN"},
	{Name: "Brazil", Currency: "BRL", Code: "BR"},
	{Name: "Portugal", Currency: "EUR", Code: "PT"},
}

// Countries returns the supported countries sorted by name. The list is
// served locally; no provider is called.
func (c *Client) Countries() []Country {
	out := make([]Country, len(countryCatalogue))
	copy(out, countryCatalogue)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
