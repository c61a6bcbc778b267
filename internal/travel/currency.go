package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/sefraniabdou1937/backend-az/internal/monitoring"
)

// Rate is the JSON shape of a successful /api/currency/rate lookup.
type Rate struct {
	Base   string  `json:"base"`
	Target string  `json:"target"`
	Rate   float64 `json:"rate"`
}

type currencyUpstreamResponse struct {
	Result         string  `json:"result"`
	ConversionRate float64 `json:"conversion_rate"`
}

// CurrencyRate converts base to target. An identical pair short-circuits to
// 1.0 without any call. Unlike the display-only kinds there is no substitute
// value here: a failed lookup surfaces an error so the caller never sees a
// fabricated exchange rate.
func (c *Client) CurrencyRate(ctx context.Context, base, target string) (Rate, error) {
	if strings.EqualFold(base, target) {
		return Rate{Base: base, Target: target, Rate: 1.0}, nil
	}

	endpoint := fmt.Sprintf("%s/%s/pair/%s/%s", c.cfg.CurrencyURL, c.cfg.ExchangeRateKey, base, target)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		monitoring.RecordUpstream("currency", true, false)
		return Rate{}, ErrRateService
	}

	resp, err := c.currencyClient.Do(req)
	if err != nil {
		log.Printf("Currency upstream failed for %s/%s: %v", base, target, err)
		monitoring.RecordUpstream("currency", true, false)
		return Rate{}, ErrRateService
	}
	defer resp.Body.Close()

	var decoded currencyUpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		monitoring.RecordUpstream("currency", true, false)
		return Rate{}, ErrRateService
	}

	if resp.StatusCode != http.StatusOK || decoded.Result != "success" {
		monitoring.RecordUpstream("currency", true, false)
		return Rate{}, ErrRateLookup
	}

	monitoring.RecordUpstream("currency", false, false)
	return Rate{Base: base, Target: target, Rate: decoded.ConversionRate}, nil
}
