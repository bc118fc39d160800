package eodhd

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/pauligwe/tradeoff"
)

const baseURL = "https://eodhd.com/api"

// defaultExchange is appended to bare US tickers; EODHD accepts ".US" for
// all US-listed symbols regardless of the actual venue.
const defaultExchange = "US"

// Enricher resolves market data for tickers. The zero value is not usable;
// construct with New.
type Enricher struct {
	apiKey string
	base   string

	// cached and live split so fundamentals (daily cache) and quotes (no
	// cache) use different transports.
	cached *http.Client
	live   *http.Client
}

// New returns an Enricher using the given EODHD API key.
func New(apiKey string) *Enricher {
	return &Enricher{apiKey: apiKey, base: baseURL, cached: daily(), live: new(http.Client)}
}

// Fundamentals is the slice of the EODHD fundamentals payload the enricher
// cares about.
type Fundamentals struct {
	Name     string
	Sector   string
	Industry string
}

// Fundamentals fetches name, sector and industry for a ticker. The payload
// is a deeply nested document; jsonpath keeps the extraction to three
// expressions instead of a tower of struct types.
func (e *Enricher) Fundamentals(ticker string) (Fundamentals, error) {
	addr := fmt.Sprintf("%s/fundamentals/%s.%s?fmt=json&api_token=%s", e.base, ticker, defaultExchange, e.apiKey)
	var doc any
	if err := e.jwgetCached(addr, &doc); err != nil {
		return Fundamentals{}, fmt.Errorf("fetching fundamentals for %s: %w", ticker, err)
	}

	return Fundamentals{
		Name:     jstring(doc, "$.General.Name"),
		Sector:   jstring(doc, "$.General.Sector"),
		Industry: jstring(doc, "$.General.Industry"),
	}, nil
}

// RealTimePrice fetches the latest trade price for a ticker.
func (e *Enricher) RealTimePrice(ticker string) (float64, error) {
	addr := fmt.Sprintf("%s/real-time/%s.%s?fmt=json&api_token=%s", e.base, ticker, defaultExchange, e.apiKey)
	var doc struct {
		Close float64 `json:"close"`
	}
	if err := jwget(e.live, addr, &doc); err != nil {
		return 0, fmt.Errorf("fetching price for %s: %w", ticker, err)
	}
	if doc.Close <= 0 {
		return 0, fmt.Errorf("no usable price for %s", ticker)
	}
	return doc.Close, nil
}

func (e *Enricher) jwgetCached(addr string, data any) error {
	return jwget(e.cached, addr, data)
}

// jstring evaluates a jsonpath expression against doc and returns the
// string it finds, or "" when the path is absent or not a string.
func jstring(doc any, path string) string {
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return ""
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if a list.
	if list, ok := val.([]any); ok && len(list) > 0 {
		val = list[0]
	}
	s, _ := val.(string)
	return s
}

// Enrich converts ingested holdings into analysis positions, filling in
// market data per ticker. Failures degrade per ticker: a holding whose
// fundamentals cannot be fetched keeps an unknown sector, and one whose
// price cannot be fetched falls back to the value or price carried by the
// export itself. Holdings that end up with no value at all are dropped, and
// every degradation is reported in warnings.
func (e *Enricher) Enrich(holdings []tradeoff.Holding) (positions []tradeoff.Position, warnings []string) {
	for _, h := range holdings {
		p := tradeoff.Position{
			Ticker: h.Ticker,
			Name:   h.Ticker,
			Sector: tradeoff.UnknownSector,
			Shares: h.Shares.AsFloat(),
		}

		if f, err := e.Fundamentals(h.Ticker); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", h.Ticker, err))
		} else {
			if f.Name != "" {
				p.Name = f.Name
			}
			if f.Sector != "" {
				p.Sector = f.Sector
			}
			p.Industry = f.Industry
		}

		if price, err := e.RealTimePrice(h.Ticker); err == nil {
			p.Value = price * p.Shares
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: %v; using export values", h.Ticker, err))
			switch {
			case !h.CurrentValue.IsZero():
				p.Value = h.CurrentValue.AsFloat()
			case !h.AveragePrice.IsZero():
				p.Value = h.AveragePrice.Mul(h.Shares).AsFloat()
			}
		}

		if p.Value <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s: no way to value the position; dropped", h.Ticker))
			continue
		}
		positions = append(positions, p)
	}
	return positions, warnings
}
