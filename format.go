package tradeoff

import "strings"

// FormatProfile describes one brokerage export shape: the substrings that
// identify it in raw content and, per semantic field, the keywords that
// locate its column in the header row. All matching is case-insensitive
// substring matching.
type FormatProfile struct {
	Name string

	// DetectPatterns identify the format in raw content. Empty for the
	// generic fallback, which is never a detection target.
	DetectPatterns []string

	TickerKeywords []string
	SharesKeywords []string
	PriceKeywords  []string
	ValueKeywords  []string
	CostKeywords   []string
}

// GenericFormat is the name of the fallback profile used when no catalog
// entry matches.
const GenericFormat = "generic"

// Formats is the format catalog. Order matters: detection tests profiles in
// this order and the first match wins, which is what disambiguates profiles
// whose keywords overlap (several formats name a column "price"). Reordering
// entries is a behavior change.
var Formats = []FormatProfile{
	{
		Name:           "schwab",
		DetectPatterns: []string{"schwab", "account total"},
		TickerKeywords: []string{"symbol"},
		SharesKeywords: []string{"quantity", "qty"},
		PriceKeywords:  []string{"price"},
		ValueKeywords:  []string{"market value", "mkt val"},
		CostKeywords:   []string{"cost basis"},
	},
	{
		Name:           "fidelity",
		DetectPatterns: []string{"fidelity", "last price change"},
		TickerKeywords: []string{"symbol"},
		SharesKeywords: []string{"quantity"},
		PriceKeywords:  []string{"last price"},
		ValueKeywords:  []string{"current value"},
		CostKeywords:   []string{"cost basis total", "cost basis"},
	},
	{
		Name:           "vanguard",
		DetectPatterns: []string{"vanguard", "investment name"},
		TickerKeywords: []string{"symbol", "ticker"},
		SharesKeywords: []string{"shares"},
		PriceKeywords:  []string{"share price", "price"},
		ValueKeywords:  []string{"total value", "value"},
		CostKeywords:   []string{"total cost"},
	},
	{
		Name:           "robinhood",
		DetectPatterns: []string{"robinhood"},
		TickerKeywords: []string{"instrument", "symbol"},
		SharesKeywords: []string{"quantity"},
		PriceKeywords:  []string{"average buy price", "price"},
		ValueKeywords:  []string{"equity", "value"},
		CostKeywords:   []string{"average cost"},
	},
	{
		Name:           "etrade",
		DetectPatterns: []string{"etrade", "e*trade", "portfolio download"},
		TickerKeywords: []string{"symbol"},
		SharesKeywords: []string{"quantity", "qty #"},
		PriceKeywords:  []string{"last price"},
		ValueKeywords:  []string{"market value", "value"},
		CostKeywords:   []string{"price paid", "total cost"},
	},
	{
		Name:           "merrill",
		DetectPatterns: []string{"merrill", "cusip"},
		TickerKeywords: []string{"symbol"},
		SharesKeywords: []string{"quantity"},
		PriceKeywords:  []string{"price", "unit cost"},
		ValueKeywords:  []string{"value"},
		CostKeywords:   []string{"cost basis"},
	},
	{
		Name:           "webull",
		DetectPatterns: []string{"webull"},
		TickerKeywords: []string{"symbol"},
		SharesKeywords: []string{"quantity", "position"},
		PriceKeywords:  []string{"avg price", "cost price"},
		ValueKeywords:  []string{"market value"},
		CostKeywords:   []string{"total cost"},
	},
	{
		Name:           GenericFormat,
		TickerKeywords: []string{"symbol", "ticker"},
		SharesKeywords: []string{"shares", "quantity", "qty"},
		PriceKeywords:  []string{"price", "avg cost", "average cost"},
		ValueKeywords:  []string{"market value", "value", "amount"},
		CostKeywords:   []string{"cost basis", "total cost", "cost"},
	},
}

// DetectFormat matches raw content against the catalog in declaration order
// and returns the first profile with a matching detection pattern, falling
// back to the generic profile.
func DetectFormat(raw string) FormatProfile {
	lower := strings.ToLower(raw)
	for _, p := range Formats {
		for _, pattern := range p.DetectPatterns {
			if strings.Contains(lower, pattern) {
				return p
			}
		}
	}
	return mustFormat(GenericFormat)
}

// FormatByName looks up a profile by its catalog name.
func FormatByName(name string) (FormatProfile, bool) {
	for _, p := range Formats {
		if p.Name == name {
			return p, true
		}
	}
	return FormatProfile{}, false
}

func mustFormat(name string) FormatProfile {
	p, ok := FormatByName(name)
	if !ok {
		panic("unknown format profile: " + name)
	}
	return p
}
