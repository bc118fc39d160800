package tradeoff

import "strings"

// ColumnMapping holds the resolved column index for each semantic field, or
// -1 when the header has no matching column. Scoped to one detected format.
type ColumnMapping struct {
	Ticker int
	Shares int
	Price  int
	Value  int
	Cost   int
}

// headerScanLimit bounds how deep into the file the header row is searched.
// Brokerage exports often lead with account banners and blank-ish rows.
const headerScanLimit = 10

// findHeaderRow scans the first rows for one containing a cell that matches
// any ticker or shares keyword of the profile. It returns the index of the
// first such row, or (0, false) when none matches.
func findHeaderRow(rows [][]string, p FormatProfile) (int, bool) {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	keywords := append(append([]string{}, p.TickerKeywords...), p.SharesKeywords...)
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if matchesAny(cell, keywords) {
				return i, true
			}
		}
	}
	return 0, false
}

// mapColumns resolves each semantic field to the first header cell whose
// lowercase text contains any of the profile's keywords for that field.
func mapColumns(header []string, p FormatProfile) ColumnMapping {
	return ColumnMapping{
		Ticker: findColumn(header, p.TickerKeywords),
		Shares: findColumn(header, p.SharesKeywords),
		Price:  findColumn(header, p.PriceKeywords),
		Value:  findColumn(header, p.ValueKeywords),
		Cost:   findColumn(header, p.CostKeywords),
	}
}

func findColumn(header []string, keywords []string) int {
	for i, cell := range header {
		if matchesAny(cell, keywords) {
			return i
		}
	}
	return -1
}

func matchesAny(cell string, keywords []string) bool {
	lower := strings.ToLower(cell)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
