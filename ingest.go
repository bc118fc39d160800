package tradeoff

import (
	"fmt"
	"strings"
)

// ImportResult is the complete outcome of ingesting one export. Ingestion is
// total: whatever the input looks like, the caller gets a well-formed result
// and inspects Warnings and SkippedRows to decide what to do next.
type ImportResult struct {
	Holdings       []Holding
	DetectedFormat string
	Warnings       []string
	TotalRows      int
	SkippedRows    int
}

// maxShares is the post-validation sanity bound on a single position's share
// count. Above it the row is almost certainly a value column mapped as
// shares.
const maxShares = 10_000_000

// ImportHoldings ingests a raw spreadsheet-style export of stock holdings
// into a canonical holdings list. formatHint forces a catalog profile by
// name; pass "" to auto-detect.
//
// The pipeline: clean raw text, detect the delimiter, tokenize rows, detect
// the brokerage format, locate the header row, map semantic columns by
// keyword, then parse, validate and merge each data row. It never fails:
// malformed rows are skipped and counted, unresolved columns degrade to
// warnings, and wholly unusable input yields an empty holdings list.
func ImportHoldings(raw string, formatHint string) ImportResult {
	var res ImportResult

	raw = normalizeRaw(raw)
	rows, _ := tokenize(raw)
	if len(rows) == 0 {
		res.DetectedFormat = GenericFormat
		res.Warnings = append(res.Warnings, "input is empty or contains no parseable rows")
		return res
	}

	profile := resolveProfile(raw, formatHint, &res)
	res.DetectedFormat = profile.Name

	headerIdx, found := findHeaderRow(rows, profile)
	if !found {
		res.Warnings = append(res.Warnings, "no header row recognized in the first rows; assuming the first row is the header")
	}
	header := rows[headerIdx]

	cols := mapColumns(header, profile)
	if cols.Ticker < 0 {
		res.Warnings = append(res.Warnings, "no ticker/symbol column found; cannot import holdings")
		return res
	}
	if cols.Shares < 0 {
		res.Warnings = append(res.Warnings, "no shares/quantity column found; will try to infer share counts from value and price")
	}

	index := make(map[string]int) // ticker -> position in res.Holdings
	for _, row := range rows[headerIdx+1:] {
		res.TotalRows++
		h, ok := parseRow(row, cols)
		if !ok {
			res.SkippedRows++
			continue
		}
		if i, seen := index[h.Ticker]; seen {
			res.Holdings[i].merge(h)
		} else {
			index[h.Ticker] = len(res.Holdings)
			res.Holdings = append(res.Holdings, h)
		}
	}

	res.Warnings = append(res.Warnings, postValidate(res.Holdings)...)
	return res
}

// resolveProfile applies the explicit hint when there is one, falling back
// to auto-detection (with a warning) when the hint names no catalog entry.
func resolveProfile(raw, formatHint string, res *ImportResult) FormatProfile {
	if formatHint != "" {
		if p, ok := FormatByName(formatHint); ok {
			return p
		}
		res.Warnings = append(res.Warnings, fmt.Sprintf("unknown format %q; auto-detecting instead", formatHint))
	}
	return DetectFormat(raw)
}

// parseRow converts one data row into a Holding. ok is false when the row
// does not describe an importable position.
func parseRow(row []string, cols ColumnMapping) (h Holding, ok bool) {
	h.Ticker = cleanTicker(cellAt(row, cols.Ticker))
	if h.Ticker == "" {
		return Holding{}, false
	}

	price := M(parseNumericCell(cellAt(row, cols.Price), true), "")
	value := M(parseNumericCell(cellAt(row, cols.Value), true), "")
	cost := M(parseNumericCell(cellAt(row, cols.Cost), true), "")

	shares := Quantity{value: parseNumericCell(cellAt(row, cols.Shares), false)}
	switch {
	case shares.IsPositive():
	case value.IsPositive() && price.IsPositive():
		// no usable share count, but value / price recovers it
		shares = value.DivPrice(price)
	default:
		return Holding{}, false
	}
	h.Shares = shares.Round(sharesPrecision)

	// extended fields are opportunistic: only kept when positive
	if price.IsPositive() {
		h.AveragePrice = price
	}
	if value.IsPositive() {
		h.CurrentValue = value
	}
	if cost.IsPositive() {
		h.CostBasis = cost
	}
	h.Currency = rowCurrency(row, cols)
	return h, true
}

// rowCurrency sniffs the currency from the money-bearing cells of the row.
func rowCurrency(row []string, cols ColumnMapping) string {
	for _, idx := range []int{cols.Value, cols.Price, cols.Cost} {
		if c := DetectCurrency(cellAt(row, idx)); c != "" {
			return c
		}
	}
	return ""
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// postValidate flags suspicious but non-fatal conditions on the merged
// holdings list.
func postValidate(holdings []Holding) []string {
	var warnings []string
	seen := make(map[string]bool)
	for _, h := range holdings {
		if h.Shares.GreaterThan(Q(maxShares)) {
			warnings = append(warnings, fmt.Sprintf("%s: share count %s is implausibly large; check the column mapping", h.Ticker, h.Shares))
		}
		if seen[h.Ticker] {
			// unreachable through ImportHoldings, which merges duplicates;
			// kept as an integrity check for holdings lists built elsewhere
			warnings = append(warnings, fmt.Sprintf("duplicate ticker %s in merged holdings", h.Ticker))
		}
		seen[h.Ticker] = true
	}
	return warnings
}

// HoldingsCSV renders holdings in the canonical two-column form that
// re-ingests to an identical list.
func HoldingsCSV(holdings []Holding) string {
	var b strings.Builder
	b.WriteString("Symbol,Shares\n")
	for _, h := range holdings {
		fmt.Fprintf(&b, "%s,%s\n", h.Ticker, h.Shares)
	}
	return b.String()
}
