package tradeoff

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// This file contains the numeric cell parser shared by every mapped column.
// Export cells are written for humans: "$1,234.56", "(500.00)", "1 234,5",
// "3.25%". The parser is total: anything it cannot understand is zero.

// currencySymbols maps display symbols to ISO currency codes. Built from the
// go-money currency table so symbol stripping and currency detection stay in
// sync with real formatting rules.
var currencySymbols = func() map[string]string {
	symbols := make(map[string]string)
	// prefer the earlier code when two currencies share a grapheme, so USD
	// wins "$" over AUD or CAD.
	for _, code := range []string{
		money.USD, money.EUR, money.GBP, money.JPY,
		money.CHF, money.CAD, money.AUD, money.INR,
	} {
		grapheme := money.New(0, code).Currency().Grapheme
		if _, taken := symbols[grapheme]; !taken {
			symbols[grapheme] = code
		}
	}
	return symbols
}()

// DetectCurrency returns the ISO code of the first known currency symbol or
// code found in the cell, or "" if none.
func DetectCurrency(cell string) string {
	for symbol, code := range currencySymbols {
		if strings.Contains(cell, symbol) {
			return code
		}
	}
	upper := strings.ToUpper(cell)
	for _, code := range []string{money.USD, money.EUR, money.GBP, money.JPY} {
		if strings.Contains(upper, code) {
			return code
		}
	}
	return ""
}

// parseNumericCell parses one spreadsheet cell into an exact decimal.
//
// Rules, in order: surrounding whitespace and currency symbols are stripped;
// thousands separators (commas) and inner spaces are stripped; a value
// wrapped in parentheses is negated; a trailing '%' divides by 100 when
// 'allowPercent' is set (percent notation only makes sense for price-like
// and weight-like fields, a share count ending in '%' is treated as a plain
// number). A cell that still does not parse yields zero.
func parseNumericCell(cell string, allowPercent bool) decimal.Decimal {
	s := strings.TrimSpace(cell)
	if s == "" {
		return decimal.Zero
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	percent := false
	if strings.HasSuffix(s, "%") {
		percent = allowPercent
		s = strings.TrimSuffix(s, "%")
	}

	for symbol := range currencySymbols {
		s = strings.ReplaceAll(s, symbol, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSpace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		d = d.Neg()
	}
	if percent {
		d = d.Div(decimal.NewFromInt(100))
	}
	return d
}
