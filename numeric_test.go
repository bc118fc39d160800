package tradeoff

import "testing"

func TestParseNumericCell(t *testing.T) {
	cases := []struct {
		cell         string
		allowPercent bool
		want         float64
	}{
		{"123", false, 123},
		{"1,234.56", false, 1234.56},
		{"$1,234.56", false, 1234.56},
		{"€500", false, 500},
		{"£42.10", false, 42.10},
		{"(500.00)", false, -500},
		{"($1,000)", false, -1000},
		{"1 234", false, 1234},
		{"-5", false, -5},
		{"", false, 0},
		{"n/a", false, 0},
		{"--", false, 0},
		// percent notation only applies to price-like fields
		{"3.5%", true, 0.035},
		{"3.5%", false, 3.5},
		{"100%", true, 1},
	}
	for _, c := range cases {
		got := parseNumericCell(c.cell, c.allowPercent)
		if !got.Equal(newDecimal(c.want)) {
			t.Errorf("parseNumericCell(%q, %v) = %s, want %v", c.cell, c.allowPercent, got, c.want)
		}
	}
}

func TestDetectCurrency(t *testing.T) {
	cases := []struct {
		cell string
		want string
	}{
		{"$1,234.56", "USD"},
		{"€500", "EUR"},
		{"£42", "GBP"},
		{"¥9000", "JPY"},
		{"1000 EUR", "EUR"},
		{"1234.56", ""},
	}
	for _, c := range cases {
		if got := DetectCurrency(c.cell); got != c.want {
			t.Errorf("DetectCurrency(%q) = %q, want %q", c.cell, got, c.want)
		}
	}
}
