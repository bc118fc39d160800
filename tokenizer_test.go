package tradeoff

import (
	"reflect"
	"testing"
)

func TestDetectDelimiter(t *testing.T) {
	cases := []struct {
		line string
		want rune
	}{
		{"Symbol\tShares", '\t'},
		{"Symbol;Shares", ';'},
		{"Symbol,Shares", ','},
		{"Symbol;Shares,Price", ','}, // comma outranks semicolon
		{"Symbol\tShares,Price", '\t'},
		{"no delimiter at all", ','},
	}
	for _, c := range cases {
		if got := detectDelimiter(c.line); got != c.want {
			t.Errorf("detectDelimiter(%q) = %q, want %q", c.line, got, c.want)
		}
	}
}

func TestSplitRowQuoting(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{`NVDA,50,100.5`, []string{"NVDA", "50", "100.5"}},
		{`"Alphabet, Inc.",GOOGL,10`, []string{"Alphabet, Inc.", "GOOGL", "10"}},
		{`"say ""hi""",1`, []string{`say "hi"`, "1"}},
		{`  AAPL , 12 `, []string{"AAPL", "12"}},
		{`a,,b`, []string{"a", "", "b"}},
	}
	for _, c := range cases {
		if got := splitRow(c.line, ','); !reflect.DeepEqual(got, c.want) {
			t.Errorf("splitRow(%q) = %#v, want %#v", c.line, got, c.want)
		}
	}
}

func TestNormalizeRaw(t *testing.T) {
	raw := "\uFEFFSymbol,Shares\r\nNVDA,50\rMSFT,10\n"
	want := "Symbol,Shares\nNVDA,50\nMSFT,10\n"
	if got := normalizeRaw(raw); got != want {
		t.Errorf("normalizeRaw() = %q, want %q", got, want)
	}
}

func TestTokenizeSkipsBlankLines(t *testing.T) {
	rows, delim := tokenize("Symbol,Shares\n\n  \nNVDA,50\n")
	if delim != ',' {
		t.Errorf("delimiter = %q, want ','", delim)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1][0] != "NVDA" {
		t.Errorf("rows[1][0] = %q, want NVDA", rows[1][0])
	}
}
