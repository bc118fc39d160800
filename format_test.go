package tradeoff

import "testing"

func TestDetectFormatSchwab(t *testing.T) {
	raw := "Positions for account Schwab One ...\nSymbol,Quantity,Price\nAAPL,10,190\nAccount Total,,\n"
	if got := DetectFormat(raw).Name; got != "schwab" {
		t.Errorf("DetectFormat() = %q, want schwab", got)
	}
}

func TestDetectFormatFallsBackToGeneric(t *testing.T) {
	raw := "Symbol,Shares\nNVDA,50\n"
	if got := DetectFormat(raw).Name; got != GenericFormat {
		t.Errorf("DetectFormat() = %q, want %q", got, GenericFormat)
	}
}

// Detection precedence is the catalog declaration order: when content could
// match several profiles, the earliest one wins.
func TestDetectFormatPrecedence(t *testing.T) {
	raw := "exported from vanguard via fidelity bridge\nSymbol,Shares\n"
	if got := DetectFormat(raw).Name; got != "fidelity" {
		t.Errorf("DetectFormat() = %q, want fidelity (catalog order)", got)
	}
}

func TestGenericIsNeverADetectionTarget(t *testing.T) {
	for _, p := range Formats {
		if p.Name == GenericFormat && len(p.DetectPatterns) != 0 {
			t.Errorf("generic profile must have no detection patterns, got %v", p.DetectPatterns)
		}
	}
}

func TestFormatCatalogOrder(t *testing.T) {
	want := []string{"schwab", "fidelity", "vanguard", "robinhood", "etrade", "merrill", "webull", GenericFormat}
	if len(Formats) != len(want) {
		t.Fatalf("catalog has %d profiles, want %d", len(Formats), len(want))
	}
	for i, name := range want {
		if Formats[i].Name != name {
			t.Errorf("Formats[%d] = %q, want %q", i, Formats[i].Name, name)
		}
	}
}

func TestFormatByName(t *testing.T) {
	if _, ok := FormatByName("schwab"); !ok {
		t.Error("FormatByName(schwab) not found")
	}
	if _, ok := FormatByName("nope"); ok {
		t.Error("FormatByName(nope) unexpectedly found")
	}
}
