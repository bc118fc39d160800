package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReportOffline(t *testing.T) {
	csv := "Symbol,Quantity,Price,Market Value\n" +
		"NVDA,75,800.00,60000.00\n" +
		"MSFT,50,400.00,20000.00\n" +
		"KO,100,60.00,6000.00\n"
	file := filepath.Join(t.TempDir(), "positions.csv")
	if err := os.WriteFile(file, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	rep, _, err := loadReport(file, "", true)
	if err != nil {
		t.Fatalf("loadReport: %v", err)
	}
	if got := len(rep.Snapshot.Positions); got != 3 {
		t.Errorf("positions = %d, want 3", got)
	}
	if rep.Snapshot.TotalValue != 86000 {
		t.Errorf("total value = %v, want 86000", rep.Snapshot.TotalValue)
	}
	if len(rep.Alerts) == 0 {
		t.Error("expected at least one alert for a NVDA-heavy portfolio")
	}
}

func TestLoadReportMissingFile(t *testing.T) {
	if _, _, err := loadReport(filepath.Join(t.TempDir(), "nope.csv"), "", true); err == nil {
		t.Error("expected an error for a missing file")
	}
}
