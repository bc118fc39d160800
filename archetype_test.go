package tradeoff

import (
	"reflect"
	"testing"
)

// Scenario from the rubric: 3 (sector) + 1 (top holding) + 2 (count) + 0
// (tech) = 6 points means aggressive at confidence min(90, 65+18) = 83.
func TestClassifyAggressiveScenario(t *testing.T) {
	got := Classify(Metrics{SectorConcentration: 75, TopHoldingWeight: 18, NumHoldings: 6, TechExposure: 10})
	if got.Profile != ProfileAggressive {
		t.Errorf("profile = %s, want aggressive", got.Profile)
	}
	if got.Confidence != 83 {
		t.Errorf("confidence = %d, want 83", got.Confidence)
	}
	wantWarning := "heavily concentrated in one sector"
	found := false
	for _, w := range got.Warnings {
		if w == wantWarning {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want %q present", got.Warnings, wantWarning)
	}
}

func TestClassifyTiers(t *testing.T) {
	cases := []struct {
		name           string
		m              Metrics
		wantProfile    Profile
		wantConfidence int
	}{
		// 4+3+3+2 = 12 points, the rubric maximum: min(95, 70+24) = 94,
		// so the 95 cap is never reached in practice
		{"all-in single stock", Metrics{SectorConcentration: 90, TopHoldingWeight: 80, NumHoldings: 2, TechExposure: 80}, ProfileSpeculative, 94},
		// 2+1+0+0 = 3 points, moderate at 60+15
		{"mildly concentrated", Metrics{SectorConcentration: 40, TopHoldingWeight: 25, NumHoldings: 20, TechExposure: 10}, ProfileModerate, 75},
		// 0 points, conservative at min(90, 75+15)
		{"broad and flat", Metrics{SectorConcentration: 20, TopHoldingWeight: 5, NumHoldings: 30, TechExposure: 10}, ProfileConservative, 90},
		// 1 point, conservative at 75+10
		{"nearly flat", Metrics{SectorConcentration: 20, TopHoldingWeight: 13, NumHoldings: 30, TechExposure: 10}, ProfileConservative, 85},
	}
	for _, c := range cases {
		got := Classify(c.m)
		if got.Profile != c.wantProfile || got.Confidence != c.wantConfidence {
			t.Errorf("%s: got %s/%d, want %s/%d", c.name, got.Profile, got.Confidence, c.wantProfile, c.wantConfidence)
		}
	}
}

func TestClassifyRubricBoundaries(t *testing.T) {
	// rubric checks use strict 'greater than': landing exactly on a
	// boundary scores the lower bracket
	at := Classify(Metrics{SectorConcentration: 70, TopHoldingWeight: 50, NumHoldings: 12, TechExposure: 60})
	above := Classify(Metrics{SectorConcentration: 70.1, TopHoldingWeight: 50.1, NumHoldings: 11, TechExposure: 60.1})
	if len(at.Warnings) != 1 { // only "high single-stock concentration" (50 > 30)
		t.Errorf("at-boundary warnings = %v, want exactly the single-stock one", at.Warnings)
	}
	if len(above.Warnings) != 3 {
		t.Errorf("above-boundary warnings = %v, want three", above.Warnings)
	}
}

func TestClassifyDeterminism(t *testing.T) {
	m := Metrics{SectorConcentration: 66, TopHoldingWeight: 18, NumHoldings: 8, TechExposure: 66}
	first := Classify(m)
	for i := 0; i < 10; i++ {
		if got := Classify(m); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: %+v != %+v", i, got, first)
		}
	}
}

func TestSimilarArchetypes(t *testing.T) {
	// metrics equal to the tech-growth archetype's: it must be similar
	m := Metrics{SectorConcentration: 66, TopHoldingWeight: 18, NumHoldings: 8, TechExposure: 66}
	similar := similarArchetypes(m)
	found := false
	for _, id := range similar {
		if id == "tech-growth" {
			found = true
		}
	}
	if !found {
		t.Errorf("similarArchetypes(%+v) = %v, want tech-growth included", m, similar)
	}
	if len(similar) > maxSimilar {
		t.Errorf("got %d similar archetypes, cap is %d", len(similar), maxSimilar)
	}
}

func TestSimilarArchetypesWindows(t *testing.T) {
	base := Archetypes[0].Metrics
	// push one metric just outside each window
	outside := []Metrics{
		{SectorConcentration: base.SectorConcentration + similarSectorWindow, TopHoldingWeight: base.TopHoldingWeight, NumHoldings: base.NumHoldings},
		{SectorConcentration: base.SectorConcentration, TopHoldingWeight: base.TopHoldingWeight + similarTopWindow, NumHoldings: base.NumHoldings},
		{SectorConcentration: base.SectorConcentration, TopHoldingWeight: base.TopHoldingWeight, NumHoldings: base.NumHoldings + similarCountWindow},
	}
	for i, m := range outside {
		for _, id := range similarArchetypes(m) {
			if id == Archetypes[0].ID {
				t.Errorf("case %d: %s similar despite out-of-window metric", i, id)
			}
		}
	}
}

func TestArchetypeCatalog(t *testing.T) {
	seen := make(map[string]bool)
	for _, ref := range Archetypes {
		if ref.ID == "" || seen[ref.ID] {
			t.Errorf("archetype %q: empty or duplicate id", ref.ID)
		}
		seen[ref.ID] = true
		if ref.RiskScore < 0 || ref.RiskScore > 100 {
			t.Errorf("archetype %s: risk score %v out of range", ref.ID, ref.RiskScore)
		}
		var total Percent
		for _, h := range ref.Holdings {
			total += h.Weight
		}
		if !total.Equal(100) {
			t.Errorf("archetype %s: holdings weights sum to %v, want 100", ref.ID, total)
		}
	}
	if _, ok := ArchetypeByID("tech-growth"); !ok {
		t.Error("ArchetypeByID(tech-growth) not found")
	}
}
