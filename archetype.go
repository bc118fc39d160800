package tradeoff

import "math"

// Metrics are the aggregate portfolio numbers the classifier works from.
// All three percentage metrics are on the 0-100 scale.
type Metrics struct {
	SectorConcentration float64 // weight of the heaviest known sector
	TopHoldingWeight    float64 // weight of the largest position
	NumHoldings         int
	TechExposure        float64 // weight of the Technology sector
}

// Profile is the coarse risk appetite a portfolio is classified into.
type Profile string

const (
	ProfileConservative Profile = "conservative"
	ProfileModerate     Profile = "moderate"
	ProfileAggressive   Profile = "aggressive"
	ProfileSpeculative  Profile = "speculative"
)

// Classification is the result of classifying a portfolio: a profile, a
// bounded confidence, the most similar reference archetypes and the rubric
// warnings that contributed to the score. Recomputed per request.
type Classification struct {
	Profile    Profile
	Confidence int // 0-100, bounded per tier
	SimilarTo  []string
	Warnings   []string
}

// RefHolding is one position of a reference archetype.
type RefHolding struct {
	Ticker string
	Weight Percent
	Sector string
}

// ReferencePortfolio is a hand-authored exemplar used as a classification
// anchor. Its aggregate metrics are precomputed so similarity lookup never
// recomputes them.
type ReferencePortfolio struct {
	ID            string
	Name          string
	Holdings      []RefHolding
	RiskScore     float64 // 0-100, authored
	Metrics       Metrics
	DividendYield float64
	Volatility    string // low | medium | high
}

// Classify scores the metrics against the point rubric and returns the
// profile, a bounded confidence, up to three similar reference archetypes
// (in catalog order) and the accumulated warnings. Deterministic: identical
// metrics always yield the identical result.
func Classify(m Metrics) Classification {
	score := 0
	var warnings []string

	switch {
	case m.TopHoldingWeight > 50:
		score += 4
		warnings = append(warnings, "extremely concentrated in a single position")
	case m.TopHoldingWeight > 30:
		score += 3
		warnings = append(warnings, "high single-stock concentration")
	case m.TopHoldingWeight > 20:
		score += 2
	case m.TopHoldingWeight > 12:
		score++
	}

	switch {
	case m.SectorConcentration > 70:
		score += 3
		warnings = append(warnings, "heavily concentrated in one sector")
	case m.SectorConcentration > 50:
		score += 2
	case m.SectorConcentration > 35:
		score++
	}

	switch {
	case m.NumHoldings < 5:
		score += 3
		warnings = append(warnings, "very few holdings increases idiosyncratic risk")
	case m.NumHoldings < 8:
		score += 2
	case m.NumHoldings < 12:
		score++
	}

	switch {
	case m.TechExposure > 60:
		score += 2
		warnings = append(warnings, "heavy technology sector exposure")
	case m.TechExposure > 40:
		score++
	}

	var profile Profile
	var confidence int
	switch {
	case score >= 8:
		profile, confidence = ProfileSpeculative, min(95, 70+2*score)
	case score >= 5:
		profile, confidence = ProfileAggressive, min(90, 65+3*score)
	case score >= 2:
		profile, confidence = ProfileModerate, min(85, 60+5*score)
	default:
		profile, confidence = ProfileConservative, min(90, 75+5*(3-score))
	}

	return Classification{
		Profile:    profile,
		Confidence: confidence,
		SimilarTo:  similarArchetypes(m),
		Warnings:   warnings,
	}
}

// similarity windows: a reference archetype is similar when all three deltas
// are inside them.
const (
	similarSectorWindow = 15
	similarTopWindow    = 10
	similarCountWindow  = 5
	maxSimilar          = 3
)

// similarArchetypes returns up to three reference archetypes whose
// precomputed metrics sit within the similarity windows, in catalog order.
func similarArchetypes(m Metrics) []string {
	var similar []string
	for _, ref := range Archetypes {
		if math.Abs(ref.Metrics.SectorConcentration-m.SectorConcentration) < similarSectorWindow &&
			math.Abs(ref.Metrics.TopHoldingWeight-m.TopHoldingWeight) < similarTopWindow &&
			math.Abs(float64(ref.Metrics.NumHoldings-m.NumHoldings)) < similarCountWindow {
			similar = append(similar, ref.ID)
			if len(similar) == maxSimilar {
				break
			}
		}
	}
	return similar
}

// ArchetypeByID looks up a reference portfolio in the catalog.
func ArchetypeByID(id string) (ReferencePortfolio, bool) {
	for _, ref := range Archetypes {
		if ref.ID == id {
			return ref, true
		}
	}
	return ReferencePortfolio{}, false
}
