package tradeoff

import (
	"sort"
	"strings"
)

// Severity is the tier assigned to an alert by comparing its score to the
// factor's thresholds.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Alert is one triggered risk factor for one snapshot. Ephemeral: derived
// per request, never stored.
type Alert struct {
	FactorID      string
	Name          string
	Category      RiskCategory
	Severity      Severity
	Score         float64 // clamped to [0,100]
	Exposure      Percent // matched value as % of total value
	Tickers       []string
	AffectedValue float64
	Description   string
	HedgeKeywords []string
}

// Evaluate runs the registry against a snapshot and returns alerts sorted by
// descending severity, ties broken by descending exposure. Pure and
// deterministic: the same snapshot always yields the same alerts. An empty
// result means no factor reached its low threshold, not an error.
func (r *Registry) Evaluate(s *Snapshot) []Alert {
	if s.TotalValue <= 0 {
		return nil
	}

	var alerts []Alert
	for _, f := range r.Factors {
		var alert Alert
		var ok bool
		switch f.ID {
		case FactorSingleStock:
			alert, ok = evalSingleStock(f, s)
		case FactorTopSector:
			alert, ok = evalTopSector(f, s)
		default:
			alert, ok = evalTrigger(f, s)
		}
		if ok {
			alerts = append(alerts, alert)
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if severityRank[alerts[i].Severity] != severityRank[alerts[j].Severity] {
			return severityRank[alerts[i].Severity] > severityRank[alerts[j].Severity]
		}
		return alerts[i].Exposure > alerts[j].Exposure
	})
	return alerts
}

// evalSingleStock is the first structural check: the weight of the largest
// position, regardless of what it is.
func evalSingleStock(f RiskFactor, s *Snapshot) (Alert, bool) {
	weight := float64(s.Largest.Weight)
	if weight < f.Thresholds.Low {
		return Alert{}, false
	}
	value := s.TotalValue * weight / 100
	return newAlert(f, s, weight, Percent(weight), []string{s.Largest.Ticker}, value), true
}

// evalTopSector is the second structural check: the weight of the heaviest
// known sector. Positions with an unknown sector are excluded so that
// missing enrichment data cannot fake a concentration.
func evalTopSector(f RiskFactor, s *Snapshot) (Alert, bool) {
	_, weight, tickers, ok := s.TopKnownSector()
	if !ok || float64(weight) < f.Thresholds.Low {
		return Alert{}, false
	}
	value := s.TotalValue * float64(weight) / 100
	return newAlert(f, s, float64(weight), weight, tickers, value), true
}

// evalTrigger is the generic phase: match positions against the factor's
// trigger criteria and score the aggregate.
func evalTrigger(f RiskFactor, s *Snapshot) (Alert, bool) {
	var tickers []string
	var matchedValue float64
	matched := 0
	for _, p := range s.Positions {
		if !factorMatches(f, p) {
			continue
		}
		matched++
		matchedValue += p.Value
		tickers = append(tickers, p.Ticker)
	}
	if matched == 0 {
		return Alert{}, false
	}

	exposure := 100 * matchedValue / s.TotalValue
	score := exposure
	if f.Calc == CalcCount {
		score = 100 * float64(matched) / float64(len(s.Positions))
	}
	if exposure < f.Thresholds.Low {
		return Alert{}, false
	}
	return newAlert(f, s, score, Percent(exposure), tickers, matchedValue), true
}

// factorMatches reports whether one position triggers the factor: listed
// ticker, sector or industry, or a keyword in its display name.
func factorMatches(f RiskFactor, p Position) bool {
	for _, t := range f.Tickers {
		if p.Ticker == t {
			return true
		}
	}
	for _, sec := range f.Sectors {
		if p.Sector == sec {
			return true
		}
	}
	for _, ind := range f.Industries {
		if p.Industry == ind {
			return true
		}
	}
	name := strings.ToLower(p.Name)
	for _, kw := range f.Keywords {
		if strings.Contains(name, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func newAlert(f RiskFactor, s *Snapshot, score float64, exposure Percent, tickers []string, value float64) Alert {
	score = clampScore(score)
	return Alert{
		FactorID:      f.ID,
		Name:          f.Name,
		Category:      f.Category,
		Severity:      f.Thresholds.tier(score),
		Score:         score,
		Exposure:      exposure,
		Tickers:       tickers,
		AffectedValue: value,
		Description:   f.Description,
		HedgeKeywords: f.HedgeKeywords,
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// tier returns the highest severity whose threshold the score meets. The
// emission gates guarantee the score is at least the low threshold for
// exposure-scored factors; count-scored factors can still come in below it,
// in which case low is the floor.
func (t Thresholds) tier(score float64) Severity {
	switch {
	case score >= t.Critical:
		return SeverityCritical
	case score >= t.High:
		return SeverityHigh
	case score >= t.Medium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
