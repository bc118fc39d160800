package renderer

import (
	"sort"

	"github.com/pauligwe/tradeoff"
)

// ImportView is the renderable shape of an ingestion result.
type ImportView struct {
	DetectedFormat string
	TotalRows      int
	SkippedRows    int
	Holdings       []ImportHolding
	Warnings       []string
}

// ImportHolding is one row of the imported holdings table.
type ImportHolding struct {
	Ticker       string
	Shares       string
	AveragePrice string // "" when the export carried none
	CurrentValue string
	Currency     string
}

// NewImportView flattens an ImportResult for templating.
func NewImportView(res tradeoff.ImportResult) *ImportView {
	v := &ImportView{
		DetectedFormat: res.DetectedFormat,
		TotalRows:      res.TotalRows,
		SkippedRows:    res.SkippedRows,
		Warnings:       res.Warnings,
	}
	for _, h := range res.Holdings {
		row := ImportHolding{
			Ticker:   h.Ticker,
			Shares:   h.Shares.String(),
			Currency: h.Currency,
		}
		if !h.AveragePrice.IsZero() {
			row.AveragePrice = h.AveragePrice.String()
		}
		if !h.CurrentValue.IsZero() {
			row.CurrentValue = h.CurrentValue.String()
		}
		v.Holdings = append(v.Holdings, row)
	}
	return v
}

// ReportView is the renderable shape of a full analysis report.
type ReportView struct {
	TotalValue     float64
	NumHoldings    int
	Largest        string // "NVDA (62.0%)"
	Sectors        []SectorWeight
	Alerts         []AlertView
	Classification ClassificationView
	HedgeKeywords  []string
}

// SectorWeight is one row of the sector breakdown, heaviest first.
type SectorWeight struct {
	Sector string
	Weight float64
}

// AlertView is one row of the alerts table.
type AlertView struct {
	Name          string
	Category      string
	Severity      string
	Badge         string // severity with an emoji marker for the terminal
	Score         float64
	Exposure      float64
	Tickers       []string
	AffectedValue float64
	Description   string
	HedgeKeywords []string
}

// ClassificationView is the renderable shape of a classification result.
type ClassificationView struct {
	Profile    string
	Confidence int
	SimilarTo  []SimilarRef
	Warnings   []string
}

// SimilarRef names a similar reference archetype.
type SimilarRef struct {
	ID   string
	Name string
}

var severityBadges = map[tradeoff.Severity]string{
	tradeoff.SeverityCritical: "🔴 critical",
	tradeoff.SeverityHigh:     "🟠 high",
	tradeoff.SeverityMedium:   "🟡 medium",
	tradeoff.SeverityLow:      "🟢 low",
}

// NewReportView flattens a Report for templating.
func NewReportView(rep *tradeoff.Report) *ReportView {
	v := &ReportView{
		TotalValue:     rep.Snapshot.TotalValue,
		NumHoldings:    len(rep.Snapshot.Positions),
		Classification: *newClassificationView(rep.Classification),
		HedgeKeywords:  rep.HedgeKeywords(),
	}
	if rep.Snapshot.Largest.Ticker != "" {
		v.Largest = rep.Snapshot.Largest.Ticker + " (" + rep.Snapshot.Largest.Weight.String() + ")"
	}

	for sector, weight := range rep.Snapshot.SectorWeights {
		v.Sectors = append(v.Sectors, SectorWeight{Sector: sector, Weight: float64(weight)})
	}
	sort.Slice(v.Sectors, func(i, j int) bool {
		if v.Sectors[i].Weight != v.Sectors[j].Weight {
			return v.Sectors[i].Weight > v.Sectors[j].Weight
		}
		return v.Sectors[i].Sector < v.Sectors[j].Sector
	})

	for _, a := range rep.Alerts {
		v.Alerts = append(v.Alerts, AlertView{
			Name:          a.Name,
			Category:      string(a.Category),
			Severity:      string(a.Severity),
			Badge:         severityBadges[a.Severity],
			Score:         a.Score,
			Exposure:      float64(a.Exposure),
			Tickers:       a.Tickers,
			AffectedValue: a.AffectedValue,
			Description:   a.Description,
			HedgeKeywords: a.HedgeKeywords,
		})
	}
	return v
}

// NewClassificationView flattens a bare classification result.
func NewClassificationView(c tradeoff.Classification) *ClassificationView {
	return newClassificationView(c)
}

func newClassificationView(c tradeoff.Classification) *ClassificationView {
	v := &ClassificationView{
		Profile:    string(c.Profile),
		Confidence: c.Confidence,
		Warnings:   c.Warnings,
	}
	for _, id := range c.SimilarTo {
		ref := SimilarRef{ID: id, Name: id}
		if arch, ok := tradeoff.ArchetypeByID(id); ok {
			ref.Name = arch.Name
		}
		v.SimilarTo = append(v.SimilarTo, ref)
	}
	return v
}
