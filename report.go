package tradeoff

// Report bundles everything one analysis run produces: the snapshot the
// analysis saw, the triggered alerts and the classification. Like every
// other core output it is recomputed per call.
type Report struct {
	Snapshot       *Snapshot
	Alerts         []Alert
	Classification Classification
}

// NewReport builds a snapshot from the enriched positions, evaluates the
// registry against it and classifies the aggregate metrics.
func NewReport(positions []Position, reg *Registry) *Report {
	s := NewSnapshot(positions)
	return &Report{
		Snapshot:       s,
		Alerts:         reg.Evaluate(s),
		Classification: Classify(s.Metrics()),
	}
}

// WorstSeverity returns the severity of the top alert, or "" when no factor
// triggered.
func (r *Report) WorstSeverity() Severity {
	if len(r.Alerts) == 0 {
		return ""
	}
	return r.Alerts[0].Severity
}

// HedgeKeywords collects the distinct hedge keywords of all triggered
// alerts, in alert order. This is the hand-off point to the hedge-matching
// collaborator.
func (r *Report) HedgeKeywords() []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, a := range r.Alerts {
		for _, kw := range a.HedgeKeywords {
			if !seen[kw] {
				seen[kw] = true
				keywords = append(keywords, kw)
			}
		}
	}
	return keywords
}
