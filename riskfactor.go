package tradeoff

import "fmt"

// RiskCategory groups risk factors by the kind of risk they describe.
type RiskCategory string

const (
	CategoryConcentration RiskCategory = "concentration"
	CategoryGeopolitical  RiskCategory = "geopolitical"
	CategoryRegulatory    RiskCategory = "regulatory"
	CategoryEvent         RiskCategory = "event"
	CategoryCorrelation   RiskCategory = "correlation"
)

// SeverityCalc selects how a factor's severity score is computed from its
// matched positions.
type SeverityCalc string

const (
	// CalcExposure scores by the matched positions' share of total value.
	CalcExposure SeverityCalc = "exposure_pct"
	// CalcCount scores by the matched position count over the total count.
	CalcCount SeverityCalc = "count"
	// CalcConcentration scores by the structural concentration weight.
	CalcConcentration SeverityCalc = "concentration"
)

// Thresholds are the severity tier cut-offs for a factor, on the same 0-100
// scale as the severity score. They must be strictly increasing.
type Thresholds struct {
	Low      float64
	Medium   float64
	High     float64
	Critical float64
}

// RiskFactor is one rule in the registry: what to match, how to score, and
// what to say about it. Factors are static versioned configuration, not
// per-portfolio state.
type RiskFactor struct {
	ID       string
	Name     string
	Category RiskCategory

	// Trigger criteria. A position matches when its ticker, sector or
	// industry is listed, or its display name contains a keyword
	// (case-insensitive). All empty for the two structural factors, which
	// the engine handles in its own phase.
	Tickers    []string
	Sectors    []string
	Industries []string
	Keywords   []string

	Calc          SeverityCalc
	Thresholds    Thresholds
	Description   string
	HedgeKeywords []string
}

// Validate checks the invariants a factor must satisfy before it may enter
// a registry. Violations are programmer errors in the static configuration,
// caught once at startup rather than per request.
func (f RiskFactor) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("risk factor %q: empty id", f.Name)
	}
	switch f.Category {
	case CategoryConcentration, CategoryGeopolitical, CategoryRegulatory, CategoryEvent, CategoryCorrelation:
	default:
		return fmt.Errorf("risk factor %s: unknown category %q", f.ID, f.Category)
	}
	switch f.Calc {
	case CalcExposure, CalcCount, CalcConcentration:
	default:
		return fmt.Errorf("risk factor %s: unknown severity calc %q", f.ID, f.Calc)
	}
	t := f.Thresholds
	if !(t.Low < t.Medium && t.Medium < t.High && t.High < t.Critical) {
		return fmt.Errorf("risk factor %s: thresholds must be strictly increasing, got %v < %v < %v < %v",
			f.ID, t.Low, t.Medium, t.High, t.Critical)
	}
	return nil
}

// Registry is a validated, versioned set of risk factors.
type Registry struct {
	Version string
	Factors []RiskFactor
}

// NewRegistry validates every factor and returns the registry.
func NewRegistry(version string, factors ...RiskFactor) (*Registry, error) {
	seen := make(map[string]bool)
	for _, f := range factors {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("risk factor %s: duplicate id", f.ID)
		}
		seen[f.ID] = true
	}
	return &Registry{Version: version, Factors: factors}, nil
}

// IDs of the two structural factors the scoring engine evaluates in its
// first phase, bypassing generic trigger matching.
const (
	FactorSingleStock = "single-stock-concentration"
	FactorTopSector   = "sector-concentration"
)

func mustRegistry(r *Registry, err error) *Registry {
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry returns the built-in risk factor registry.
func DefaultRegistry() *Registry { return defaultRegistry }

var defaultRegistry = mustRegistry(NewRegistry("2026.02",
	RiskFactor{
		ID:            FactorSingleStock,
		Name:          "Single-Stock Concentration",
		Category:      CategoryConcentration,
		Calc:          CalcConcentration,
		Thresholds:    Thresholds{Low: 20, Medium: 30, High: 40, Critical: 55},
		Description:   "A large share of the portfolio rides on one position. A single earnings miss, guidance cut or governance surprise moves the whole portfolio.",
		HedgeKeywords: []string{"stock price", "earnings", "put options"},
	},
	RiskFactor{
		ID:            FactorTopSector,
		Name:          "Sector Concentration",
		Category:      CategoryConcentration,
		Calc:          CalcConcentration,
		Thresholds:    Thresholds{Low: 35, Medium: 50, High: 65, Critical: 80},
		Description:   "The portfolio leans heavily on a single sector, so positions will fall together when the sector rotates out of favor.",
		HedgeKeywords: []string{"sector etf", "sector rotation"},
	},
	RiskFactor{
		ID:            "china-exposure",
		Name:          "China Exposure",
		Category:      CategoryGeopolitical,
		Tickers:       []string{"BABA", "JD", "PDD", "BIDU", "NIO", "LI", "XPEV", "TME", "BILI"},
		Keywords:      []string{"alibaba", "china", "chinese"},
		Calc:          CalcExposure,
		Thresholds:    Thresholds{Low: 10, Medium: 20, High: 35, Critical: 50},
		Description:   "Exposure to China-domiciled companies carries delisting, regulatory-crackdown and cross-strait escalation risk that US-listed pricing does not fully reflect.",
		HedgeKeywords: []string{"china", "taiwan", "tariffs", "delisting"},
	},
	RiskFactor{
		ID:            "semiconductor-supply-chain",
		Name:          "Semiconductor Supply Chain",
		Category:      CategoryGeopolitical,
		Tickers:       []string{"NVDA", "AMD", "INTC", "TSM", "AVGO", "MU", "QCOM", "ASML", "AMAT", "LRCX"},
		Industries:    []string{"Semiconductors", "Semiconductor Equipment & Materials"},
		Calc:          CalcExposure,
		Thresholds:    Thresholds{Low: 15, Medium: 25, High: 40, Critical: 55},
		Description:   "Chip supply chains concentrate in Taiwan and Korea. Export controls, capacity shocks or a Taiwan crisis hit every name in the chain at once.",
		HedgeKeywords: []string{"semiconductors", "taiwan", "chips", "export controls"},
	},
	RiskFactor{
		ID:            "big-tech-regulation",
		Name:          "Big Tech Regulatory Risk",
		Category:      CategoryRegulatory,
		Tickers:       []string{"AAPL", "MSFT", "GOOGL", "GOOG", "AMZN", "META"},
		Keywords:      []string{"alphabet", "amazon", "apple", "meta", "microsoft"},
		Calc:          CalcExposure,
		Thresholds:    Thresholds{Low: 20, Medium: 35, High: 50, Critical: 65},
		Description:   "Antitrust suits, forced divestitures and platform regulation in the US and EU target the same handful of mega-cap platforms.",
		HedgeKeywords: []string{"antitrust", "breakup", "doj", "ftc"},
	},
	RiskFactor{
		ID:            "ai-capex-cycle",
		Name:          "AI Capex Cycle",
		Category:      CategoryCorrelation,
		Tickers:       []string{"NVDA", "SMCI", "AVGO", "VRT", "ANET", "DELL", "MRVL"},
		Keywords:      []string{"artificial intelligence", "data center", "datacenter"},
		Calc:          CalcExposure,
		Thresholds:    Thresholds{Low: 15, Medium: 30, High: 45, Critical: 60},
		Description:   "These positions are all long the same trade: hyperscaler AI infrastructure spending. If the capex cycle pauses, they reprice together.",
		HedgeKeywords: []string{"ai", "capex", "data center", "gpu"},
	},
	RiskFactor{
		ID:            "crypto-adjacent",
		Name:          "Crypto-Adjacent Exposure",
		Category:      CategoryCorrelation,
		Tickers:       []string{"COIN", "MSTR", "HOOD", "RIOT", "MARA", "CLSK"},
		Keywords:      []string{"bitcoin", "crypto", "blockchain"},
		Calc:          CalcExposure,
		Thresholds:    Thresholds{Low: 5, Medium: 15, High: 30, Critical: 45},
		Description:   "Equities whose earnings track crypto prices trade like leveraged crypto. They amplify drawdowns far beyond their portfolio weight.",
		HedgeKeywords: []string{"bitcoin", "crypto", "etf approval"},
	},
	RiskFactor{
		ID:            "speculative-cluster",
		Name:          "Speculative Name Cluster",
		Category:      CategoryEvent,
		Tickers:       []string{"GME", "AMC", "PLTR", "RIVN", "LCID", "SPCE", "DJT", "HOOD"},
		Keywords:      []string{"meme"},
		Calc:          CalcCount,
		Thresholds:    Thresholds{Low: 20, Medium: 35, High: 50, Critical: 70},
		Description:   "A large fraction of the holdings are sentiment-driven names that gap on flow, not fundamentals. The count matters more than the dollars: it signals a stock-picking style.",
		HedgeKeywords: []string{"volatility", "short interest"},
	},
	RiskFactor{
		ID:            "rate-sensitive-financials",
		Name:          "Rate-Sensitive Financials",
		Category:      CategoryEvent,
		Tickers:       []string{"JPM", "BAC", "C", "WFC", "GS", "MS", "SCHW"},
		Sectors:       []string{"Financial Services", "Financial"},
		Calc:          CalcExposure,
		Thresholds:    Thresholds{Low: 20, Medium: 35, High: 50, Critical: 65},
		Description:   "Bank earnings and book values swing with the rate path. Surprise cuts or an inverted curve compress margins across the group simultaneously.",
		HedgeKeywords: []string{"fed", "interest rates", "rate cut"},
	},
	RiskFactor{
		ID:            "energy-transition",
		Name:          "Fossil Energy Exposure",
		Category:      CategoryRegulatory,
		Tickers:       []string{"XOM", "CVX", "COP", "OXY", "SLB"},
		Sectors:       []string{"Energy"},
		Calc:          CalcExposure,
		Thresholds:    Thresholds{Low: 15, Medium: 30, High: 45, Critical: 60},
		Description:   "Carbon pricing, windfall taxes and demand-peak scenarios put a policy discount on fossil producers that can widen abruptly.",
		HedgeKeywords: []string{"oil price", "opec", "carbon tax"},
	},
	RiskFactor{
		ID:            "pharma-policy",
		Name:          "Drug Pricing Policy Risk",
		Category:      CategoryRegulatory,
		Tickers:       []string{"LLY", "PFE", "MRK", "ABBV", "BMY", "NVO"},
		Sectors:       []string{"Healthcare"},
		Keywords:      []string{"pharma", "therapeutics"},
		Calc:          CalcExposure,
		Thresholds:    Thresholds{Low: 20, Medium: 35, High: 50, Critical: 65},
		Description:   "Negotiated drug pricing and patent-cliff legislation hit the whole large-cap pharma complex, not individual names.",
		HedgeKeywords: []string{"drug pricing", "medicare", "fda"},
	},
	RiskFactor{
		ID:            "defense-geopolitics",
		Name:          "Defense Procurement Exposure",
		Category:      CategoryGeopolitical,
		Tickers:       []string{"LMT", "RTX", "NOC", "GD", "BA"},
		Keywords:      []string{"defense", "aerospace"},
		Calc:          CalcExposure,
		Thresholds:    Thresholds{Low: 15, Medium: 30, High: 45, Critical: 60},
		Description:   "Defense revenues track appropriations and conflict cycles; a budget deal or ceasefire reprices the group together.",
		HedgeKeywords: []string{"ceasefire", "defense budget", "nato"},
	},
))
