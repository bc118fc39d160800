package tradeoff

// Archetypes is the static catalog of reference portfolios. Order matters:
// similarity lookup returns the first matches in catalog order. Metrics are
// authored once and never derived at runtime.
var Archetypes = []ReferencePortfolio{
	{
		ID:   "broad-index",
		Name: "Broad Index Core",
		Holdings: []RefHolding{
			{Ticker: "VTI", Weight: 60, Sector: "Diversified"},
			{Ticker: "VXUS", Weight: 25, Sector: "Diversified"},
			{Ticker: "BND", Weight: 15, Sector: "Fixed Income"},
		},
		RiskScore:     20,
		Metrics:       Metrics{SectorConcentration: 25, TopHoldingWeight: 60, NumHoldings: 3, TechExposure: 22},
		DividendYield: 1.9,
		Volatility:    "low",
	},
	{
		ID:   "dividend-income",
		Name: "Dividend Income",
		Holdings: []RefHolding{
			{Ticker: "JNJ", Weight: 12, Sector: "Healthcare"},
			{Ticker: "PG", Weight: 12, Sector: "Consumer Defensive"},
			{Ticker: "KO", Weight: 10, Sector: "Consumer Defensive"},
			{Ticker: "VZ", Weight: 10, Sector: "Communication Services"},
			{Ticker: "XOM", Weight: 10, Sector: "Energy"},
			{Ticker: "O", Weight: 9, Sector: "Real Estate"},
			{Ticker: "PEP", Weight: 9, Sector: "Consumer Defensive"},
			{Ticker: "ABBV", Weight: 9, Sector: "Healthcare"},
			{Ticker: "HD", Weight: 9, Sector: "Consumer Cyclical"},
			{Ticker: "MCD", Weight: 10, Sector: "Consumer Cyclical"},
		},
		RiskScore:     30,
		Metrics:       Metrics{SectorConcentration: 31, TopHoldingWeight: 12, NumHoldings: 10, TechExposure: 0},
		DividendYield: 3.6,
		Volatility:    "low",
	},
	{
		ID:   "balanced-blue-chip",
		Name: "Balanced Blue Chip",
		Holdings: []RefHolding{
			{Ticker: "AAPL", Weight: 10, Sector: "Technology"},
			{Ticker: "MSFT", Weight: 10, Sector: "Technology"},
			{Ticker: "JPM", Weight: 9, Sector: "Financial Services"},
			{Ticker: "JNJ", Weight: 9, Sector: "Healthcare"},
			{Ticker: "V", Weight: 8, Sector: "Financial Services"},
			{Ticker: "PG", Weight: 8, Sector: "Consumer Defensive"},
			{Ticker: "UNH", Weight: 8, Sector: "Healthcare"},
			{Ticker: "HD", Weight: 8, Sector: "Consumer Cyclical"},
			{Ticker: "CVX", Weight: 7, Sector: "Energy"},
			{Ticker: "DIS", Weight: 7, Sector: "Communication Services"},
			{Ticker: "CAT", Weight: 8, Sector: "Industrials"},
			{Ticker: "COST", Weight: 8, Sector: "Consumer Defensive"},
		},
		RiskScore:     40,
		Metrics:       Metrics{SectorConcentration: 20, TopHoldingWeight: 10, NumHoldings: 12, TechExposure: 20},
		DividendYield: 1.8,
		Volatility:    "medium",
	},
	{
		ID:   "tech-growth",
		Name: "Tech Growth",
		Holdings: []RefHolding{
			{Ticker: "MSFT", Weight: 18, Sector: "Technology"},
			{Ticker: "NVDA", Weight: 16, Sector: "Technology"},
			{Ticker: "AAPL", Weight: 14, Sector: "Technology"},
			{Ticker: "GOOGL", Weight: 12, Sector: "Communication Services"},
			{Ticker: "AMZN", Weight: 12, Sector: "Consumer Cyclical"},
			{Ticker: "META", Weight: 10, Sector: "Communication Services"},
			{Ticker: "CRM", Weight: 9, Sector: "Technology"},
			{Ticker: "AMD", Weight: 9, Sector: "Technology"},
		},
		RiskScore:     65,
		Metrics:       Metrics{SectorConcentration: 66, TopHoldingWeight: 18, NumHoldings: 8, TechExposure: 66},
		DividendYield: 0.4,
		Volatility:    "high",
	},
	{
		ID:   "ai-concentrated",
		Name: "AI Concentrated",
		Holdings: []RefHolding{
			{Ticker: "NVDA", Weight: 40, Sector: "Technology"},
			{Ticker: "SMCI", Weight: 15, Sector: "Technology"},
			{Ticker: "AVGO", Weight: 15, Sector: "Technology"},
			{Ticker: "MSFT", Weight: 15, Sector: "Technology"},
			{Ticker: "AMD", Weight: 15, Sector: "Technology"},
		},
		RiskScore:     85,
		Metrics:       Metrics{SectorConcentration: 100, TopHoldingWeight: 40, NumHoldings: 5, TechExposure: 100},
		DividendYield: 0.1,
		Volatility:    "high",
	},
	{
		ID:   "single-stock-bet",
		Name: "Single Stock Bet",
		Holdings: []RefHolding{
			{Ticker: "TSLA", Weight: 80, Sector: "Consumer Cyclical"},
			{Ticker: "VTI", Weight: 20, Sector: "Diversified"},
		},
		RiskScore:     95,
		Metrics:       Metrics{SectorConcentration: 80, TopHoldingWeight: 80, NumHoldings: 2, TechExposure: 0},
		DividendYield: 0.3,
		Volatility:    "high",
	},
	{
		ID:   "meme-speculative",
		Name: "Meme Speculative",
		Holdings: []RefHolding{
			{Ticker: "GME", Weight: 25, Sector: "Consumer Cyclical"},
			{Ticker: "AMC", Weight: 20, Sector: "Communication Services"},
			{Ticker: "PLTR", Weight: 20, Sector: "Technology"},
			{Ticker: "COIN", Weight: 20, Sector: "Financial Services"},
			{Ticker: "MARA", Weight: 15, Sector: "Financial Services"},
		},
		RiskScore:     98,
		Metrics:       Metrics{SectorConcentration: 35, TopHoldingWeight: 25, NumHoldings: 5, TechExposure: 20},
		DividendYield: 0,
		Volatility:    "high",
	},
	{
		ID:   "global-diversified",
		Name: "Global Diversified",
		Holdings: []RefHolding{
			{Ticker: "VT", Weight: 40, Sector: "Diversified"},
			{Ticker: "VEA", Weight: 15, Sector: "Diversified"},
			{Ticker: "VWO", Weight: 10, Sector: "Diversified"},
			{Ticker: "BNDW", Weight: 20, Sector: "Fixed Income"},
			{Ticker: "VNQ", Weight: 8, Sector: "Real Estate"},
			{Ticker: "GLD", Weight: 7, Sector: "Commodities"},
		},
		RiskScore:     25,
		Metrics:       Metrics{SectorConcentration: 22, TopHoldingWeight: 40, NumHoldings: 6, TechExposure: 15},
		DividendYield: 2.2,
		Volatility:    "low",
	},
}
