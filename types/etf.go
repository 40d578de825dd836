package types

// ETFHolding is one position of an ETF.
type ETFHolding struct {
	Asset            string  `json:"asset"`
	Name             string  `json:"name"`
	ISIN             string  `json:"isin"`
	CUSIP            string  `json:"cusip"`
	SharesNumber     float64 `json:"sharesNumber"`
	WeightPercentage float64 `json:"weightPercentage"`
	MarketValue      float64 `json:"marketValue"`
	Updated          string  `json:"updated"`
}

// ETFInfo describes an ETF.
type ETFInfo struct {
	Symbol        string            `json:"symbol"`
	Name          string            `json:"name"`
	AssetClass    string            `json:"assetClass"`
	AUM           float64           `json:"aum"`
	AvgVolume     float64           `json:"avgVolume"`
	CUSIP         string            `json:"cusip"`
	ISIN          string            `json:"isin"`
	Description   string            `json:"description"`
	Domicile      string            `json:"domicile"`
	ETFCompany    string            `json:"etfCompany"`
	ExpenseRatio  float64           `json:"expenseRatio"`
	InceptionDate string            `json:"inceptionDate"`
	NAV           float64           `json:"nav"`
	NAVCurrency   string            `json:"navCurrency"`
	HoldingsCount int               `json:"holdingsCount"`
	UpdatedAt     string            `json:"updatedAt"`
	Website       string            `json:"website"`
	SectorsList   []SectorWeighting `json:"sectorsList,omitempty"`
}

// SectorWeighting is the share of an ETF invested in one sector.
type SectorWeighting struct {
	Sector           string  `json:"sector"`
	WeightPercentage string  `json:"weightPercentage"`
	Exposure         float64 `json:"exposure,omitempty"`
}

// CountryWeighting is the share of an ETF invested in one country.
type CountryWeighting struct {
	Country          string `json:"country"`
	WeightPercentage string `json:"weightPercentage"`
}
