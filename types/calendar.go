package types

// EarningsEvent is a scheduled or reported earnings release.
type EarningsEvent struct {
	Date             string   `json:"date"`
	Symbol           string   `json:"symbol"`
	EPS              *float64 `json:"eps"`
	EPSEstimated     *float64 `json:"epsEstimated"`
	Time             string   `json:"time"`
	Revenue          *float64 `json:"revenue"`
	RevenueEstimated *float64 `json:"revenueEstimated"`
	FiscalDateEnding string   `json:"fiscalDateEnding"`
	UpdatedFromDate  string   `json:"updatedFromDate"`
}

// EconomicEvent is a scheduled macroeconomic release.
type EconomicEvent struct {
	Date             string   `json:"date"`
	Country          string   `json:"country"`
	Event            string   `json:"event"`
	Currency         string   `json:"currency"`
	Previous         *float64 `json:"previous"`
	Estimate         *float64 `json:"estimate"`
	Actual           *float64 `json:"actual"`
	Change           *float64 `json:"change"`
	Impact           string   `json:"impact"`
	ChangePercentage *float64 `json:"changePercentage"`
}

// IPOEvent is an upcoming or recent initial public offering.
type IPOEvent struct {
	Date       string   `json:"date"`
	Company    string   `json:"company"`
	Symbol     string   `json:"symbol"`
	Exchange   string   `json:"exchange"`
	Actions    string   `json:"actions"`
	Shares     *int64   `json:"shares"`
	PriceRange string   `json:"priceRange"`
	MarketCap  *float64 `json:"marketCap"`
}

// DividendEvent is a dividend on the dividend calendar.
type DividendEvent struct {
	Date            string  `json:"date"`
	Label           string  `json:"label"`
	Symbol          string  `json:"symbol"`
	AdjDividend     float64 `json:"adjDividend"`
	Dividend        float64 `json:"dividend"`
	RecordDate      string  `json:"recordDate"`
	PaymentDate     string  `json:"paymentDate"`
	DeclarationDate string  `json:"declarationDate"`
}

// SplitEvent is a split on the split calendar.
type SplitEvent struct {
	Date        string  `json:"date"`
	Label       string  `json:"label"`
	Symbol      string  `json:"symbol"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
}
