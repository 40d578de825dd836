package types

// Period selects annual or quarterly financial statements.
type Period string

const (
	PeriodAnnual  Period = "annual"
	PeriodQuarter Period = "quarter"
)

// Valid reports whether p is a period FMP accepts.
func (p Period) Valid() bool {
	return p == PeriodAnnual || p == PeriodQuarter
}

// Interval is the bar size of an intraday chart.
type Interval string

const (
	Interval1Min  Interval = "1min"
	Interval5Min  Interval = "5min"
	Interval15Min Interval = "15min"
	Interval30Min Interval = "30min"
	Interval1Hour Interval = "1hour"
	Interval4Hour Interval = "4hour"
)

// Valid reports whether i is an interval FMP accepts.
func (i Interval) Valid() bool {
	switch i {
	case Interval1Min, Interval5Min, Interval15Min, Interval30Min, Interval1Hour, Interval4Hour:
		return true
	}
	return false
}

// Symbol is an entry of the symbol lists.
type Symbol struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Price             float64 `json:"price,omitempty"`
	Exchange          string  `json:"exchange,omitempty"`
	ExchangeShortName string  `json:"exchangeShortName,omitempty"`
	Type              string  `json:"type,omitempty"`
	Currency          string  `json:"currency,omitempty"`
	StockExchange     string  `json:"stockExchange,omitempty"`
}
