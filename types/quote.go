package types

// Quote is the full real-time quote of a security.
type Quote struct {
	Symbol               string  `json:"symbol"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	ChangesPercentage    float64 `json:"changesPercentage"`
	Change               float64 `json:"change"`
	DayLow               float64 `json:"dayLow"`
	DayHigh              float64 `json:"dayHigh"`
	YearHigh             float64 `json:"yearHigh"`
	YearLow              float64 `json:"yearLow"`
	MarketCap            float64 `json:"marketCap"`
	PriceAvg50           float64 `json:"priceAvg50"`
	PriceAvg200          float64 `json:"priceAvg200"`
	Exchange             string  `json:"exchange"`
	Volume               int64   `json:"volume"`
	AvgVolume            int64   `json:"avgVolume"`
	Open                 float64 `json:"open"`
	PreviousClose        float64 `json:"previousClose"`
	EPS                  float64 `json:"eps"`
	PE                   float64 `json:"pe"`
	EarningsAnnouncement string  `json:"earningsAnnouncement,omitempty"`
	SharesOutstanding    int64   `json:"sharesOutstanding"`
	Timestamp            int64   `json:"timestamp"`
}

// QuoteShort is the price and volume only quote.
type QuoteShort struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Volume int64   `json:"volume"`
}

// HistoricalPrice is one daily bar.
type HistoricalPrice struct {
	Date             string  `json:"date"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Close            float64 `json:"close"`
	AdjClose         float64 `json:"adjClose"`
	Volume           int64   `json:"volume"`
	UnadjustedVolume int64   `json:"unadjustedVolume"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"changePercent"`
	VWAP             float64 `json:"vwap"`
	Label            string  `json:"label,omitempty"`
	ChangeOverTime   float64 `json:"changeOverTime"`
}

// HistoricalPrices is the envelope of the daily price history endpoint.
type HistoricalPrices struct {
	Symbol     string            `json:"symbol"`
	Historical []HistoricalPrice `json:"historical"`
}

// IntradayBar is one bar of an intraday chart.
type IntradayBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}
