package types

// MarketHours tells whether an exchange is open.
type MarketHours struct {
	StockExchangeName       string            `json:"stockExchangeName"`
	StockMarketHours        map[string]string `json:"stockMarketHours"`
	StockMarketHolidays     []map[string]any  `json:"stockMarketHolidays,omitempty"`
	IsTheStockMarketOpen    bool              `json:"isTheStockMarketOpen"`
	IsTheEuronextMarketOpen bool              `json:"isTheEuronextMarketOpen"`
	IsTheForexMarketOpen    bool              `json:"isTheForexMarketOpen"`
	IsTheCryptoMarketOpen   bool              `json:"isTheCryptoMarketOpen"`
}

// SectorPerformance is the day's change of one sector. FMP reports the change as a
// string such as "1.234%".
type SectorPerformance struct {
	Sector            string `json:"sector"`
	ChangesPercentage string `json:"changesPercentage"`
}

// MarketMover is an entry of the gainers, losers and most active lists.
type MarketMover struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Change            float64 `json:"change"`
	Price             float64 `json:"price"`
	ChangesPercentage float64 `json:"changesPercentage"`
}
