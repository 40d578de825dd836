package types

// MarketCap is a company's market capitalization on one date.
type MarketCap struct {
	Symbol    string  `json:"symbol"`
	Date      string  `json:"date"`
	MarketCap float64 `json:"marketCap"`
}

// StockSplit is one historical split.
type StockSplit struct {
	Date        string  `json:"date"`
	Label       string  `json:"label"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
}

// StockSplits is the envelope of the split history endpoint.
type StockSplits struct {
	Symbol     string       `json:"symbol"`
	Historical []StockSplit `json:"historical"`
}

// Dividend is one historical dividend payment.
type Dividend struct {
	Date            string  `json:"date"`
	Label           string  `json:"label"`
	AdjDividend     float64 `json:"adjDividend"`
	Dividend        float64 `json:"dividend"`
	RecordDate      string  `json:"recordDate"`
	PaymentDate     string  `json:"paymentDate"`
	DeclarationDate string  `json:"declarationDate"`
}

// Dividends is the envelope of the dividend history endpoint.
type Dividends struct {
	Symbol     string     `json:"symbol"`
	Historical []Dividend `json:"historical"`
}
