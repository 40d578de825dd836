package tools

import (
	"context"

	"github.com/casualjim/fmp/types"
)

func (b *builder) quote() {
	b.category = CategoryQuote
	q := b.client.Quote

	add(b, "getStockQuote",
		"Real-time quote of a stock: price, change, day range, volume, market cap, P/E and EPS.",
		func(ctx context.Context, in SymbolInput) (*types.Quote, error) {
			return q.Get(ctx, in.Symbol)
		})
	add(b, "getBatchQuotes",
		"Real-time quotes of several stocks in one call.",
		func(ctx context.Context, in SymbolsInput) ([]types.Quote, error) {
			return q.GetMany(ctx, in.Symbols...)
		})
	add(b, "getHistoricalPrices",
		"Daily open, high, low, close and volume of a stock between two dates.",
		func(ctx context.Context, in HistoryInput) (*types.HistoricalPrices, error) {
			return q.History(ctx, in.Symbol, in.From, in.To)
		})
	add(b, "getIntradayChart",
		"Intraday price bars of a stock at a fixed interval.",
		func(ctx context.Context, in IntradayInput) ([]types.IntradayBar, error) {
			return q.Intraday(ctx, in.Symbol, in.Interval, in.From, in.To)
		})
}
