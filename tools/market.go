package tools

import (
	"context"

	"github.com/casualjim/fmp/types"
)

func (b *builder) market() {
	b.category = CategoryMarket
	m := b.client.Market

	add(b, "getMarketHours",
		"Whether the stock, forex and crypto markets are open right now, with trading hours.",
		func(ctx context.Context, _ NoInput) (*types.MarketHours, error) {
			return m.Hours(ctx)
		})
	add(b, "getSectorPerformance",
		"Today's percentage change of each market sector.",
		func(ctx context.Context, _ NoInput) ([]types.SectorPerformance, error) {
			return m.SectorPerformance(ctx)
		})
	add(b, "getMarketGainers",
		"Stocks with the largest price gains today.",
		func(ctx context.Context, in LimitInput) ([]types.MarketMover, error) {
			res, err := m.Gainers(ctx)
			return top(res, in.Limit), err
		})
	add(b, "getMarketLosers",
		"Stocks with the largest price losses today.",
		func(ctx context.Context, in LimitInput) ([]types.MarketMover, error) {
			res, err := m.Losers(ctx)
			return top(res, in.Limit), err
		})
	add(b, "getMostActiveStocks",
		"Most actively traded stocks today by volume.",
		func(ctx context.Context, in LimitInput) ([]types.MarketMover, error) {
			res, err := m.MostActive(ctx)
			return top(res, in.Limit), err
		})
	add(b, "getMarketIndexes",
		"Quotes of the major market indexes such as the S&P 500, Dow Jones and Nasdaq.",
		func(ctx context.Context, in LimitInput) ([]types.Quote, error) {
			res, err := m.Indexes(ctx)
			return top(res, in.Limit), err
		})
}

func (b *builder) stock() {
	b.category = CategoryStock
	s := b.client.Stock

	add(b, "getMarketCap",
		"Current market capitalization of a company.",
		func(ctx context.Context, in SymbolInput) (*types.MarketCap, error) {
			return s.MarketCap(ctx, in.Symbol)
		})
	add(b, "getStockSplits",
		"Historical stock splits of a company.",
		func(ctx context.Context, in SymbolInput) (*types.StockSplits, error) {
			return s.Splits(ctx, in.Symbol)
		})
	add(b, "getDividendHistory",
		"Historical dividend payments with record, payment and declaration dates.",
		func(ctx context.Context, in SymbolLimitInput) (*types.Dividends, error) {
			res, err := s.Dividends(ctx, in.Symbol)
			if err != nil {
				return nil, err
			}
			res.Historical = top(res.Historical, in.Limit)
			return res, nil
		})
}
