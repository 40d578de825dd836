package api

import (
	"context"

	"github.com/casualjim/fmp/internal/httpx"
	"github.com/casualjim/fmp/types"
)

// StockAPI serves per-stock corporate actions and capitalization.
type StockAPI struct{ c *httpx.Client }

func (a *StockAPI) MarketCap(ctx context.Context, symbol string) (*types.MarketCap, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getFirst[types.MarketCap](ctx, a.c, httpx.V3, "market-capitalization/"+s, nil, "market cap "+s)
}

// Splits returns the split history.
func (a *StockAPI) Splits(ctx context.Context, symbol string) (*types.StockSplits, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getObject[types.StockSplits](ctx, a.c, httpx.V3, "historical-price-full/stock_split/"+s, nil)
}

// Dividends returns the dividend history.
func (a *StockAPI) Dividends(ctx context.Context, symbol string) (*types.Dividends, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getObject[types.Dividends](ctx, a.c, httpx.V3, "historical-price-full/stock_dividend/"+s, nil)
}
