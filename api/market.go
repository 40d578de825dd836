package api

import (
	"context"

	"github.com/casualjim/fmp/internal/httpx"
	"github.com/casualjim/fmp/types"
)

// MarketAPI serves market-wide data.
type MarketAPI struct{ c *httpx.Client }

// Hours reports whether the markets are open and their trading hours.
func (a *MarketAPI) Hours(ctx context.Context) (*types.MarketHours, error) {
	return getObject[types.MarketHours](ctx, a.c, httpx.V3, "is-the-market-open", nil)
}

func (a *MarketAPI) SectorPerformance(ctx context.Context) ([]types.SectorPerformance, error) {
	return getList[types.SectorPerformance](ctx, a.c, httpx.V3, "sectors-performance", nil)
}

func (a *MarketAPI) Gainers(ctx context.Context) ([]types.MarketMover, error) {
	return getList[types.MarketMover](ctx, a.c, httpx.V3, "stock_market/gainers", nil)
}

func (a *MarketAPI) Losers(ctx context.Context) ([]types.MarketMover, error) {
	return getList[types.MarketMover](ctx, a.c, httpx.V3, "stock_market/losers", nil)
}

func (a *MarketAPI) MostActive(ctx context.Context) ([]types.MarketMover, error) {
	return getList[types.MarketMover](ctx, a.c, httpx.V3, "stock_market/actives", nil)
}

// Indexes quotes the major market indexes.
func (a *MarketAPI) Indexes(ctx context.Context) ([]types.Quote, error) {
	return getList[types.Quote](ctx, a.c, httpx.V3, "quotes/index", nil)
}
