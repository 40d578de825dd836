package api

import (
	"context"

	"github.com/casualjim/fmp/internal/httpx"
	"github.com/casualjim/fmp/types"
)

// ListAPI serves the symbol directories. The lists are large; callers
// usually cache them.
type ListAPI struct{ c *httpx.Client }

func (a *ListAPI) Stocks(ctx context.Context) ([]types.Symbol, error) {
	return getList[types.Symbol](ctx, a.c, httpx.V3, "stock/list", nil)
}

func (a *ListAPI) ETFs(ctx context.Context) ([]types.Symbol, error) {
	return getList[types.Symbol](ctx, a.c, httpx.V3, "etf/list", nil)
}

// Tradable lists symbols actively traded on supported exchanges.
func (a *ListAPI) Tradable(ctx context.Context) ([]types.Symbol, error) {
	return getList[types.Symbol](ctx, a.c, httpx.V3, "available-traded/list", nil)
}

func (a *ListAPI) Cryptocurrencies(ctx context.Context) ([]types.Symbol, error) {
	return getList[types.Symbol](ctx, a.c, httpx.V3, "symbol/available-cryptocurrencies", nil)
}

func (a *ListAPI) Forex(ctx context.Context) ([]types.Symbol, error) {
	return getList[types.Symbol](ctx, a.c, httpx.V3, "symbol/available-forex-currency-pairs", nil)
}

func (a *ListAPI) Indexes(ctx context.Context) ([]types.Symbol, error) {
	return getList[types.Symbol](ctx, a.c, httpx.V3, "symbol/available-indexes", nil)
}
