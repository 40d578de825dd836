package api

import (
	"context"
	"net/url"

	"github.com/casualjim/fmp/internal/httpx"
	"github.com/casualjim/fmp/types"
)

// QuoteAPI serves real-time quotes and price history.
type QuoteAPI struct{ c *httpx.Client }

// Get returns the full quote of one symbol.
func (a *QuoteAPI) Get(ctx context.Context, symbol string) (*types.Quote, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getFirst[types.Quote](ctx, a.c, httpx.V3, "quote/"+s, nil, "quote "+s)
}

// GetMany returns the quotes of several symbols in one request.
func (a *QuoteAPI) GetMany(ctx context.Context, symbols ...string) ([]types.Quote, error) {
	s, err := normalizeSymbols(symbols)
	if err != nil {
		return nil, err
	}
	return getList[types.Quote](ctx, a.c, httpx.V3, "quote/"+s, nil)
}

// Short returns price and volume only.
func (a *QuoteAPI) Short(ctx context.Context, symbol string) (*types.QuoteShort, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getFirst[types.QuoteShort](ctx, a.c, httpx.V3, "quote-short/"+s, nil, "quote "+s)
}

// History returns daily prices between from and to (both optional, YYYY-MM-DD).
func (a *QuoteAPI) History(ctx context.Context, symbol, from, to string) (*types.HistoricalPrices, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	if err := setDateRange(q, from, to); err != nil {
		return nil, err
	}
	return getObject[types.HistoricalPrices](ctx, a.c, httpx.V3, "historical-price-full/"+s, q)
}

// Intraday returns chart bars of the given interval.
func (a *QuoteAPI) Intraday(ctx context.Context, symbol string, interval types.Interval, from, to string) ([]types.IntradayBar, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if !interval.Valid() {
		return nil, invalid("unsupported interval %q", interval)
	}
	q := url.Values{}
	if err := setDateRange(q, from, to); err != nil {
		return nil, err
	}
	return getList[types.IntradayBar](ctx, a.c, httpx.V3, "historical-chart/"+string(interval)+"/"+s, q)
}
