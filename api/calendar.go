package api

import (
	"context"
	"net/url"

	"github.com/casualjim/fmp/internal/httpx"
	"github.com/casualjim/fmp/types"
)

// CalendarAPI serves event calendars. Every method takes an optional
// from/to window; FMP limits a window to three months.
type CalendarAPI struct{ c *httpx.Client }

func calendar[T any](ctx context.Context, c *httpx.Client, endpoint, from, to string) ([]T, error) {
	q := url.Values{}
	if err := setDateRange(q, from, to); err != nil {
		return nil, err
	}
	return getList[T](ctx, c, httpx.V3, endpoint, q)
}

func (a *CalendarAPI) Earnings(ctx context.Context, from, to string) ([]types.EarningsEvent, error) {
	return calendar[types.EarningsEvent](ctx, a.c, "earning_calendar", from, to)
}

func (a *CalendarAPI) Economic(ctx context.Context, from, to string) ([]types.EconomicEvent, error) {
	return calendar[types.EconomicEvent](ctx, a.c, "economic_calendar", from, to)
}

func (a *CalendarAPI) IPOs(ctx context.Context, from, to string) ([]types.IPOEvent, error) {
	return calendar[types.IPOEvent](ctx, a.c, "ipo_calendar", from, to)
}

func (a *CalendarAPI) Dividends(ctx context.Context, from, to string) ([]types.DividendEvent, error) {
	return calendar[types.DividendEvent](ctx, a.c, "stock_dividend_calendar", from, to)
}

func (a *CalendarAPI) Splits(ctx context.Context, from, to string) ([]types.SplitEvent, error) {
	return calendar[types.SplitEvent](ctx, a.c, "stock_split_calendar", from, to)
}
