package api

import (
	"context"
	"net/url"
	"slices"
	"strings"

	"github.com/casualjim/fmp/internal/httpx"
	"github.com/casualjim/fmp/types"
)

// EconomicAPI serves macro-economic series.
type EconomicAPI struct{ c *httpx.Client }

// TreasuryRates returns daily treasury yields between from and to.
func (a *EconomicAPI) TreasuryRates(ctx context.Context, from, to string) ([]types.TreasuryRates, error) {
	q := url.Values{}
	if err := setDateRange(q, from, to); err != nil {
		return nil, err
	}
	return getList[types.TreasuryRates](ctx, a.c, httpx.V4, "treasury", q)
}

// Indicator returns one economic series, e.g. "GDP" or "unemploymentRate".
// See types.EconomicIndicatorNames.
func (a *EconomicAPI) Indicator(ctx context.Context, name, from, to string) ([]types.EconomicIndicator, error) {
	name = strings.TrimSpace(name)
	if !slices.Contains(types.EconomicIndicatorNames, name) {
		return nil, invalid("unknown economic indicator %q", name)
	}
	q := url.Values{"name": []string{name}}
	if err := setDateRange(q, from, to); err != nil {
		return nil, err
	}
	return getList[types.EconomicIndicator](ctx, a.c, httpx.V4, "economic", q)
}
