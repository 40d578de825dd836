package api

import (
	"context"

	"github.com/casualjim/fmp/internal/httpx"
	"github.com/casualjim/fmp/types"
)

// ETFAPI serves exchange traded fund data.
type ETFAPI struct{ c *httpx.Client }

func (a *ETFAPI) Holdings(ctx context.Context, symbol string) ([]types.ETFHolding, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getList[types.ETFHolding](ctx, a.c, httpx.V3, "etf-holder/"+s, nil)
}

// Info returns the fund's summary (issuer, expense ratio, AUM, ...).
func (a *ETFAPI) Info(ctx context.Context, symbol string) (*types.ETFInfo, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getFirst[types.ETFInfo](ctx, a.c, httpx.V4, "etf-info", symbolQuery(s), "etf "+s)
}

func (a *ETFAPI) SectorWeightings(ctx context.Context, symbol string) ([]types.SectorWeighting, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getList[types.SectorWeighting](ctx, a.c, httpx.V3, "etf-sector-weightings/"+s, nil)
}

func (a *ETFAPI) CountryWeightings(ctx context.Context, symbol string) ([]types.CountryWeighting, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getList[types.CountryWeighting](ctx, a.c, httpx.V3, "etf-country-weightings/"+s, nil)
}
