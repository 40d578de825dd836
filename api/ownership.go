package api

import (
	"context"
	"strconv"

	"github.com/casualjim/fmp/internal/httpx"
	"github.com/casualjim/fmp/types"
)

// InsiderAPI serves insider trading filings.
type InsiderAPI struct{ c *httpx.Client }

// Trades returns one page (zero based) of insider transactions.
func (a *InsiderAPI) Trades(ctx context.Context, symbol string, page int) ([]types.InsiderTrade, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if page < 0 {
		return nil, invalid("page must not be negative, got %d", page)
	}
	q := symbolQuery(s)
	q.Set("page", strconv.Itoa(page))
	return getList[types.InsiderTrade](ctx, a.c, httpx.V4, "insider-trading", q)
}

// Roster lists the company's insiders.
func (a *InsiderAPI) Roster(ctx context.Context, symbol string) ([]types.InsiderRosterEntry, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	// FMP spells the endpoint this way
	return getList[types.InsiderRosterEntry](ctx, a.c, httpx.V4, "insider-roaster", symbolQuery(s))
}

// InstitutionalAPI serves 13F holder data.
type InstitutionalAPI struct{ c *httpx.Client }

func (a *InstitutionalAPI) Holders(ctx context.Context, symbol string) ([]types.InstitutionalHolder, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getList[types.InstitutionalHolder](ctx, a.c, httpx.V3, "institutional-holder/"+s, nil)
}

// SenateHouseAPI serves trades disclosed by members of congress.
type SenateHouseAPI struct{ c *httpx.Client }

func (a *SenateHouseAPI) SenateTrades(ctx context.Context, symbol string) ([]types.CongressTrade, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getList[types.CongressTrade](ctx, a.c, httpx.V4, "senate-trading", symbolQuery(s))
}

func (a *SenateHouseAPI) HouseTrades(ctx context.Context, symbol string) ([]types.CongressTrade, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getList[types.CongressTrade](ctx, a.c, httpx.V4, "senate-disclosure", symbolQuery(s))
}
