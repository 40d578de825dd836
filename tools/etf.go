package tools

import (
	"context"

	"github.com/casualjim/fmp/types"
)

func (b *builder) etf() {
	b.category = CategoryETF
	e := b.client.ETF

	add(b, "getETFHoldings",
		"Largest holdings of an ETF with their weights.",
		func(ctx context.Context, in SymbolLimitInput) ([]types.ETFHolding, error) {
			res, err := e.Holdings(ctx, in.Symbol)
			return top(res, in.Limit), err
		})
	add(b, "getETFInfo",
		"ETF summary: issuer, expense ratio, assets under management, holdings count and inception date.",
		func(ctx context.Context, in SymbolInput) (*types.ETFInfo, error) {
			return e.Info(ctx, in.Symbol)
		})
	add(b, "getETFSectorWeightings",
		"Sector allocation of an ETF.",
		func(ctx context.Context, in SymbolInput) ([]types.SectorWeighting, error) {
			return e.SectorWeightings(ctx, in.Symbol)
		})
	add(b, "getETFCountryWeightings",
		"Country allocation of an ETF.",
		func(ctx context.Context, in SymbolInput) ([]types.CountryWeighting, error) {
			return e.CountryWeightings(ctx, in.Symbol)
		})
}
