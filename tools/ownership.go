package tools

import (
	"context"

	"github.com/casualjim/fmp/types"
)

func (b *builder) insider() {
	b.category = CategoryInsider
	i := b.client.Insider

	add(b, "getInsiderTrades",
		"Insider transactions reported on Form 4: who traded, when, how many shares and at what price.",
		func(ctx context.Context, in InsiderTradesInput) ([]types.InsiderTrade, error) {
			return i.Trades(ctx, in.Symbol, in.Page)
		})
	add(b, "getInsiderRoster",
		"Officers, directors and major holders reporting insider transactions.",
		func(ctx context.Context, in SymbolInput) ([]types.InsiderRosterEntry, error) {
			return i.Roster(ctx, in.Symbol)
		})
}

func (b *builder) institutional() {
	b.category = CategoryInstitutional
	i := b.client.Institutional

	add(b, "getInstitutionalHolders",
		"Institutions holding the stock according to 13F filings, with share counts and changes.",
		func(ctx context.Context, in SymbolLimitInput) ([]types.InstitutionalHolder, error) {
			res, err := i.Holders(ctx, in.Symbol)
			return top(res, in.Limit), err
		})
}

func (b *builder) senateHouse() {
	b.category = CategorySenateHouse
	s := b.client.SenateHouse

	add(b, "getSenateTrades",
		"Stock trades disclosed by US senators.",
		func(ctx context.Context, in SymbolLimitInput) ([]types.CongressTrade, error) {
			res, err := s.SenateTrades(ctx, in.Symbol)
			return top(res, in.Limit), err
		})
	add(b, "getHouseTrades",
		"Stock trades disclosed by members of the US House of Representatives.",
		func(ctx context.Context, in SymbolLimitInput) ([]types.CongressTrade, error) {
			res, err := s.HouseTrades(ctx, in.Symbol)
			return top(res, in.Limit), err
		})
}
