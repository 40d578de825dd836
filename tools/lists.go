package tools

import (
	"context"

	"github.com/casualjim/fmp/types"
)

func (b *builder) lists() {
	b.category = CategoryList
	l := b.client.List

	// the directories are large and change rarely, so each is downloaded once per SymbolListTTL
	listTool := func(name, description string, fetch func(context.Context) ([]types.Symbol, error)) {
		directory := newMemo(SymbolListTTL, fetch)
		add(b, name, description, func(ctx context.Context, in ListInput) ([]types.Symbol, error) {
			res, err := directory.get(ctx)
			if err != nil {
				return nil, err
			}
			return filterSymbols(res, in.Query, in.Limit), nil
		})
	}

	listTool("searchStockList", "Search the listed stocks by symbol or company name.", l.Stocks)
	listTool("searchETFList", "Search the listed ETFs by symbol or fund name.", l.ETFs)
	listTool("searchTradableSymbols", "Search the actively traded symbols by symbol or name.", l.Tradable)
	listTool("searchCryptoList", "Search the available cryptocurrencies, e.g. BTCUSD.", l.Cryptocurrencies)
	listTool("searchForexList", "Search the available currency pairs, e.g. EURUSD.", l.Forex)
	listTool("searchIndexList", "Search the available market indexes, e.g. ^GSPC.", l.Indexes)
}
