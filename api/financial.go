package api

import (
	"context"
	"net/url"

	"github.com/casualjim/fmp/internal/httpx"
	"github.com/casualjim/fmp/types"
)

// StatementParams narrows the statement endpoints. The zero value asks FMP for its
// defaults (annual, all available periods).
type StatementParams struct {
	Period types.Period
	Limit  int
}

func (p StatementParams) query() (url.Values, error) {
	q := url.Values{}
	if err := setPeriod(q, p.Period); err != nil {
		return nil, err
	}
	if err := setLimit(q, p.Limit); err != nil {
		return nil, err
	}
	return q, nil
}

// FinancialAPI serves financial statements and derived metrics.
type FinancialAPI struct{ c *httpx.Client }

func statements[T any](ctx context.Context, c *httpx.Client, endpoint, symbol string, p StatementParams) ([]T, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	q, err := p.query()
	if err != nil {
		return nil, err
	}
	return getList[T](ctx, c, httpx.V3, endpoint+"/"+s, q)
}

// IncomeStatement returns income statements, newest first.
func (a *FinancialAPI) IncomeStatement(ctx context.Context, symbol string, p StatementParams) ([]types.IncomeStatement, error) {
	return statements[types.IncomeStatement](ctx, a.c, "income-statement", symbol, p)
}

// BalanceSheet returns balance sheet statements, newest first.
func (a *FinancialAPI) BalanceSheet(ctx context.Context, symbol string, p StatementParams) ([]types.BalanceSheet, error) {
	return statements[types.BalanceSheet](ctx, a.c, "balance-sheet-statement", symbol, p)
}

// CashFlow returns cash flow statements, newest first.
func (a *FinancialAPI) CashFlow(ctx context.Context, symbol string, p StatementParams) ([]types.CashFlowStatement, error) {
	return statements[types.CashFlowStatement](ctx, a.c, "cash-flow-statement", symbol, p)
}

func (a *FinancialAPI) KeyMetrics(ctx context.Context, symbol string, p StatementParams) ([]types.KeyMetrics, error) {
	return statements[types.KeyMetrics](ctx, a.c, "key-metrics", symbol, p)
}

func (a *FinancialAPI) Ratios(ctx context.Context, symbol string, p StatementParams) ([]types.FinancialRatios, error) {
	return statements[types.FinancialRatios](ctx, a.c, "ratios", symbol, p)
}

func (a *FinancialAPI) EnterpriseValues(ctx context.Context, symbol string, p StatementParams) ([]types.EnterpriseValue, error) {
	return statements[types.EnterpriseValue](ctx, a.c, "enterprise-values", symbol, p)
}

// Growth returns period-over-period growth of the statement lines.
func (a *FinancialAPI) Growth(ctx context.Context, symbol string, p StatementParams) ([]types.FinancialGrowth, error) {
	return statements[types.FinancialGrowth](ctx, a.c, "financial-growth", symbol, p)
}

// EarningsSurprises compares reported with estimated EPS.
func (a *FinancialAPI) EarningsSurprises(ctx context.Context, symbol string) ([]types.EarningsSurprise, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getList[types.EarningsSurprise](ctx, a.c, httpx.V3, "earnings-surprises/"+s, nil)
}
