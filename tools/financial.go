package tools

import (
	"context"

	"github.com/casualjim/fmp/api"
	"github.com/casualjim/fmp/types"
)

func (in StatementInput) params() api.StatementParams {
	return api.StatementParams{Period: in.Period, Limit: in.Limit}
}

func (b *builder) financial() {
	b.category = CategoryFinancial
	f := b.client.Financial

	add(b, "getIncomeStatement",
		"Income statements: revenue, gross profit, operating income, net income and EPS.",
		func(ctx context.Context, in StatementInput) ([]types.IncomeStatement, error) {
			return f.IncomeStatement(ctx, in.Symbol, in.params())
		})
	add(b, "getBalanceSheet",
		"Balance sheet statements: assets, liabilities, equity, cash and debt.",
		func(ctx context.Context, in StatementInput) ([]types.BalanceSheet, error) {
			return f.BalanceSheet(ctx, in.Symbol, in.params())
		})
	add(b, "getCashFlowStatement",
		"Cash flow statements: operating cash flow, capital expenditure, free cash flow, dividends and buybacks.",
		func(ctx context.Context, in StatementInput) ([]types.CashFlowStatement, error) {
			return f.CashFlow(ctx, in.Symbol, in.params())
		})
	add(b, "getKeyMetrics",
		"Key per-share and valuation metrics such as P/E, EV/EBITDA, ROE and free cash flow yield.",
		func(ctx context.Context, in StatementInput) ([]types.KeyMetrics, error) {
			return f.KeyMetrics(ctx, in.Symbol, in.params())
		})
	add(b, "getFinancialRatios",
		"Liquidity, profitability, leverage and efficiency ratios.",
		func(ctx context.Context, in StatementInput) ([]types.FinancialRatios, error) {
			return f.Ratios(ctx, in.Symbol, in.params())
		})
	add(b, "getEnterpriseValues",
		"Enterprise value and its components per period.",
		func(ctx context.Context, in StatementInput) ([]types.EnterpriseValue, error) {
			return f.EnterpriseValues(ctx, in.Symbol, in.params())
		})
	add(b, "getFinancialGrowth",
		"Period over period growth of revenue, earnings, cash flow and other statement lines.",
		func(ctx context.Context, in StatementInput) ([]types.FinancialGrowth, error) {
			return f.Growth(ctx, in.Symbol, in.params())
		})
	add(b, "getEarningsSurprises",
		"Reported EPS against analyst estimates for past quarters.",
		func(ctx context.Context, in SymbolLimitInput) ([]types.EarningsSurprise, error) {
			res, err := f.EarningsSurprises(ctx, in.Symbol)
			return top(res, in.Limit), err
		})
}
