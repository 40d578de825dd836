package tools

import (
	"context"

	"github.com/casualjim/fmp/types"
)

func (b *builder) economic() {
	b.category = CategoryEconomic
	e := b.client.Economic

	add(b, "getTreasuryRates",
		"Daily US treasury yields from 1 month to 30 years.",
		func(ctx context.Context, in DateRangeInput) ([]types.TreasuryRates, error) {
			return e.TreasuryRates(ctx, in.From, in.To)
		})
	add(b, "getEconomicIndicator",
		"Historical values of a US economic indicator such as GDP, CPI or the unemployment rate.",
		func(ctx context.Context, in EconomicIndicatorInput) ([]types.EconomicIndicator, error) {
			return e.Indicator(ctx, in.Name, in.From, in.To)
		})
}

func (b *builder) calendar() {
	b.category = CategoryCalendar
	c := b.client.Calendar

	add(b, "getEarningsCalendar",
		"Upcoming and past earnings announcements with EPS and revenue estimates. The window is at most three months.",
		func(ctx context.Context, in DateRangeInput) ([]types.EarningsEvent, error) {
			return c.Earnings(ctx, in.From, in.To)
		})
	add(b, "getEconomicCalendar",
		"Scheduled economic data releases with previous, estimated and actual values.",
		func(ctx context.Context, in DateRangeInput) ([]types.EconomicEvent, error) {
			return c.Economic(ctx, in.From, in.To)
		})
	add(b, "getIPOCalendar",
		"Upcoming and recent initial public offerings.",
		func(ctx context.Context, in DateRangeInput) ([]types.IPOEvent, error) {
			return c.IPOs(ctx, in.From, in.To)
		})
	add(b, "getDividendCalendar",
		"Upcoming ex-dividend, record and payment dates.",
		func(ctx context.Context, in DateRangeInput) ([]types.DividendEvent, error) {
			return c.Dividends(ctx, in.From, in.To)
		})
	add(b, "getSplitCalendar",
		"Upcoming and recent stock splits.",
		func(ctx context.Context, in DateRangeInput) ([]types.SplitEvent, error) {
			return c.Splits(ctx, in.From, in.To)
		})
}
