package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/casualjim/fmp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints_Routing(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		body  string
		call  func(c *Client) error
		path  string
		query map[string]string
	}{
		{
			name: "quote batch",
			call: func(c *Client) error { _, err := c.Quote.GetMany(ctx, "aapl", "msft"); return err },
			path: "/api/v3/quote/AAPL,MSFT",
		},
		{
			name:  "quote history",
			body:  `{"symbol":"AAPL","historical":[]}`,
			call:  func(c *Client) error { _, err := c.Quote.History(ctx, "aapl", "2024-01-01", "2024-02-01"); return err },
			path:  "/api/v3/historical-price-full/AAPL",
			query: map[string]string{"from": "2024-01-01", "to": "2024-02-01"},
		},
		{
			name: "intraday",
			call: func(c *Client) error { _, err := c.Quote.Intraday(ctx, "aapl", types.Interval5Min, "", ""); return err },
			path: "/api/v3/historical-chart/5min/AAPL",
		},
		{
			name:  "executive compensation",
			call:  func(c *Client) error { _, err := c.Company.ExecutiveCompensation(ctx, "aapl"); return err },
			path:  "/api/v4/governance/executive_compensation",
			query: map[string]string{"symbol": "AAPL"},
		},
		{
			name: "income statement",
			call: func(c *Client) error {
				_, err := c.Financial.IncomeStatement(ctx, "aapl", StatementParams{Period: types.PeriodQuarter, Limit: 4})
				return err
			},
			path:  "/api/v3/income-statement/AAPL",
			query: map[string]string{"period": "quarter", "limit": "4"},
		},
		{
			name: "balance sheet",
			call: func(c *Client) error { _, err := c.Financial.BalanceSheet(ctx, "aapl", StatementParams{}); return err },
			path: "/api/v3/balance-sheet-statement/AAPL",
		},
		{
			name: "cash flow",
			call: func(c *Client) error { _, err := c.Financial.CashFlow(ctx, "aapl", StatementParams{}); return err },
			path: "/api/v3/cash-flow-statement/AAPL",
		},
		{
			name: "sector performance",
			call: func(c *Client) error { _, err := c.Market.SectorPerformance(ctx); return err },
			path: "/api/v3/sectors-performance",
		},
		{
			name: "most active",
			call: func(c *Client) error { _, err := c.Market.MostActive(ctx); return err },
			path: "/api/v3/stock_market/actives",
		},
		{
			name: "dividends",
			body: `{"symbol":"KO","historical":[{"date":"2024-03-14","dividend":0.485}]}`,
			call: func(c *Client) error { _, err := c.Stock.Dividends(ctx, "ko"); return err },
			path: "/api/v3/historical-price-full/stock_dividend/KO",
		},
		{
			name:  "etf info",
			body:  `[{"symbol":"SPY"}]`,
			call:  func(c *Client) error { _, err := c.ETF.Info(ctx, "spy"); return err },
			path:  "/api/v4/etf-info",
			query: map[string]string{"symbol": "SPY"},
		},
		{
			name:  "economic indicator",
			call:  func(c *Client) error { _, err := c.Economic.Indicator(ctx, "GDP", "", ""); return err },
			path:  "/api/v4/economic",
			query: map[string]string{"name": "GDP"},
		},
		{
			name:  "earnings calendar",
			call:  func(c *Client) error { _, err := c.Calendar.Earnings(ctx, "2024-01-01", "2024-01-31"); return err },
			path:  "/api/v3/earning_calendar",
			query: map[string]string{"from": "2024-01-01", "to": "2024-01-31"},
		},
		{
			name: "crypto list",
			call: func(c *Client) error { _, err := c.List.Cryptocurrencies(ctx); return err },
			path: "/api/v3/symbol/available-cryptocurrencies",
		},
		{
			name:  "insider trades",
			call:  func(c *Client) error { _, err := c.Insider.Trades(ctx, "aapl", 2); return err },
			path:  "/api/v4/insider-trading",
			query: map[string]string{"symbol": "AAPL", "page": "2"},
		},
		{
			name: "institutional holders",
			call: func(c *Client) error { _, err := c.Institutional.Holders(ctx, "aapl"); return err },
			path: "/api/v3/institutional-holder/AAPL",
		},
		{
			name:  "house trades",
			call:  func(c *Client) error { _, err := c.SenateHouse.HouseTrades(ctx, "aapl"); return err },
			path:  "/api/v4/senate-disclosure",
			query: map[string]string{"symbol": "AAPL"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.body
			if body == "" {
				body = `[]`
			}
			c, calls := fakeFMP(t, http.StatusOK, body)
			require.NoError(t, tt.call(c))
			require.Len(t, *calls, 1)
			got := (*calls)[0]
			assert.Equal(t, tt.path, got.path)
			assert.Equal(t, "test-key", got.query.Get("apikey"))
			for k, v := range tt.query {
				assert.Equal(t, v, got.query.Get(k), k)
			}
		})
	}
}

func TestEndpoints_RejectBeforeRequest(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		call func(c *Client) error
	}{
		{"empty symbol", func(c *Client) error { _, err := c.Quote.Get(ctx, " "); return err }},
		{"bad interval", func(c *Client) error { _, err := c.Quote.Intraday(ctx, "AAPL", "2min", "", ""); return err }},
		{"negative limit", func(c *Client) error {
			_, err := c.Financial.Ratios(ctx, "AAPL", StatementParams{Limit: -3})
			return err
		}},
		{"bad period", func(c *Client) error {
			_, err := c.Financial.KeyMetrics(ctx, "AAPL", StatementParams{Period: "weekly"})
			return err
		}},
		{"reversed dates", func(c *Client) error { _, err := c.Calendar.IPOs(ctx, "2024-05-01", "2024-04-01"); return err }},
		{"unknown indicator", func(c *Client) error { _, err := c.Economic.Indicator(ctx, "vibes", "", ""); return err }},
		{"bad quarter", func(c *Client) error { _, err := c.Company.Transcript(ctx, "AAPL", 2024, 5); return err }},
		{"negative page", func(c *Client) error { _, err := c.Insider.Trades(ctx, "AAPL", -1); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, calls := fakeFMP(t, http.StatusOK, `[]`)
			err := tt.call(c)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Empty(t, *calls)
		})
	}
}

func TestCompany_TranscriptDates(t *testing.T) {
	c, calls := fakeFMP(t, http.StatusOK, `[[4,2023,"2024-02-01 17:00:00"],[3,2023,"2023-11-02 17:00:00"],[1]]`)

	got, err := c.Company.TranscriptDates(context.Background(), "aapl")
	require.NoError(t, err)
	require.Len(t, *calls, 1)
	assert.Equal(t, "/api/v4/earning_call_transcript", (*calls)[0].path)
	assert.Equal(t, []types.TranscriptDate{
		{Quarter: 4, Year: 2023, Date: "2024-02-01 17:00:00"},
		{Quarter: 3, Year: 2023, Date: "2023-11-02 17:00:00"},
	}, got)
}

func TestQuote_Get(t *testing.T) {
	c, _ := fakeFMP(t, http.StatusOK, `[{"symbol":"AAPL","name":"Apple Inc.","price":190.25,"volume":1000}]`)

	q, err := c.Quote.Get(context.Background(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", q.Symbol)
	assert.InDelta(t, 190.25, q.Price, 1e-9)
}
