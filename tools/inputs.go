package tools

import (
	"strings"

	"github.com/casualjim/fmp/types"
)

// NoInput is the input of tools without parameters.
type NoInput struct{}

type SymbolInput struct {
	Symbol string `json:"symbol" description:"Stock ticker symbol, e.g. AAPL"`
}

type SymbolsInput struct {
	Symbols []string `json:"symbols" description:"Ticker symbols to quote, e.g. [\"AAPL\", \"MSFT\"]"`
}

type DateRangeInput struct {
	From string `json:"from,omitempty" description:"Start date, YYYY-MM-DD"`
	To   string `json:"to,omitempty" description:"End date, YYYY-MM-DD"`
}

type HistoryInput struct {
	SymbolInput
	DateRangeInput
}

type IntradayInput struct {
	SymbolInput
	Interval types.Interval `json:"interval" enum:"1min,5min,15min,30min,1hour,4hour" default:"1hour" description:"Bar size"`
	DateRangeInput
}

type StatementInput struct {
	SymbolInput
	Period types.Period `json:"period" enum:"annual,quarter" default:"annual" description:"Reporting period"`
	Limit  int          `json:"limit" default:"5" minimum:"1" maximum:"120" description:"Number of periods to return, newest first"`
}

type TranscriptInput struct {
	SymbolInput
	Year    int `json:"year" minimum:"1990" description:"Fiscal year of the call"`
	Quarter int `json:"quarter" enum:"1,2,3,4" description:"Fiscal quarter of the call"`
}

// LimitInput caps long result lists.
type LimitInput struct {
	Limit int `json:"limit" default:"10" minimum:"1" maximum:"100" description:"Maximum number of entries to return"`
}

type SymbolLimitInput struct {
	SymbolInput
	Limit int `json:"limit" default:"20" minimum:"1" maximum:"500" description:"Maximum number of entries to return"`
}

type ListInput struct {
	Query string `json:"query,omitempty" description:"Case insensitive filter on symbol or name"`
	Limit int    `json:"limit" default:"50" minimum:"1" maximum:"1000" description:"Maximum number of symbols to return"`
}

type EconomicIndicatorInput struct {
	Name string `json:"name" description:"Indicator to fetch" enum:"GDP,realGDP,nominalPotentialGDP,realGDPPerCapita,federalFunds,CPI,inflationRate,inflation,retailSales,consumerSentiment,durableGoods,unemploymentRate,totalNonfarmPayroll,initialClaims,industrialProductionTotalIndex,newPrivatelyOwnedHousingUnitsStartedTotalUnits,totalVehicleSales,retailMoneyFunds,smoothedUSRecessionProbabilities,3MonthOr90DayRatesAndYieldsCertificatesOfDeposit,commercialBankInterestRateOnCreditCardPlansAllAccounts,30YearFixedRateMortgageAverage,15YearFixedRateMortgageAverage"`
	DateRangeInput
}

type InsiderTradesInput struct {
	SymbolInput
	Page int `json:"page" default:"0" minimum:"0" description:"Result page, zero based, 100 trades per page"`
}

func top[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func filterSymbols(symbols []types.Symbol, query string, limit int) []types.Symbol {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return top(symbols, limit)
	}
	out := make([]types.Symbol, 0, limit)
	for _, s := range symbols {
		if strings.Contains(strings.ToLower(s.Symbol), query) || strings.Contains(strings.ToLower(s.Name), query) {
			out = append(out, s)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
