package types

// TreasuryRates are the US treasury yields of one day, in percent.
type TreasuryRates struct {
	Date   string  `json:"date"`
	Month1 float64 `json:"month1"`
	Month2 float64 `json:"month2"`
	Month3 float64 `json:"month3"`
	Month6 float64 `json:"month6"`
	Year1  float64 `json:"year1"`
	Year2  float64 `json:"year2"`
	Year3  float64 `json:"year3"`
	Year5  float64 `json:"year5"`
	Year7  float64 `json:"year7"`
	Year10 float64 `json:"year10"`
	Year20 float64 `json:"year20"`
	Year30 float64 `json:"year30"`
}

// EconomicIndicator is one observation of an economic series.
type EconomicIndicator struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Indicators FMP publishes through the economic endpoint.
var EconomicIndicatorNames = []string{
	"GDP",
	"realGDP",
	"nominalPotentialGDP",
	"realGDPPerCapita",
	"federalFunds",
	"CPI",
	"inflationRate",
	"inflation",
	"retailSales",
	"consumerSentiment",
	"durableGoods",
	"unemploymentRate",
	"totalNonfarmPayroll",
	"initialClaims",
	"industrialProductionTotalIndex",
	"newPrivatelyOwnedHousingUnitsStartedTotalUnits",
	"totalVehicleSales",
	"retailMoneyFunds",
	"smoothedUSRecessionProbabilities",
	"3MonthOr90DayRatesAndYieldsCertificatesOfDeposit",
	"commercialBankInterestRateOnCreditCardPlansAllAccounts",
	"30YearFixedRateMortgageAverage",
	"15YearFixedRateMortgageAverage",
}
