package types

// StatementHeader holds the fields every financial statement shares.
type StatementHeader struct {
	Date             string `json:"date"`
	Symbol           string `json:"symbol"`
	ReportedCurrency string `json:"reportedCurrency"`
	CIK              string `json:"cik"`
	FillingDate      string `json:"fillingDate"`
	AcceptedDate     string `json:"acceptedDate"`
	CalendarYear     string `json:"calendarYear"`
	Period           string `json:"period"`
	Link             string `json:"link,omitempty"`
	FinalLink        string `json:"finalLink,omitempty"`
}

// IncomeStatement is one period of a company's income statement.
type IncomeStatement struct {
	StatementHeader
	Revenue                                 float64 `json:"revenue"`
	CostOfRevenue                           float64 `json:"costOfRevenue"`
	GrossProfit                             float64 `json:"grossProfit"`
	GrossProfitRatio                        float64 `json:"grossProfitRatio"`
	ResearchAndDevelopmentExpenses          float64 `json:"researchAndDevelopmentExpenses"`
	GeneralAndAdministrativeExpenses        float64 `json:"generalAndAdministrativeExpenses"`
	SellingAndMarketingExpenses             float64 `json:"sellingAndMarketingExpenses"`
	SellingGeneralAndAdministrativeExpenses float64 `json:"sellingGeneralAndAdministrativeExpenses"`
	OperatingExpenses                       float64 `json:"operatingExpenses"`
	CostAndExpenses                         float64 `json:"costAndExpenses"`
	InterestIncome                          float64 `json:"interestIncome"`
	InterestExpense                         float64 `json:"interestExpense"`
	DepreciationAndAmortization             float64 `json:"depreciationAndAmortization"`
	EBITDA                                  float64 `json:"ebitda"`
	EBITDARatio                             float64 `json:"ebitdaratio"`
	OperatingIncome                         float64 `json:"operatingIncome"`
	OperatingIncomeRatio                    float64 `json:"operatingIncomeRatio"`
	IncomeBeforeTax                         float64 `json:"incomeBeforeTax"`
	IncomeBeforeTaxRatio                    float64 `json:"incomeBeforeTaxRatio"`
	IncomeTaxExpense                        float64 `json:"incomeTaxExpense"`
	NetIncome                               float64 `json:"netIncome"`
	NetIncomeRatio                          float64 `json:"netIncomeRatio"`
	EPS                                     float64 `json:"eps"`
	EPSDiluted                              float64 `json:"epsdiluted"`
	WeightedAverageShsOut                   float64 `json:"weightedAverageShsOut"`
	WeightedAverageShsOutDil                float64 `json:"weightedAverageShsOutDil"`
}

// BalanceSheet is one period of a company's balance sheet.
type BalanceSheet struct {
	StatementHeader
	CashAndCashEquivalents                float64 `json:"cashAndCashEquivalents"`
	ShortTermInvestments                  float64 `json:"shortTermInvestments"`
	CashAndShortTermInvestments           float64 `json:"cashAndShortTermInvestments"`
	NetReceivables                        float64 `json:"netReceivables"`
	Inventory                             float64 `json:"inventory"`
	TotalCurrentAssets                    float64 `json:"totalCurrentAssets"`
	PropertyPlantEquipmentNet             float64 `json:"propertyPlantEquipmentNet"`
	Goodwill                              float64 `json:"goodwill"`
	IntangibleAssets                      float64 `json:"intangibleAssets"`
	LongTermInvestments                   float64 `json:"longTermInvestments"`
	TotalNonCurrentAssets                 float64 `json:"totalNonCurrentAssets"`
	TotalAssets                           float64 `json:"totalAssets"`
	AccountPayables                       float64 `json:"accountPayables"`
	ShortTermDebt                         float64 `json:"shortTermDebt"`
	DeferredRevenue                       float64 `json:"deferredRevenue"`
	TotalCurrentLiabilities               float64 `json:"totalCurrentLiabilities"`
	LongTermDebt                          float64 `json:"longTermDebt"`
	TotalNonCurrentLiabilities            float64 `json:"totalNonCurrentLiabilities"`
	TotalLiabilities                      float64 `json:"totalLiabilities"`
	CommonStock                           float64 `json:"commonStock"`
	RetainedEarnings                      float64 `json:"retainedEarnings"`
	TotalStockholdersEquity               float64 `json:"totalStockholdersEquity"`
	TotalEquity                           float64 `json:"totalEquity"`
	TotalLiabilitiesAndStockholdersEquity float64 `json:"totalLiabilitiesAndStockholdersEquity"`
	TotalInvestments                      float64 `json:"totalInvestments"`
	TotalDebt                             float64 `json:"totalDebt"`
	NetDebt                               float64 `json:"netDebt"`
}

// CashFlowStatement is one period of a company's cash-flow statement.
type CashFlowStatement struct {
	StatementHeader
	NetIncome                                float64 `json:"netIncome"`
	DepreciationAndAmortization              float64 `json:"depreciationAndAmortization"`
	StockBasedCompensation                   float64 `json:"stockBasedCompensation"`
	ChangeInWorkingCapital                   float64 `json:"changeInWorkingCapital"`
	NetCashProvidedByOperatingActivities     float64 `json:"netCashProvidedByOperatingActivities"`
	InvestmentsInPropertyPlantAndEquipment   float64 `json:"investmentsInPropertyPlantAndEquipment"`
	AcquisitionsNet                          float64 `json:"acquisitionsNet"`
	NetCashUsedForInvestingActivites         float64 `json:"netCashUsedForInvestingActivites"`
	DebtRepayment                            float64 `json:"debtRepayment"`
	CommonStockRepurchased                   float64 `json:"commonStockRepurchased"`
	DividendsPaid                            float64 `json:"dividendsPaid"`
	NetCashUsedProvidedByFinancingActivities float64 `json:"netCashUsedProvidedByFinancingActivities"`
	NetChangeInCash                          float64 `json:"netChangeInCash"`
	CashAtEndOfPeriod                        float64 `json:"cashAtEndOfPeriod"`
	OperatingCashFlow                        float64 `json:"operatingCashFlow"`
	CapitalExpenditure                       float64 `json:"capitalExpenditure"`
	FreeCashFlow                             float64 `json:"freeCashFlow"`
}

// KeyMetrics are per-share and valuation metrics for one period.
type KeyMetrics struct {
	Symbol                    string  `json:"symbol"`
	Date                      string  `json:"date"`
	CalendarYear              string  `json:"calendarYear"`
	Period                    string  `json:"period"`
	RevenuePerShare           float64 `json:"revenuePerShare"`
	NetIncomePerShare         float64 `json:"netIncomePerShare"`
	OperatingCashFlowPerShare float64 `json:"operatingCashFlowPerShare"`
	FreeCashFlowPerShare      float64 `json:"freeCashFlowPerShare"`
	BookValuePerShare         float64 `json:"bookValuePerShare"`
	MarketCap                 float64 `json:"marketCap"`
	EnterpriseValue           float64 `json:"enterpriseValue"`
	PERatio                   float64 `json:"peRatio"`
	PriceToSalesRatio         float64 `json:"priceToSalesRatio"`
	PBRatio                   float64 `json:"pbRatio"`
	EVToSales                 float64 `json:"evToSales"`
	EnterpriseValueOverEBITDA float64 `json:"enterpriseValueOverEBITDA"`
	EarningsYield             float64 `json:"earningsYield"`
	FreeCashFlowYield         float64 `json:"freeCashFlowYield"`
	DebtToEquity              float64 `json:"debtToEquity"`
	CurrentRatio              float64 `json:"currentRatio"`
	DividendYield             float64 `json:"dividendYield"`
	PayoutRatio               float64 `json:"payoutRatio"`
	ROE                       float64 `json:"roe"`
	ROIC                      float64 `json:"roic"`
}

// FinancialRatios are profitability, liquidity and leverage ratios for one period.
type FinancialRatios struct {
	Symbol                  string  `json:"symbol"`
	Date                    string  `json:"date"`
	CalendarYear            string  `json:"calendarYear"`
	Period                  string  `json:"period"`
	CurrentRatio            float64 `json:"currentRatio"`
	QuickRatio              float64 `json:"quickRatio"`
	CashRatio               float64 `json:"cashRatio"`
	GrossProfitMargin       float64 `json:"grossProfitMargin"`
	OperatingProfitMargin   float64 `json:"operatingProfitMargin"`
	NetProfitMargin         float64 `json:"netProfitMargin"`
	ReturnOnAssets          float64 `json:"returnOnAssets"`
	ReturnOnEquity          float64 `json:"returnOnEquity"`
	ReturnOnCapitalEmployed float64 `json:"returnOnCapitalEmployed"`
	DebtRatio               float64 `json:"debtRatio"`
	DebtEquityRatio         float64 `json:"debtEquityRatio"`
	InterestCoverage        float64 `json:"interestCoverage"`
	AssetTurnover           float64 `json:"assetTurnover"`
	PriceEarningsRatio      float64 `json:"priceEarningsRatio"`
	PriceToBookRatio        float64 `json:"priceToBookRatio"`
	PriceToSalesRatio       float64 `json:"priceToSalesRatio"`
	DividendYield           float64 `json:"dividendYield"`
	PayoutRatio             float64 `json:"payoutRatio"`
}

// EnterpriseValue breaks down a company's enterprise value on one date.
type EnterpriseValue struct {
	Symbol                      string  `json:"symbol"`
	Date                        string  `json:"date"`
	StockPrice                  float64 `json:"stockPrice"`
	NumberOfShares              float64 `json:"numberOfShares"`
	MarketCapitalization        float64 `json:"marketCapitalization"`
	MinusCashAndCashEquivalents float64 `json:"minusCashAndCashEquivalents"`
	AddTotalDebt                float64 `json:"addTotalDebt"`
	EnterpriseValue             float64 `json:"enterpriseValue"`
}

// FinancialGrowth is the period-over-period growth of headline figures.
type FinancialGrowth struct {
	Symbol                  string  `json:"symbol"`
	Date                    string  `json:"date"`
	CalendarYear            string  `json:"calendarYear"`
	Period                  string  `json:"period"`
	RevenueGrowth           float64 `json:"revenueGrowth"`
	GrossProfitGrowth       float64 `json:"grossProfitGrowth"`
	EBITGrowth              float64 `json:"ebitgrowth"`
	OperatingIncomeGrowth   float64 `json:"operatingIncomeGrowth"`
	NetIncomeGrowth         float64 `json:"netIncomeGrowth"`
	EPSGrowth               float64 `json:"epsgrowth"`
	EPSDilutedGrowth        float64 `json:"epsdilutedGrowth"`
	DividendsperShareGrowth float64 `json:"dividendsperShareGrowth"`
	OperatingCashFlowGrowth float64 `json:"operatingCashFlowGrowth"`
	FreeCashFlowGrowth      float64 `json:"freeCashFlowGrowth"`
	DebtGrowth              float64 `json:"debtGrowth"`
}

// EarningsSurprise compares reported and estimated EPS.
type EarningsSurprise struct {
	Date                string  `json:"date"`
	Symbol              string  `json:"symbol"`
	ActualEarningResult float64 `json:"actualEarningResult"`
	EstimatedEarning    float64 `json:"estimatedEarning"`
}
