package types

// CompanyProfile describes a listed company.
type CompanyProfile struct {
	Symbol            string  `json:"symbol"`
	Price             float64 `json:"price"`
	Beta              float64 `json:"beta"`
	VolAvg            int64   `json:"volAvg"`
	MktCap            float64 `json:"mktCap"`
	LastDiv           float64 `json:"lastDiv"`
	Range             string  `json:"range"`
	Changes           float64 `json:"changes"`
	CompanyName       string  `json:"companyName"`
	Currency          string  `json:"currency"`
	CIK               string  `json:"cik"`
	ISIN              string  `json:"isin"`
	CUSIP             string  `json:"cusip"`
	Exchange          string  `json:"exchange"`
	ExchangeShortName string  `json:"exchangeShortName"`
	Industry          string  `json:"industry"`
	Website           string  `json:"website"`
	Description       string  `json:"description"`
	CEO               string  `json:"ceo"`
	Sector            string  `json:"sector"`
	Country           string  `json:"country"`
	FullTimeEmployees string  `json:"fullTimeEmployees"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	Zip               string  `json:"zip"`
	Image             string  `json:"image"`
	IPODate           string  `json:"ipoDate"`
	DefaultImage      bool    `json:"defaultImage"`
	IsETF             bool    `json:"isEtf"`
	IsActivelyTrading bool    `json:"isActivelyTrading"`
	IsADR             bool    `json:"isAdr"`
	IsFund            bool    `json:"isFund"`
}

// KeyExecutive is a member of a company's management.
type KeyExecutive struct {
	Title       string   `json:"title"`
	Name        string   `json:"name"`
	Pay         *float64 `json:"pay"`
	CurrencyPay string   `json:"currencyPay"`
	Gender      string   `json:"gender"`
	YearBorn    *int     `json:"yearBorn"`
	TitleSince  *int64   `json:"titleSince"`
}

// ExecutiveCompensation is one filed compensation record.
type ExecutiveCompensation struct {
	CIK                       string  `json:"cik"`
	Symbol                    string  `json:"symbol"`
	CompanyName               string  `json:"companyName"`
	IndustryTitle             string  `json:"industryTitle"`
	AcceptedDate              string  `json:"acceptedDate"`
	FilingDate                string  `json:"filingDate"`
	NameAndPosition           string  `json:"nameAndPosition"`
	Year                      int     `json:"year"`
	Salary                    float64 `json:"salary"`
	Bonus                     float64 `json:"bonus"`
	StockAward                float64 `json:"stock_award"`
	IncentivePlanCompensation float64 `json:"incentive_plan_compensation"`
	AllOtherCompensation      float64 `json:"all_other_compensation"`
	Total                     float64 `json:"total"`
	URL                       string  `json:"url"`
}

// CompanyNote is a debt instrument issued by a company.
type CompanyNote struct {
	CIK      string `json:"cik"`
	Symbol   string `json:"symbol"`
	Title    string `json:"title"`
	Exchange string `json:"exchange"`
}

// EmployeeCount is the headcount reported in one filing.
type EmployeeCount struct {
	Symbol         string `json:"symbol"`
	CIK            string `json:"cik"`
	AcceptanceTime string `json:"acceptanceTime"`
	PeriodOfReport string `json:"periodOfReport"`
	CompanyName    string `json:"companyName"`
	FormType       string `json:"formType"`
	FilingDate     string `json:"filingDate"`
	EmployeeCount  int64  `json:"employeeCount"`
	Source         string `json:"source"`
}

// SharesFloat describes the free float of a company's shares.
type SharesFloat struct {
	Symbol            string  `json:"symbol"`
	FreeFloat         float64 `json:"freeFloat"`
	FloatShares       float64 `json:"floatShares"`
	OutstandingShares float64 `json:"outstandingShares"`
	Source            string  `json:"source"`
	Date              string  `json:"date"`
}

// EarningsCallTranscript is the text of one earnings call.
type EarningsCallTranscript struct {
	Symbol  string `json:"symbol"`
	Quarter int    `json:"quarter"`
	Year    int    `json:"year"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// TranscriptDate identifies an available earnings call transcript.
type TranscriptDate struct {
	Quarter int    `json:"quarter"`
	Year    int    `json:"year"`
	Date    string `json:"date"`
}
