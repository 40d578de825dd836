package types

// InsiderTrade is a Form 4 transaction of a company insider.
type InsiderTrade struct {
	Symbol                  string  `json:"symbol"`
	FilingDate              string  `json:"filingDate"`
	TransactionDate         string  `json:"transactionDate"`
	ReportingCIK            string  `json:"reportingCik"`
	TransactionType         string  `json:"transactionType"`
	SecuritiesOwned         float64 `json:"securitiesOwned"`
	CompanyCIK              string  `json:"companyCik"`
	ReportingName           string  `json:"reportingName"`
	TypeOfOwner             string  `json:"typeOfOwner"`
	AcquistionOrDisposition string  `json:"acquistionOrDisposition"`
	FormType                string  `json:"formType"`
	SecuritiesTransacted    float64 `json:"securitiesTransacted"`
	Price                   float64 `json:"price"`
	SecurityName            string  `json:"securityName"`
	Link                    string  `json:"link"`
}

// InsiderRosterEntry is a person filing as an insider of a company.
type InsiderRosterEntry struct {
	Owner           string `json:"owner"`
	TransactionDate string `json:"transactionDate"`
	TypeOfOwner     string `json:"typeOfOwner"`
}

// InstitutionalHolder is a 13F filer holding a security.
type InstitutionalHolder struct {
	Holder       string  `json:"holder"`
	Shares       float64 `json:"shares"`
	DateReported string  `json:"dateReported"`
	Change       float64 `json:"change"`
}

// CongressTrade is a disclosed trade of a senator or representative.
type CongressTrade struct {
	FirstName              string `json:"firstName,omitempty"`
	LastName               string `json:"lastName,omitempty"`
	Representative         string `json:"representative,omitempty"`
	Office                 string `json:"office,omitempty"`
	Link                   string `json:"link"`
	DateReceived           string `json:"dateRecieved,omitempty"`
	DisclosureDate         string `json:"disclosureDate,omitempty"`
	TransactionDate        string `json:"transactionDate"`
	Owner                  string `json:"owner"`
	AssetDescription       string `json:"assetDescription"`
	AssetType              string `json:"assetType"`
	Type                   string `json:"type"`
	Amount                 string `json:"amount"`
	Comment                string `json:"comment,omitempty"`
	Symbol                 string `json:"symbol"`
	District               string `json:"district,omitempty"`
	CapitalGainsOver200USD string `json:"capitalGainsOver200USD,omitempty"`
}
