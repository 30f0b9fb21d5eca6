package domain

// AccountingMode selects between a full chart of accounts and the
// simplified income/expense-only bookkeeping model.
type AccountingMode string

const (
	ModeFull       AccountingMode = "FULL"
	ModeSimplified AccountingMode = "SIMPLIFIED"
)

// IFRSSettings control statement presentation.
type IFRSSettings struct {
	TaxBelowTheLine      bool `json:"taxBelowTheLine"`
	ShowComparatives     bool `json:"showComparatives"`
	StaleTransactionDays int  `json:"staleTransactionDays"`
}

// CompanySettings hold the per-tenant reporting configuration.
type CompanySettings struct {
	ReportingCurrency    string         `json:"reportingCurrency"`
	FiscalYearStartMonth int            `json:"fiscalYearStartMonth"`
	FiscalYearStartDay   int            `json:"fiscalYearStartDay"`
	AccountingMode       AccountingMode `json:"accountingMode"`
	IFRS                 IFRSSettings   `json:"ifrs"`
}

// DefaultCompanySettings returns the settings applied to a new company.
func DefaultCompanySettings(reportingCurrency string) CompanySettings {
	return CompanySettings{
		ReportingCurrency:    reportingCurrency,
		FiscalYearStartMonth: 1,
		FiscalYearStartDay:   1,
		AccountingMode:       ModeFull,
		IFRS: IFRSSettings{
			TaxBelowTheLine:      true,
			ShowComparatives:     false,
			StaleTransactionDays: 30,
		},
	}
}

// CompanyInfo is the descriptive header printed on statements.
type CompanyInfo struct {
	Name               string `json:"name"`
	LegalName          string `json:"legalName"`
	RegistrationNumber string `json:"registrationNumber"`
	Country            string `json:"country"`
}

// Company is a tenant.
type Company struct {
	CompanyID string          `json:"companyID"`
	Info      CompanyInfo     `json:"info"`
	Settings  CompanySettings `json:"settings"`
	AuditFields
}
