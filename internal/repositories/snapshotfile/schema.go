package snapshotfile

// document is the YAML layout of a ledger snapshot file.
type document struct {
	Company         companyDoc          `yaml:"company"`
	Accounts        []accountDoc        `yaml:"accounts"`
	Periods         []periodDoc         `yaml:"periods"`
	Rates           []rateDoc           `yaml:"rates"`
	InitialBalances []initialBalanceDoc `yaml:"initialBalances"`
	Journals        []journalDoc        `yaml:"journals"`
}

type companyDoc struct {
	ID                 string      `yaml:"id"`
	Name               string      `yaml:"name"`
	LegalName          string      `yaml:"legalName"`
	RegistrationNumber string      `yaml:"registrationNumber"`
	Country            string      `yaml:"country"`
	Settings           settingsDoc `yaml:"settings"`
}

// settingsDoc leaves zero or nil fields at the company defaults.
type settingsDoc struct {
	ReportingCurrency    string `yaml:"reportingCurrency"`
	FiscalYearStartMonth int    `yaml:"fiscalYearStartMonth"`
	FiscalYearStartDay   int    `yaml:"fiscalYearStartDay"`
	AccountingMode       string `yaml:"accountingMode"`
	TaxBelowTheLine      *bool  `yaml:"taxBelowTheLine"`
	ShowComparatives     *bool  `yaml:"showComparatives"`
	StaleTransactionDays *int   `yaml:"staleTransactionDays"`
}

type accountDoc struct {
	ID             string `yaml:"id"`
	Code           string `yaml:"code"`
	Name           string `yaml:"name"`
	Type           string `yaml:"type"`
	Category       string `yaml:"category"`
	Classification string `yaml:"classification"`
	Kind           string `yaml:"kind"`
	Currency       string `yaml:"currency"`
	Inactive       bool   `yaml:"inactive"`
}

type periodDoc struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Start      string `yaml:"start"`
	End        string `yaml:"end"`
	FiscalYear int    `yaml:"fiscalYear"`
	Type       string `yaml:"type"`
	Status     string `yaml:"status"`
}

type rateDoc struct {
	Code      string `yaml:"code"`
	Rate      string `yaml:"rate"`
	Base      bool   `yaml:"base"`
	Effective string `yaml:"effective"`
}

type initialBalanceDoc struct {
	Account   string `yaml:"account"`
	Currency  string `yaml:"currency"`
	Amount    string `yaml:"amount"`
	Effective string `yaml:"effective"`
}

type journalDoc struct {
	ID               string    `yaml:"id"`
	Date             string    `yaml:"date"`
	Description      string    `yaml:"description"`
	Currency         string    `yaml:"currency"`
	Source           string    `yaml:"source"`
	Status           string    `yaml:"status"`
	OriginalJournal  string    `yaml:"originalJournal"`
	ReversingJournal string    `yaml:"reversingJournal"`
	Lines            []lineDoc `yaml:"lines"`
}

type lineDoc struct {
	Account  string `yaml:"account"`
	Type     string `yaml:"type"`
	Amount   string `yaml:"amount"`
	Currency string `yaml:"currency"`
	Notes    string `yaml:"notes"`
}
