package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// IsBalanceSheet reports whether accounts of this type appear on the balance sheet.
func (t AccountType) IsBalanceSheet() bool {
	return t == Asset || t == Liability || t == Equity
}

// AccountClassification is the IFRS current / non-current split.
type AccountClassification string

const (
	ClassificationUnset         AccountClassification = ""
	ClassificationCurrent       AccountClassification = "CURRENT"
	ClassificationNonCurrent    AccountClassification = "NON_CURRENT"
	ClassificationNotApplicable AccountClassification = "NOT_APPLICABLE"
)

// AccountKind tags accounts that mirror an external money holder.
// It is decided when the account is created and never re-derived.
type AccountKind string

const (
	KindGeneral AccountKind = "GENERAL"
	KindBank    AccountKind = "BANK"
	KindWallet  AccountKind = "WALLET"
)

// IsCash reports whether the kind represents a bank account or a wallet.
func (k AccountKind) IsCash() bool {
	return k == KindBank || k == KindWallet
}

// Account represents an entry in a company's chart of accounts.
type Account struct {
	AccountID      string                `json:"accountID"`
	CompanyID      string                `json:"companyID"`
	Code           string                `json:"code"`
	Name           string                `json:"name"`
	AccountType    AccountType           `json:"accountType"`
	Category       string                `json:"category"`
	Classification AccountClassification `json:"classification"`
	Kind           AccountKind           `json:"kind"`
	CurrencyCode   string                `json:"currencyCode"`
	Description    string                `json:"description"`
	IsActive       bool                  `json:"isActive"`
	AuditFields
}
