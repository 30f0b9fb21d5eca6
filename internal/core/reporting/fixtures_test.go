package reporting_test

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/core/reporting"
)

const testCompany = "company-1"

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func accID(code string) string {
	return "acc-" + code
}

// chartAccounts materialises the default chart for the test company.
func chartAccounts() []domain.Account {
	accounts := make([]domain.Account, 0, len(reporting.DefaultChart))
	for _, e := range reporting.DefaultChart {
		accounts = append(accounts, domain.Account{
			AccountID:      accID(e.Code),
			CompanyID:      testCompany,
			Code:           e.Code,
			Name:           e.Name,
			AccountType:    e.Type,
			Category:       e.Category,
			Classification: e.Classification,
			Kind:           e.Kind,
			CurrencyCode:   "USD",
			IsActive:       true,
		})
	}
	return accounts
}

func dr(code, amount string) domain.Transaction {
	return domain.Transaction{AccountID: accID(code), Amount: dec(amount), TransactionType: domain.Debit}
}

func cr(code, amount string) domain.Transaction {
	return domain.Transaction{AccountID: accID(code), Amount: dec(amount), TransactionType: domain.Credit}
}

func journal(id, date string, lines ...domain.Transaction) domain.Journal {
	j := domain.Journal{
		JournalID:    id,
		CompanyID:    testCompany,
		JournalDate:  day(date),
		CurrencyCode: "USD",
		SourceKind:   domain.SourceManual,
		Status:       domain.Posted,
	}
	j.CreatedAt = day(date)
	for i, l := range lines {
		l.TransactionID = fmt.Sprintf("%s-%d", id, i+1)
		l.JournalID = id
		j.Transactions = append(j.Transactions, l)
	}
	return j
}

func usdRates() []domain.CurrencyRate {
	return []domain.CurrencyRate{
		{Code: "USD", Rate: dec("1"), IsBase: true},
		{Code: "EUR", Rate: dec("1.1")},
	}
}

// openingBalances: A = 10000 (bank), L = 4000 (loan), E = 6000 (share capital).
func openingBalances() []domain.InitialBalance {
	return []domain.InitialBalance{
		{AccountID: accID("1010"), CompanyID: testCompany, CurrencyCode: "USD", Amount: dec("10000")},
		{AccountID: accID("2500"), CompanyID: testCompany, CurrencyCode: "USD", Amount: dec("4000")},
		{AccountID: accID("3000"), CompanyID: testCompany, CurrencyCode: "USD", Amount: dec("6000")},
	}
}

// tradingYear is a year of activity that yields net income 2400 and
// closing cash 8200 on top of the opening balances.
func tradingYear() []domain.Journal {
	return []domain.Journal{
		journal("j01", "2024-02-01", dr("1010", "5000"), cr("4000", "5000")),
		journal("j02", "2024-03-01", dr("6100", "2000"), cr("1010", "2000")),
		journal("j03", "2024-04-01", dr("1500", "3000"), cr("1010", "3000")),
		journal("j04", "2024-06-30", dr("6400", "500"), cr("1510", "500")),
		journal("j05", "2024-07-01", dr("1100", "1000"), cr("4000", "1000")),
		journal("j06", "2024-08-01", dr("2500", "1000"), cr("1010", "1000")),
		journal("j07", "2024-09-01", dr("3200", "500"), cr("1010", "500")),
		journal("j08", "2024-10-01", dr("5000", "800"), cr("2000", "800")),
		journal("j09", "2024-12-01", dr("8000", "300"), cr("1010", "300")),
	}
}

func year2024() domain.DateRange {
	return domain.DateRange{Start: day("2024-01-01"), End: day("2024-12-31")}
}

// newInput normalises journals against the default chart and returns an
// Input for calendar 2024 in USD.
func newInput(journals []domain.Journal) reporting.Input {
	accounts := chartAccounts()
	norm, err := reporting.Normalize(journals, accounts, nil, reporting.NormalizeOptions{})
	if err != nil {
		panic(err)
	}
	return reporting.Input{
		CompanyID:       testCompany,
		Period:          year2024(),
		Entries:         norm.Entries,
		Accounts:        accounts,
		InitialBalances: openingBalances(),
		Rates:           usdRates(),
		Settings:        domain.DefaultCompanySettings("USD"),
		CompanyInfo:     domain.CompanyInfo{Name: "Acme"},
		Now:             day("2024-12-31"),
	}
}

func issueCodes(issues []domain.ValidationIssue) []string {
	codes := make([]string, 0, len(issues))
	for _, i := range issues {
		codes = append(codes, i.Code)
	}
	return codes
}
