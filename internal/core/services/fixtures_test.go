package services_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/core/services"
)

const (
	testCompanyID = "company-1"
	testUserID    = "user-1"
)

var fixedNow = time.Date(2024, time.December, 31, 15, 30, 0, 0, time.UTC)

func clock() services.Option {
	return services.WithClock(func() time.Time { return fixedNow })
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCompany(mode domain.AccountingMode) *domain.Company {
	settings := domain.DefaultCompanySettings("USD")
	settings.AccountingMode = mode
	return &domain.Company{
		CompanyID: testCompanyID,
		Info:      domain.CompanyInfo{Name: "Acme Trading"},
		Settings:  settings,
	}
}

func testAccount(id, code string, t domain.AccountType, category string, kind domain.AccountKind) domain.Account {
	return domain.Account{
		AccountID:    id,
		CompanyID:    testCompanyID,
		Code:         code,
		Name:         category,
		AccountType:  t,
		Category:     category,
		Kind:         kind,
		CurrencyCode: "USD",
		IsActive:     true,
	}
}

func testLedgerAccounts() []domain.Account {
	return []domain.Account{
		testAccount("bank", "1010", domain.Asset, "Bank", domain.KindBank),
		testAccount("capital", "3000", domain.Equity, "Share Capital", domain.KindGeneral),
		testAccount("sales", "4000", domain.Revenue, "Sales", domain.KindGeneral),
		testAccount("rent", "6100", domain.Expense, "Rent", domain.KindGeneral),
	}
}

func line(accountID, amount string, t domain.TransactionType) domain.Transaction {
	return domain.Transaction{AccountID: accountID, Amount: dec(amount), TransactionType: t, CurrencyCode: "USD"}
}

func postedJournal(id, on string, lines ...domain.Transaction) domain.Journal {
	for i := range lines {
		lines[i].JournalID = id
		lines[i].TransactionID = id + "-" + string(rune('a'+i))
	}
	return domain.Journal{
		JournalID:    id,
		CompanyID:    testCompanyID,
		JournalDate:  date(on),
		Description:  id,
		CurrencyCode: "USD",
		SourceKind:   domain.SourceManual,
		Status:       domain.Posted,
		Transactions: lines,
		AuditFields:  domain.AuditFields{CreatedAt: date(on)},
	}
}

func usdBase() []domain.CurrencyRate {
	return []domain.CurrencyRate{{Code: "USD", Rate: decimal.NewFromInt(1), IsBase: true}}
}
