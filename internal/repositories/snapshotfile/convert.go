package snapshotfile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

func fromDocument(doc document) (*Store, error) {
	if strings.TrimSpace(doc.Company.ID) == "" {
		return nil, fmt.Errorf("%w: company.id is required", apperrors.ErrValidation)
	}
	s := &Store{company: toCompany(doc.Company)}
	companyID := s.company.CompanyID

	for i, a := range doc.Accounts {
		if a.ID == "" {
			return nil, fmt.Errorf("%w: accounts[%d].id is required", apperrors.ErrValidation, i)
		}
		s.accounts = append(s.accounts, domain.Account{
			AccountID:      a.ID,
			CompanyID:      companyID,
			Code:           a.Code,
			Name:           a.Name,
			AccountType:    domain.AccountType(strings.ToUpper(a.Type)),
			Category:       a.Category,
			Classification: domain.AccountClassification(strings.ToUpper(a.Classification)),
			Kind:           kindOrGeneral(a.Kind),
			CurrencyCode:   upper(a.Currency),
			IsActive:       !a.Inactive,
		})
	}

	for i, p := range doc.Periods {
		field := "periods[" + strconv.Itoa(i) + "]"
		start, err := parseDate(field+".start", p.Start)
		if err != nil {
			return nil, err
		}
		end, err := parseDate(field+".end", p.End)
		if err != nil {
			return nil, err
		}
		status := domain.PeriodStatus(strings.ToUpper(p.Status))
		if status == "" {
			status = domain.PeriodOpen
		}
		s.periods = append(s.periods, domain.Period{
			PeriodID:   p.ID,
			CompanyID:  companyID,
			Name:       p.Name,
			StartDate:  start,
			EndDate:    end,
			FiscalYear: p.FiscalYear,
			PeriodType: domain.PeriodType(strings.ToUpper(p.Type)),
			Status:     status,
		})
	}

	for i, r := range doc.Rates {
		field := "rates[" + strconv.Itoa(i) + "]"
		rate, err := parseAmount(field+".rate", r.Rate)
		if err != nil {
			return nil, err
		}
		effective, err := parseOptionalDate(field+".effective", r.Effective)
		if err != nil {
			return nil, err
		}
		s.rates = append(s.rates, domain.CurrencyRate{
			CompanyID:     companyID,
			Code:          upper(r.Code),
			Rate:          rate,
			IsBase:        r.Base,
			EffectiveDate: effective,
		})
	}

	for i, b := range doc.InitialBalances {
		field := "initialBalances[" + strconv.Itoa(i) + "]"
		amount, err := parseAmount(field+".amount", b.Amount)
		if err != nil {
			return nil, err
		}
		effective, err := parseOptionalDate(field+".effective", b.Effective)
		if err != nil {
			return nil, err
		}
		s.initials = append(s.initials, domain.InitialBalance{
			InitialBalanceID: fmt.Sprintf("ib-%d", i+1),
			CompanyID:        companyID,
			AccountID:        b.Account,
			CurrencyCode:     upper(b.Currency),
			Amount:           amount,
			EffectiveDate:    effective,
		})
	}

	for i, j := range doc.Journals {
		journal, err := toJournal(companyID, i, j)
		if err != nil {
			return nil, err
		}
		s.journals = append(s.journals, journal)
	}
	return s, nil
}

func toCompany(c companyDoc) domain.Company {
	settings := domain.DefaultCompanySettings("USD")
	if cur := upper(c.Settings.ReportingCurrency); cur != "" {
		settings.ReportingCurrency = cur
	}
	if c.Settings.FiscalYearStartMonth != 0 {
		settings.FiscalYearStartMonth = c.Settings.FiscalYearStartMonth
	}
	if c.Settings.FiscalYearStartDay != 0 {
		settings.FiscalYearStartDay = c.Settings.FiscalYearStartDay
	}
	if mode := strings.ToUpper(c.Settings.AccountingMode); mode != "" {
		settings.AccountingMode = domain.AccountingMode(mode)
	}
	if c.Settings.TaxBelowTheLine != nil {
		settings.IFRS.TaxBelowTheLine = *c.Settings.TaxBelowTheLine
	}
	if c.Settings.ShowComparatives != nil {
		settings.IFRS.ShowComparatives = *c.Settings.ShowComparatives
	}
	if c.Settings.StaleTransactionDays != nil {
		settings.IFRS.StaleTransactionDays = *c.Settings.StaleTransactionDays
	}
	return domain.Company{
		CompanyID: c.ID,
		Info: domain.CompanyInfo{
			Name:               c.Name,
			LegalName:          c.LegalName,
			RegistrationNumber: c.RegistrationNumber,
			Country:            c.Country,
		},
		Settings: settings,
	}
}

func toJournal(companyID string, idx int, j journalDoc) (domain.Journal, error) {
	field := "journals[" + strconv.Itoa(idx) + "]"
	if j.ID == "" {
		return domain.Journal{}, fmt.Errorf("%w: %s.id is required", apperrors.ErrValidation, field)
	}
	date, err := parseDate(field+".date", j.Date)
	if err != nil {
		return domain.Journal{}, err
	}

	journal := domain.Journal{
		JournalID:    j.ID,
		CompanyID:    companyID,
		JournalDate:  date,
		Description:  j.Description,
		CurrencyCode: upper(j.Currency),
		SourceKind:   domain.SourceKind(strings.ToUpper(j.Source)),
		Status:       domain.JournalStatus(strings.ToUpper(j.Status)),
		Amount:       decimal.Zero,
	}
	if journal.SourceKind == "" {
		journal.SourceKind = domain.SourceManual
	}
	if journal.Status == "" {
		journal.Status = domain.Posted
	}
	if j.OriginalJournal != "" {
		orig := j.OriginalJournal
		journal.OriginalJournalID = &orig
	}
	if j.ReversingJournal != "" {
		rev := j.ReversingJournal
		journal.ReversingJournalID = &rev
	}
	// Document order breaks ties between journals on the same date.
	journal.CreatedAt = date.Add(time.Duration(idx) * time.Second)

	for k, l := range j.Lines {
		lineField := fmt.Sprintf("%s.lines[%d]", field, k)
		amount, err := parseAmount(lineField+".amount", l.Amount)
		if err != nil {
			return domain.Journal{}, err
		}
		txnType := domain.TransactionType(strings.ToUpper(l.Type))
		if txnType != domain.Debit && txnType != domain.Credit {
			return domain.Journal{}, fmt.Errorf("%w: %s.type must be DEBIT or CREDIT", apperrors.ErrValidation, lineField)
		}
		currency := upper(l.Currency)
		if currency == "" {
			currency = journal.CurrencyCode
		}
		if txnType == domain.Debit {
			journal.Amount = journal.Amount.Add(amount)
		}
		journal.Transactions = append(journal.Transactions, domain.Transaction{
			TransactionID:   fmt.Sprintf("%s-%d", j.ID, k+1),
			JournalID:       j.ID,
			AccountID:       l.Account,
			Amount:          amount,
			TransactionType: txnType,
			CurrencyCode:    currency,
			Notes:           l.Notes,
		})
	}
	return journal, nil
}

func kindOrGeneral(raw string) domain.AccountKind {
	if k := domain.AccountKind(strings.ToUpper(raw)); k != "" {
		return k
	}
	return domain.KindGeneral
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
