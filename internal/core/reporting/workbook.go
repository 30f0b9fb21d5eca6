package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

// Options tune how statement generation treats bad input.
type Options struct {
	// SkipUnconvertible excludes entries in currencies missing from the rate
	// table and reports a warning. By default generation aborts.
	SkipUnconvertible bool
	// SkipInvalid excludes entries and balances on unknown or unclassifiable
	// accounts and reports a warning. By default generation aborts.
	SkipInvalid bool
}

// Input is the complete snapshot a statement run works on. All I/O happens
// before it is built.
type Input struct {
	CompanyID       string
	Period          domain.DateRange
	PriorPeriod     *domain.DateRange
	Entries         []domain.LedgerEntry
	Accounts        []domain.Account
	InitialBalances []domain.InitialBalance
	Rates           []domain.CurrencyRate
	Settings        domain.CompanySettings
	CompanyInfo     domain.CompanyInfo
	Options         Options
	// Issues raised upstream, e.g. by Normalize, are carried into every result.
	Issues []domain.ValidationIssue
	// Now drives data freshness checks and stamps the bundle. Zero means the
	// period end.
	Now time.Time
}

type movement struct {
	date   time.Time
	amount decimal.Decimal
}

// Workbook is the validated, classified and currency-converted form of an
// Input. It is read-only after Prepare and safe for concurrent builders.
type Workbook struct {
	companyID string
	company   domain.CompanyInfo
	period    domain.DateRange
	prior     *domain.DateRange
	currency  string
	settings  domain.CompanySettings
	rates     *RateTable

	accounts []domain.Account
	classes  map[string]Classification

	entries  []domain.LedgerEntry
	initials []domain.InitialBalance

	movements map[string][]movement // reporting currency, by account
	openings  map[string][]movement // reporting currency initial balances, by account

	issues []domain.ValidationIssue
	now    time.Time
}

// Prepare validates the input and builds a Workbook. Input errors (bad
// range, bad rate table, unknown currency or account) abort unless the
// matching Options flag asks for the record to be skipped.
func Prepare(in Input) (*Workbook, error) {
	if err := validateRange(in.Period, "period"); err != nil {
		return nil, err
	}
	if in.PriorPeriod != nil {
		if err := validateRange(*in.PriorPeriod, "prior period"); err != nil {
			return nil, err
		}
	}

	rates, err := NewRateTable(in.Rates)
	if err != nil {
		return nil, err
	}

	currency := NormalizeCurrency(in.Settings.ReportingCurrency)
	if currency == "" {
		currency = rates.Base()
	}
	if !rates.Has(currency) {
		return nil, fmt.Errorf("%w: reporting currency %s", apperrors.ErrUnknownCurrency, currency)
	}

	mode := in.Settings.AccountingMode
	if mode == "" {
		mode = domain.ModeFull
	}

	w := &Workbook{
		companyID: in.CompanyID,
		company:   in.CompanyInfo,
		period:    domain.NewDateRange(in.Period.Start, in.Period.End),
		currency:  currency,
		settings:  in.Settings,
		rates:     rates,
		classes:   make(map[string]Classification, len(in.Accounts)),
		movements: make(map[string][]movement),
		openings:  make(map[string][]movement),
	}
	w.settings.AccountingMode = mode
	w.issues = append(w.issues, in.Issues...)
	w.now = in.Now.UTC()
	if in.Now.IsZero() {
		w.now = w.period.End
	}
	if in.PriorPeriod != nil {
		p := domain.NewDateRange(in.PriorPeriod.Start, in.PriorPeriod.End)
		w.prior = &p
	}

	known := make(map[string]bool, len(in.Accounts))
	hidden := 0
	for _, acc := range in.Accounts {
		known[acc.AccountID] = true
		if mode == domain.ModeSimplified && acc.AccountType.IsBalanceSheet() {
			hidden++
			continue
		}
		c, issues, err := Classify(acc, mode)
		if err != nil {
			if !in.Options.SkipInvalid {
				return nil, err
			}
			w.issues = append(w.issues, skippedIssue("UNCLASSIFIABLE_ACCOUNT", err))
			continue
		}
		w.issues = append(w.issues, issues...)
		w.classes[acc.AccountID] = c
		w.accounts = append(w.accounts, acc)
	}
	sortAccounts(w.accounts)
	if hidden > 0 {
		w.issues = append(w.issues, domain.ValidationIssue{
			Severity: domain.SeverityInfo,
			Code:     "SIMPLIFIED_MODE",
			Message:  fmt.Sprintf("%d balance sheet account(s) ignored because the company uses simplified accounting", hidden),
		})
	}

	for _, e := range in.Entries {
		if _, ok := w.classes[e.AccountID]; !ok {
			if known[e.AccountID] {
				continue
			}
			err := fmt.Errorf("%w: %s referenced by entry %s", apperrors.ErrAccountNotFound, e.AccountID, e.EntryID)
			if !in.Options.SkipInvalid {
				return nil, err
			}
			w.issues = append(w.issues, skippedIssue("UNKNOWN_ACCOUNT", err))
			continue
		}
		amount, err := rates.Convert(e.Amount, e.CurrencyCode, currency)
		if err != nil {
			err = fmt.Errorf("entry %s: %w", e.EntryID, err)
			if !in.Options.SkipUnconvertible {
				return nil, err
			}
			w.issues = append(w.issues, skippedIssue("UNCONVERTIBLE_ENTRY", err))
			continue
		}
		e.EntryDate = domain.DateOf(e.EntryDate)
		w.entries = append(w.entries, e)
		w.movements[e.AccountID] = append(w.movements[e.AccountID], movement{date: e.EntryDate, amount: amount})
	}
	SortEntries(w.entries)

	for _, ib := range in.InitialBalances {
		c, ok := w.classes[ib.AccountID]
		if !ok {
			if known[ib.AccountID] {
				continue
			}
			err := fmt.Errorf("%w: %s has an initial balance", apperrors.ErrAccountNotFound, ib.AccountID)
			if !in.Options.SkipInvalid {
				return nil, err
			}
			w.issues = append(w.issues, skippedIssue("UNKNOWN_ACCOUNT", err))
			continue
		}
		if c.Bucket.IsIncomeStatement() {
			w.issues = append(w.issues, domain.ValidationIssue{
				Severity:   domain.SeverityWarning,
				Code:       "INITIAL_BALANCE_IGNORED",
				Message:    fmt.Sprintf("Initial balance on income statement account %s was ignored", ib.AccountID),
				Suggestion: "Record opening profit in retained earnings instead",
			})
			continue
		}
		amount, err := rates.Convert(ib.Amount, ib.CurrencyCode, currency)
		if err != nil {
			err = fmt.Errorf("initial balance of %s: %w", ib.AccountID, err)
			if !in.Options.SkipUnconvertible {
				return nil, err
			}
			w.issues = append(w.issues, skippedIssue("UNCONVERTIBLE_ENTRY", err))
			continue
		}
		date := EarliestLedgerDate
		if !ib.EffectiveDate.IsZero() {
			date = domain.DateOf(ib.EffectiveDate)
		}
		w.initials = append(w.initials, ib)
		w.openings[ib.AccountID] = append(w.openings[ib.AccountID], movement{date: date, amount: amount})
	}

	w.issues = append(w.issues, w.freshnessIssues(in.Now)...)
	return w, nil
}

// Period returns the reporting period.
func (w *Workbook) Period() domain.DateRange { return w.period }

// PriorPeriod returns the comparative period, if any.
func (w *Workbook) PriorPeriod() *domain.DateRange { return w.prior }

// Currency returns the reporting currency.
func (w *Workbook) Currency() string { return w.currency }

// Issues returns a copy of the findings raised while preparing.
func (w *Workbook) Issues() []domain.ValidationIssue {
	out := make([]domain.ValidationIssue, len(w.issues))
	copy(out, w.issues)
	return out
}

// Simplified reports whether the company uses simplified accounting.
func (w *Workbook) Simplified() bool {
	return w.settings.AccountingMode == domain.ModeSimplified
}

// CashAccountsTotal runs the balance aggregator over every cash account at
// asOf, combining currency segments through the rate table.
func (w *Workbook) CashAccountsTotal(asOf time.Time) (decimal.Decimal, error) {
	return CashAccountsTotal(w.accounts, w.initials, w.entries, asOf, w.rates, w.currency)
}

// movement sums an account's entries dated within r.
func (w *Workbook) movement(accountID string, r domain.DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, m := range w.movements[accountID] {
		if r.Contains(m.date) {
			total = total.Add(m.amount)
		}
	}
	return total
}

// balance returns an account's balance at the end of asOf.
func (w *Workbook) balance(accountID string, asOf time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, m := range w.openings[accountID] {
		if !m.date.After(asOf) {
			total = total.Add(m.amount)
		}
	}
	for _, m := range w.movements[accountID] {
		if !m.date.After(asOf) {
			total = total.Add(m.amount)
		}
	}
	return total
}

// delta is the change in an account's balance across r.
func (w *Workbook) delta(accountID string, r domain.DateRange) decimal.Decimal {
	return w.balance(accountID, r.End).Sub(w.balance(accountID, r.DayBefore()))
}

// netIncome is profit for the entries dated within r.
func (w *Workbook) netIncome(r domain.DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range w.accounts {
		c := w.classes[acc.AccountID]
		if !c.Bucket.IsIncomeStatement() {
			continue
		}
		m := w.movement(acc.AccountID, r)
		if c.Bucket.IsCredit() {
			total = total.Add(m)
		} else {
			total = total.Sub(m)
		}
	}
	return total
}

// accumulatedProfit is cumulative profit up to and including asOf.
func (w *Workbook) accumulatedProfit(asOf time.Time) decimal.Decimal {
	return w.netIncome(domain.DateRange{Start: time.Time{}, End: asOf})
}

// openingBalanceEquity is the amount by which effective initial balances do
// not balance: asset openings less liability and equity openings.
func (w *Workbook) openingBalanceEquity(asOf time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range w.accounts {
		sum := decimal.Zero
		for _, m := range w.openings[acc.AccountID] {
			if !m.date.After(asOf) {
				sum = sum.Add(m.amount)
			}
		}
		if acc.AccountType == domain.Asset {
			total = total.Add(sum)
		} else {
			total = total.Sub(sum)
		}
	}
	return total
}

// equityTotal is total equity at asOf: equity accounts, accumulated profit
// and opening balance equity.
func (w *Workbook) equityTotal(asOf time.Time) decimal.Decimal {
	total := w.accumulatedProfit(asOf).Add(w.openingBalanceEquity(asOf))
	for _, acc := range w.accounts {
		if acc.AccountType == domain.Equity {
			total = total.Add(w.balance(acc.AccountID, asOf))
		}
	}
	return total
}

// cashTotal is the sum of cash account balances at asOf in reporting currency.
func (w *Workbook) cashTotal(asOf time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range w.accounts {
		if w.classes[acc.AccountID].Cash {
			total = total.Add(w.balance(acc.AccountID, asOf))
		}
	}
	return total
}

func (w *Workbook) hasActivity(r domain.DateRange) bool {
	for _, e := range w.entries {
		if r.Contains(e.EntryDate) {
			return true
		}
	}
	return false
}

func (w *Workbook) freshnessIssues(now time.Time) []domain.ValidationIssue {
	var issues []domain.ValidationIssue
	if len(w.entries) == 0 {
		return append(issues, domain.ValidationIssue{
			Severity:   domain.SeverityInfo,
			Code:       "NO_ENTRIES",
			Message:    "No ledger entries were found",
			Suggestion: "Import bank transactions or record bookkeeping entries",
		})
	}

	ref := w.period.End
	if !now.IsZero() && domain.DateOf(now).Before(ref) {
		ref = domain.DateOf(now)
	}
	if days := w.settings.IFRS.StaleTransactionDays; days > 0 {
		latest := w.entries[len(w.entries)-1].EntryDate
		if latest.Before(ref.AddDate(0, 0, -days)) {
			issues = append(issues, domain.ValidationIssue{
				Severity:   domain.SeverityWarning,
				Code:       "STALE_TRANSACTIONS",
				Message:    fmt.Sprintf("Latest ledger entry is dated %s, more than %d days before %s", latest.Format(time.DateOnly), days, ref.Format(time.DateOnly)),
				Suggestion: "Check that recent bank and wallet transactions have been imported",
			})
		}
	}

	if w.prior != nil && !w.hasActivity(*w.prior) {
		issues = append(issues, domain.ValidationIssue{
			Severity: domain.SeverityWarning,
			Code:     "MISSING_COMPARATIVE",
			Message: fmt.Sprintf("No ledger activity in comparative period %s to %s",
				w.prior.Start.Format(time.DateOnly), w.prior.End.Format(time.DateOnly)),
			IFRSReference: "IAS 1.38",
		})
	}
	return issues
}

func validateRange(r domain.DateRange, name string) error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: %s requires start and end dates", apperrors.ErrInvalidRange, name)
	}
	if domain.DateOf(r.End).Before(domain.DateOf(r.Start)) {
		return fmt.Errorf("%w: %s ends before it starts", apperrors.ErrInvalidRange, name)
	}
	return nil
}

func sortAccounts(accounts []domain.Account) {
	sort.SliceStable(accounts, func(i, k int) bool {
		if accounts[i].Code != accounts[k].Code {
			return accounts[i].Code < accounts[k].Code
		}
		return accounts[i].AccountID < accounts[k].AccountID
	})
}
