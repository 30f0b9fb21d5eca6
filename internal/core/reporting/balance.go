package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

// BalanceAsOf returns the balance of one account in one currency at the end
// of asOf: the initial balance plus every matching entry dated on or before
// asOf. The result does not depend on entry order or on the wall clock.
func BalanceAsOf(accountID, currency string, asOf time.Time, initial *domain.InitialBalance, entries []domain.LedgerEntry) domain.BalanceSnapshot {
	currency = NormalizeCurrency(currency)
	asOf = domain.DateOf(asOf)

	snap := domain.BalanceSnapshot{
		AccountID:      accountID,
		AsOfDate:       asOf,
		CurrencyCode:   currency,
		InitialBalance: decimal.Zero,
		MovementsSum:   decimal.Zero,
	}
	if initial != nil && initial.AccountID == accountID && NormalizeCurrency(initial.CurrencyCode) == currency && initialEffective(*initial, asOf) {
		snap.InitialBalance = initial.Amount
	}
	for _, e := range entries {
		if e.AccountID != accountID || NormalizeCurrency(e.CurrencyCode) != currency || e.EntryDate.After(asOf) {
			continue
		}
		snap.MovementsSum = snap.MovementsSum.Add(e.Amount)
	}
	snap.FinalBalance = snap.InitialBalance.Add(snap.MovementsSum)
	return snap
}

// SegmentedBalancesAsOf returns one snapshot per currency the account has
// been touched in, sorted by currency. Currencies are never mixed.
func SegmentedBalancesAsOf(accountID string, asOf time.Time, initials []domain.InitialBalance, entries []domain.LedgerEntry) []domain.BalanceSnapshot {
	initialByCurrency := make(map[string]*domain.InitialBalance)
	currencies := make(map[string]bool)
	for i := range initials {
		ib := &initials[i]
		if ib.AccountID != accountID {
			continue
		}
		code := NormalizeCurrency(ib.CurrencyCode)
		initialByCurrency[code] = ib
		currencies[code] = true
	}
	for _, e := range entries {
		if e.AccountID == accountID {
			currencies[NormalizeCurrency(e.CurrencyCode)] = true
		}
	}

	codes := make([]string, 0, len(currencies))
	for c := range currencies {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	snaps := make([]domain.BalanceSnapshot, 0, len(codes))
	for _, c := range codes {
		snaps = append(snaps, BalanceAsOf(accountID, c, asOf, initialByCurrency[c], entries))
	}
	return snaps
}

// ConvertedBalance combines currency segments into one amount in currency.
func ConvertedBalance(snaps []domain.BalanceSnapshot, rates *RateTable, currency string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range snaps {
		v, err := rates.Convert(s.FinalBalance, s.CurrencyCode, currency)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to convert balance of account %s: %w", s.AccountID, err)
		}
		total = total.Add(v)
	}
	return total, nil
}

// CashAccountsTotal sums the balances of all bank, wallet and cash accounts
// at asOf, converted into currency.
func CashAccountsTotal(accounts []domain.Account, initials []domain.InitialBalance, entries []domain.LedgerEntry, asOf time.Time, rates *RateTable, currency string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, acc := range accounts {
		if !IsCashAccount(acc) {
			continue
		}
		v, err := ConvertedBalance(SegmentedBalancesAsOf(acc.AccountID, asOf, initials, entries), rates, currency)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	return total, nil
}

// IsCashAccount reports whether acc holds cash or cash equivalents.
func IsCashAccount(acc domain.Account) bool {
	return acc.AccountType == domain.Asset && (acc.Kind.IsCash() || cashCategories[categoryKey(acc.Category)])
}

func initialEffective(ib domain.InitialBalance, asOf time.Time) bool {
	return ib.EffectiveDate.IsZero() || !domain.DateOf(ib.EffectiveDate).After(asOf)
}
