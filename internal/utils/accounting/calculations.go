package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

// CalculateSignedAmount applies the correct sign to a transaction amount based on account type and transaction type.
// The result is positive when the line increases the account's normal balance.
func CalculateSignedAmount(txn domain.Transaction, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := txn.Amount
	isDebit := txn.TransactionType == domain.Debit

	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, txn.AccountID)
	}
	return signedAmount, nil
}

// IsDebitNormal reports whether debits increase accounts of the given type.
func IsDebitNormal(accountType domain.AccountType) bool {
	return accountType == domain.Asset || accountType == domain.Expense
}

// ValidateJournalBalance checks that a journal's debits equal its credits.
func ValidateJournalBalance(transactions []domain.Transaction) error {
	if len(transactions) < 2 {
		return fmt.Errorf("journal must have at least two transaction entries")
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, txn := range transactions {
		if txn.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("transaction amount must be positive for account %s", txn.AccountID)
		}
		switch txn.TransactionType {
		case domain.Debit:
			debits = debits.Add(txn.Amount)
		case domain.Credit:
			credits = credits.Add(txn.Amount)
		default:
			return fmt.Errorf("invalid transaction type '%s' for account %s", txn.TransactionType, txn.AccountID)
		}
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("journal entries do not balance: debits %s, credits %s", debits.String(), credits.String())
	}
	return nil
}

// JournalAmount returns the total of the debit side of a journal.
func JournalAmount(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.TransactionType == domain.Debit {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// FlipTransactionType returns the opposite side of a transaction line.
func FlipTransactionType(t domain.TransactionType) domain.TransactionType {
	if t == domain.Credit {
		return domain.Debit
	}
	return domain.Credit
}
