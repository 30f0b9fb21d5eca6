package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

func txn(accountID string, amount string, t domain.TransactionType) domain.Transaction {
	return domain.Transaction{AccountID: accountID, Amount: decimal.RequireFromString(amount), TransactionType: t}
}

func TestCalculateSignedAmount(t *testing.T) {
	tests := []struct {
		name        string
		txn         domain.Transaction
		accountType domain.AccountType
		want        string
	}{
		{"debit asset", txn("a", "100", domain.Debit), domain.Asset, "100"},
		{"credit asset", txn("a", "100", domain.Credit), domain.Asset, "-100"},
		{"debit expense", txn("a", "40", domain.Debit), domain.Expense, "40"},
		{"credit revenue", txn("a", "75.5", domain.Credit), domain.Revenue, "75.5"},
		{"debit liability", txn("a", "10", domain.Debit), domain.Liability, "-10"},
		{"debit equity", txn("a", "10", domain.Debit), domain.Equity, "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSignedAmount(tt.txn, tt.accountType)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}

	_, err := CalculateSignedAmount(txn("x", "1", domain.Debit), domain.AccountType("BOGUS"))
	assert.Error(t, err)
}

func TestValidateJournalBalance(t *testing.T) {
	balanced := []domain.Transaction{
		txn("bank", "150", domain.Debit),
		txn("sales", "100", domain.Credit),
		txn("vat", "50", domain.Credit),
	}
	assert.NoError(t, ValidateJournalBalance(balanced))
	assert.True(t, decimal.NewFromInt(150).Equal(JournalAmount(balanced)))

	err := ValidateJournalBalance([]domain.Transaction{txn("bank", "150", domain.Debit)})
	assert.ErrorContains(t, err, "at least two")

	err = ValidateJournalBalance([]domain.Transaction{
		txn("bank", "150", domain.Debit),
		txn("sales", "100", domain.Credit),
	})
	assert.ErrorContains(t, err, "do not balance")

	err = ValidateJournalBalance([]domain.Transaction{
		txn("bank", "0", domain.Debit),
		txn("sales", "0", domain.Credit),
	})
	assert.ErrorContains(t, err, "must be positive")
}

func TestFlipTransactionType(t *testing.T) {
	assert.Equal(t, domain.Credit, FlipTransactionType(domain.Debit))
	assert.Equal(t, domain.Debit, FlipTransactionType(domain.Credit))
}
