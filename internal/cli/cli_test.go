package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/utils/auth"
)

const ledgerFile = "testdata/ledger.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateBundleJSON(t *testing.T) {
	out, err := run(t, "generate", "-f", ledgerFile, "--selector", "thisYear", "--now", "2024-12-31", "-o", "json")
	require.NoError(t, err)

	var bundle domain.StatementBundle
	require.NoError(t, json.Unmarshal([]byte(out), &bundle))

	assert.Equal(t, "acme", bundle.CompanyID)
	assert.Equal(t, "USD", bundle.Currency)
	require.NotNil(t, bundle.ProfitLoss.Data)
	assert.True(t, bundle.ProfitLoss.Data.NetIncome.Amount.Equal(decimal.NewFromInt(300)))
	require.NotNil(t, bundle.BalanceSheet.Data)
	assert.True(t, bundle.BalanceSheet.Data.Balanced)
	require.NotNil(t, bundle.CashFlow.Data)
	assert.True(t, bundle.CashFlow.Data.ClosingCash.Equal(decimal.NewFromInt(1300)))
}

func TestGenerateProfitLossText(t *testing.T) {
	out, err := run(t, "generate", "-f", ledgerFile, "-s", "pl", "--selector", "thisYear", "--now", "2024-12-31")
	require.NoError(t, err)
	assert.Contains(t, out, "Net income")
	assert.Contains(t, out, "300.00")
	assert.Contains(t, out, "Acme Trading")
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown statement", []string{"generate", "-f", ledgerFile, "-s", "trial-balance"}},
		{"missing file flag", []string{"generate"}},
		{"missing file", []string{"generate", "-f", "testdata/nope.yaml"}},
		{"bad date", []string{"generate", "-f", ledgerFile, "--selector", "custom", "--from", "01/02/2024", "--to", "2024-03-01"}},
		{"bad output", []string{"generate", "-f", ledgerFile, "-o", "xml", "--now", "2024-12-31"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestResolveFiscalQuarter(t *testing.T) {
	out, err := run(t, "resolve", "--selector", "thisQuarter", "--fy-month", "4", "--now", "2024-05-15", "--prior")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "2024-04-01")
	assert.Contains(t, lines[0], "2024-06-30")
	assert.Contains(t, lines[0], "(91 days)")
	assert.Contains(t, lines[1], "2024-01-01")
	assert.Contains(t, lines[1], "2024-03-31")
}

func TestResolveAllTimeHasNoPrior(t *testing.T) {
	out, err := run(t, "resolve", "--selector", "allTime", "--now", "2024-05-15", "--prior")
	require.NoError(t, err)
	assert.Contains(t, out, "prior: none")
}

func TestResolveRejectsUnknownSelector(t *testing.T) {
	_, err := run(t, "resolve", "--selector", "fortnight")
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret-0123456789")
	t.Setenv("JWT_ISSUER", "eazybizy-cli")

	out, err := run(t, "token", "--user", "user-42", "--expiry", "5m")
	require.NoError(t, err)

	claims, err := auth.ParseAndValidateJWT(strings.TrimSpace(out), "cli-test-secret-0123456789", "eazybizy-cli")
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
}
