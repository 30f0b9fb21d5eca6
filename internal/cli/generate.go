package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vickinc/eazybizy/internal/core/services"
	"github.com/vickinc/eazybizy/internal/dto"
	"github.com/vickinc/eazybizy/internal/repositories/snapshotfile"
)

type generateOptions struct {
	snapshot    string
	statement   string
	selector    string
	from        string
	to          string
	periodID    string
	currency    string
	now         string
	output      string
	comparative bool
	skipInvalid bool
	timeout     time.Duration
}

func newGenerateCmd() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a statement from a snapshot file",
		Example: `  statementctl generate -f ledger.yaml --statement bundle --selector lastQuarter
  statementctl generate -f ledger.yaml --statement pl --from 2024-03-01 --to 2024-03-31 --comparative`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.snapshot, "file", "f", "", "Ledger snapshot file (YAML)")
	f.StringVarP(&opts.statement, "statement", "s", "bundle", "pl, bs, cf, equity or bundle")
	f.StringVar(&opts.selector, "selector", "", "Period selector, e.g. thisYear or lastQuarter")
	f.StringVar(&opts.from, "from", "", "Custom range start (YYYY-MM-DD)")
	f.StringVar(&opts.to, "to", "", "Custom range end (YYYY-MM-DD)")
	f.StringVar(&opts.periodID, "period", "", "Stored accounting period ID; overrides the selector")
	f.StringVar(&opts.currency, "currency", "", "Reporting currency override")
	f.StringVar(&opts.now, "now", "", "Evaluate relative selectors as of this date (YYYY-MM-DD)")
	f.StringVarP(&opts.output, "output", "o", "text", "text or json")
	f.BoolVar(&opts.comparative, "comparative", false, "Include prior period figures")
	f.BoolVar(&opts.skipInvalid, "skip-invalid", false, "Skip invalid records instead of failing")
	f.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Abort generation after this long")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runGenerate(ctx context.Context, out io.Writer, opts generateOptions) error {
	store, err := snapshotfile.Load(opts.snapshot)
	if err != nil {
		return err
	}

	req := dto.StatementRequest{
		Selector:          opts.selector,
		PeriodID:          opts.periodID,
		Comparative:       opts.comparative,
		ReportingCurrency: opts.currency,
		SkipInvalid:       opts.skipInvalid,
	}
	if req.From, err = optionalDate("from", opts.from); err != nil {
		return err
	}
	if req.To, err = optionalDate("to", opts.to); err != nil {
		return err
	}

	var svcOpts []services.Option
	if opts.now != "" {
		now, err := time.Parse(time.DateOnly, opts.now)
		if err != nil {
			return fmt.Errorf("invalid --now date %q: use YYYY-MM-DD", opts.now)
		}
		svcOpts = append(svcOpts, services.WithClock(func() time.Time { return now }))
	}
	svc := services.NewReportingService(store.Provider(), opts.timeout, svcOpts...)
	companyID := store.CompanyID()

	var result any
	switch strings.ToLower(opts.statement) {
	case "pl", "profit-and-loss":
		result, err = svc.ProfitAndLoss(ctx, companyID, req)
	case "bs", "balance-sheet":
		result, err = svc.BalanceSheet(ctx, companyID, req)
	case "cf", "cash-flow":
		result, err = svc.CashFlow(ctx, companyID, req)
	case "equity", "equity-changes":
		result, err = svc.EquityChanges(ctx, companyID, req)
	case "bundle":
		result, err = svc.Bundle(ctx, companyID, req)
	default:
		return fmt.Errorf("unknown statement %q: use pl, bs, cf, equity or bundle", opts.statement)
	}
	if err != nil {
		return err
	}

	switch strings.ToLower(opts.output) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "text":
		return renderText(out, result)
	}
	return fmt.Errorf("unknown output format %q: use text or json", opts.output)
}

func optionalDate(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s date %q: use YYYY-MM-DD", name, raw)
	}
	return &t, nil
}
